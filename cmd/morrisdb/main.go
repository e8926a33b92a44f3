// Command morrisdb is a batch driver over the morris package: it reads
// board encodings from an input file, one per line, and writes per-line
// results to an output file, or runs a full retrograde solve against a
// Badger-backed position database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "morrisdb",
		Short: "Nine Men's Morris endgame position database generator",
	}
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newTripleCmd())
	root.AddCommand(newCanonCmd())
	root.AddCommand(newSolveCmd())
	return root
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
