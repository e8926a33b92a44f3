package main

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nnmsolver/morris"
)

func newSolveCmd() *cobra.Command {
	var (
		n       uint32
		dbDir   string
		workers int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run seed generation and retrograde analysis, optionally checkpointing to a Badger database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(n, dbDir, workers, verbose)
		},
	}

	cmd.Flags().Uint32Var(&n, "n", 9, "max stones per color")
	cmd.Flags().StringVar(&dbDir, "db", "", "optional Badger database directory to checkpoint the result to")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent retrograde workers")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable development-mode logging")

	return cmd
}

func runSolve(n uint32, dbDir string, workers int, verbose bool) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	engine := &morris.RetroEngine{MaxStones: n, Workers: workers, Logger: logger}
	won, lost, err := engine.Solve(cmdContext())
	if err != nil {
		return errors.Wrap(err, "solving")
	}

	fmt.Printf("WON: %d  LOST: %d\n", won.Len(), lost.Len())

	if dbDir == "" {
		return nil
	}

	bs, err := morris.OpenBadgerStore(dbDir)
	if err != nil {
		return err
	}
	defer bs.Close()

	if err := bs.Flush(won, 2); err != nil {
		return errors.Wrap(err, "checkpointing won set")
	}
	return errors.Wrap(bs.Flush(lost, 0), "checkpointing lost set")
}
