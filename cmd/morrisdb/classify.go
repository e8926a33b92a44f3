package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nnmsolver/morris"
)

func newClassifyCmd() *cobra.Command {
	var (
		n     uint32
		in    string
		out   string
		dbDir string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify each input board as WON, LOST or DRAW/UNKNOWN",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(n, in, out, dbDir)
		},
	}

	cmd.Flags().Uint32Var(&n, "n", 9, "max stones per color")
	cmd.Flags().StringVar(&in, "in", "", "input file, one board encoding per line")
	cmd.Flags().StringVar(&out, "out", "", "output file, one classification digit per line")
	cmd.Flags().StringVar(&dbDir, "db", "", "optional Badger database directory to classify against instead of a fresh solve")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runClassify(n uint32, in, out, dbDir string) error {
	boards, err := readBoards(in)
	if err != nil {
		return err
	}

	won, lost, err := wonLostFor(n, dbDir)
	if err != nil {
		return err
	}

	lines := make([]string, len(boards))
	for i, b := range boards {
		canon := morris.Canon(b)
		switch {
		case won.Contains(canon):
			lines[i] = "2"
		case lost.Contains(canon):
			lines[i] = "0"
		default:
			lines[i] = "1"
		}
	}
	return writeLines(out, lines)
}

// wonLostFor returns the WON/LOST stores to classify against: loaded from
// dbDir if given, otherwise a fresh solve for n.
func wonLostFor(n uint32, dbDir string) (won, lost *morris.Store, err error) {
	if dbDir != "" {
		bs, err := morris.OpenBadgerStore(dbDir)
		if err != nil {
			return nil, nil, err
		}
		defer bs.Close()
		return bs.Load()
	}

	engine := &morris.RetroEngine{MaxStones: n, Logger: newLogger(false)}
	won, lost, err = engine.Solve(cmdContext())
	return won, lost, errors.Wrap(err, "solving")
}
