package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nnmsolver/morris"
)

func newCanonCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "canon",
		Short: "Group input boards by canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(in, out)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input file, one board encoding per line")
	cmd.Flags().StringVar(&out, "out", "", "output file, one 1-based first-seen line number per input line")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runCanon(in, out string) error {
	boards, err := readBoards(in)
	if err != nil {
		return err
	}

	firstSeen := make(map[uint64]int)
	lines := make([]string, len(boards))
	for i, b := range boards {
		key := morris.Canon(b).Key()
		line, ok := firstSeen[key]
		if !ok {
			line = i + 1
			firstSeen[key] = line
		}
		lines[i] = strconv.Itoa(line)
	}
	return writeLines(out, lines)
}
