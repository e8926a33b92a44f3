package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nnmsolver/morris"
)

func newTripleCmd() *cobra.Command {
	var (
		colorName string
		in        string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "triple",
		Short: "Emit the mobility/millMoves/capturable feature vector for each input board",
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseColor(colorName)
			if err != nil {
				return err
			}
			return runTriple(color, in, out)
		},
	}

	cmd.Flags().StringVar(&colorName, "color", "white", "color to evaluate: white or black")
	cmd.Flags().StringVar(&in, "in", "", "input file, one board encoding per line")
	cmd.Flags().StringVar(&out, "out", "", "output file, one 'mobility millMoves capturable' line per input")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func parseColor(s string) (morris.Color, error) {
	switch s {
	case "white":
		return morris.White, nil
	case "black":
		return morris.Black, nil
	default:
		return 0, fmt.Errorf("unknown color %q, want white or black", s)
	}
}

func runTriple(color morris.Color, in, out string) error {
	boards, err := readBoards(in)
	if err != nil {
		return err
	}

	lines := make([]string, len(boards))
	for i, b := range boards {
		mobility, millMoves, capturable := morris.MoveTriple(b, color)
		lines[i] = fmt.Sprintf("%d %d %d", mobility, millMoves, capturable)
	}
	return writeLines(out, lines)
}
