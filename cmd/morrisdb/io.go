package main

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/nnmsolver/morris"
)

func cmdContext() context.Context {
	return context.Background()
}

// readBoards reads one 24-character board encoding per line from path,
// stripping trailing whitespace, and decodes each one. A malformed line
// aborts with a diagnostic identifying the 1-based line number.
func readBoards(path string) ([]morris.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening input file %s", path)
	}
	defer f.Close()

	var boards []morris.Board
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if line == "" {
			continue
		}
		b, err := morris.FromString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		boards = append(boards, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading input file %s", path)
	}
	return boards, nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating output file %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return errors.Wrap(err, "writing output line")
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing output line")
		}
	}
	return errors.Wrapf(w.Flush(), "flushing output file %s", path)
}
