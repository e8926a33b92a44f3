package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnmsolver/morris"
)

func writeTempInput(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, writeLines(path, lines))
	return path
}

func TestRunTripleWritesFeatureVectorLine(t *testing.T) {
	in := writeTempInput(t, []string{"EWWBBEEEEEWBBEEEEEEEBEEB"})
	out := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, runTriple(morris.White, in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "18 1 3\n", string(data))
}

func TestRunCanonGroupsDuplicateLines(t *testing.T) {
	lineA := "WWWBBBEEEEEEEEEEEEEEEEEE"
	rotated := morris.ToString(morris.RotateRight(mustDecode(t, lineA), 1))

	in := writeTempInput(t, []string{lineA, rotated})
	out := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, runCanon(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "1\n1\n", string(data))
}

func mustDecode(t *testing.T, s string) morris.Board {
	t.Helper()
	b, err := morris.FromString(s)
	require.NoError(t, err)
	return b
}

func TestParseColorRejectsUnknown(t *testing.T) {
	_, err := parseColor("purple")
	require.Error(t, err)
}
