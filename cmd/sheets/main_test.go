package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheets-go/pkg/sheets/source"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(source.ResetDefault)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--log-level", "error"}, args...))
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertReshapes(t *testing.T) {
	dir := t.TempDir()
	in := writeCSV(t, dir, "in.csv", "a,b\n1,2\n3,4\n")
	out := filepath.Join(dir, "out.json")

	run(t, "convert", in, out,
		"--name-columns-by-row", "0",
		"--where", "row[0] > 1",
		"--format", "b:value * 2",
		"--layout", "records")

	s, err := source.GetSheet(out, source.Options{NameColumnsByRow: source.Int(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Colnames())
	assert.Equal(t, [][]any{{int64(3), int64(8)}}, s.Array())
}

func TestConvertSelectsAndTransposes(t *testing.T) {
	dir := t.TempDir()
	in := writeCSV(t, dir, "in.csv", "a,b,c\n1,2,3\n")
	out := filepath.Join(dir, "out.csv")

	run(t, "convert", in, out, "--name-columns-by-row", "0", "--select-columns", "c,a", "--transpose")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a,1\nc,3\n", string(data))
}

func TestInspect(t *testing.T) {
	in := writeCSV(t, t.TempDir(), "in.csv", "a,b\n1,2\n3,4\n")

	output := run(t, "inspect", in, "--name-columns-by-row", "0")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"SHEET", "ROWS", "COLUMNS", "NAMES"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"csv", "2", "2", "a,b"}, strings.Fields(lines[1]))
}

func TestMergeAndSplit(t *testing.T) {
	dir := t.TempDir()
	x := writeCSV(t, dir, "x.csv", "1\n")
	y := writeCSV(t, dir, "y.csv", "2\n")
	merged := filepath.Join(dir, "merged.xlsx")

	run(t, "merge", merged, x, y)

	book, err := source.GetBook(merged, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x.csv", "y.csv"}, book.SheetNames())

	parts := filepath.Join(dir, "parts")
	output := run(t, "split", merged, parts, "--type", "csv")

	assert.Equal(t, []string{
		filepath.Join(parts, "x.csv_merged.csv"),
		filepath.Join(parts, "y.csv_merged.csv"),
	}, strings.Fields(output))
	s, err := source.GetSheet(filepath.Join(parts, "y.csv_merged.csv"), source.Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(2)}}, s.Array())
}
