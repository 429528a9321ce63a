package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootReadsStdin(t *testing.T) {
	out, _, err := execute(t, "c|(b|a)\n((a)*(b)*)*\n")
	require.NoError(t, err)
	assert.Equal(t, "a|b|c\n(a|b)*\n", out)
}

func TestRootRawFlag(t *testing.T) {
	out, _, err := execute(t, "c|(b|a)\n", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "c|b|a\n", out)
}

func TestRootReadsFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("b|a\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("((x)*)*\n"), 0o644))

	out, _, err := execute(t, "", first, second)
	require.NoError(t, err)
	assert.Equal(t, "a|b\n(x)*\n", out)
}

func TestRootReportsFileAndLine(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(name, []byte("a\n*abc\n"), 0o644))

	_, _, err := execute(t, "", name)
	require.Error(t, err)
	assert.EqualError(t, err, name+": line 2: [col 0] expected non-empty operand, but '*' found")
}

func TestRootKeepGoingLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "(abc\nb|a\n", "--keep-going")
	require.Error(t, err)
	assert.Equal(t, "a|b\n", out)
	assert.Contains(t, errOut, "skipping malformed pattern")
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "a\n", "--format", "svg")
	assert.Error(t, err)
}

func TestGenCommand(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--count", "5", "--alphabet-size", "3", "--max-len", "4", "--seed", "9")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 5)

	again, _, err := execute(t, "", "gen", "--count", "5", "--alphabet-size", "3", "--max-len", "4", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, _, err = execute(t, "", "gen", "--alphabet-size", "0")
	assert.Error(t, err)
	_, _, err = execute(t, "", "gen", "--regex-n", "5")
	assert.Error(t, err)
}

func TestGenOutputNormalizes(t *testing.T) {
	gen, _, err := execute(t, "", "gen", "--count", "50", "--max-height", "3", "--max-len", "8")
	require.NoError(t, err)

	out, _, err := execute(t, gen, "--verify")
	require.NoError(t, err)
	assert.Equal(t, 50, strings.Count(out, "\n"))
}
