package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("verbose", false, "")
	fs.Float64("t", 50, "")
	fs.String("output", "-", "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"--verbose", "pos1", "--", "pos2"})
	assert.Equal(t, []string{"--verbose"}, flagArgs)
	assert.Equal(t, []string{"pos1", "pos2"}, posArgs)
}

func TestSplitFlagsAndPositionals_Interleaved(t *testing.T) {
	argv := []string{"in.fa", "-t", "75", "-", "--output=out.fa", "in.tsv", "--verbose"}
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), argv)
	assert.Equal(t, []string{"-t", "75", "--output=out.fa", "--verbose"}, flagArgs)
	assert.Equal(t, []string{"in.fa", "-", "in.tsv"}, posArgs)

	fs := newFS()
	require.NoError(t, fs.Parse(flagArgs))
	assert.Equal(t, "75", fs.Lookup("t").Value.String())
}

func TestSplitFlagsAndPositionals_UnknownFlagLeftForParse(t *testing.T) {
	fs := newFS()
	fs.SetOutput(nopWriter{})
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--nope", "file"})
	assert.Equal(t, []string{"file"}, posArgs)
	assert.Error(t, fs.Parse(flagArgs))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.uc", "b.uc"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("S\t0\n"), 0o644))
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.uc"), "-"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "-", got[2])

	_, err = ExpandPositionals([]string{filepath.Join(dir, "*.none")})
	assert.ErrorContains(t, err, "no input matched")
}

func TestSingleStdin(t *testing.T) {
	assert.NoError(t, SingleStdin([]string{"-", "a"}))
	assert.ErrorIs(t, SingleStdin([]string{"-", "-"}), ErrStdinTwice)
}
