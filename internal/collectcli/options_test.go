package collectcli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqjoin/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

// inputs writes an empty FASTA and TSV and returns their paths.
func inputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	fa, tsv := filepath.Join(dir, "in.fa"), filepath.Join(dir, "in.tsv")
	require.NoError(t, os.WriteFile(fa, nil, 0o644))
	require.NoError(t, os.WriteFile(tsv, nil, 0o644))
	return fa, tsv
}

func TestParseArgs_Defaults(t *testing.T) {
	fa, tsv := inputs(t)
	o, err := ParseArgs(newFS(), []string{fa, tsv})
	require.NoError(t, err)
	assert.Equal(t, fa, o.FASTA)
	assert.Equal(t, tsv, o.TSV)
	assert.Equal(t, 50.0, o.Threshold)
	assert.Equal(t, 10, o.Column)
	assert.Equal(t, 80, o.Wrap)
	assert.Equal(t, []string{"C"}, o.Exclude)
	assert.Equal(t, "-", o.Output)
	assert.Equal(t, "tsv", o.StatsFormat)
}

func TestParseArgs_FlagsAfterPositionals(t *testing.T) {
	fa, tsv := inputs(t)
	o, err := ParseArgs(newFS(), []string{fa, "-t", "75", tsv, "--organism", "Yeast", "--exclude-type", "C", "--exclude-type", "X", "-v"})
	require.NoError(t, err)
	assert.Equal(t, 75.0, o.Threshold)
	assert.Equal(t, "Yeast", o.Organism)
	assert.Equal(t, []string{"C", "X"}, o.Exclude)
	assert.True(t, o.Verbose)
}

func TestParseArgs_ConfigFileAndFlagPrecedence(t *testing.T) {
	fa, tsv := inputs(t)
	cfg := filepath.Join(t.TempDir(), "seqjoin.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("threshold: 80\ncolumn: 3\nwrap: 60\nquiet: true\n"), 0o644))

	o, err := ParseArgs(newFS(), []string{"--config", cfg, "--column", "4", fa, tsv})
	require.NoError(t, err)
	assert.Equal(t, 80.0, o.Threshold, "config fills unset flags")
	assert.Equal(t, 4, o.Column, "explicit flag wins over config")
	assert.Equal(t, 60, o.Wrap)
	assert.True(t, o.Quiet)
}

func TestParseArgs_Errors(t *testing.T) {
	fa, tsv := inputs(t)
	missing := filepath.Join(t.TempDir(), "nope.tsv")
	cases := map[string][]string{
		"one positional":   {fa},
		"three positional": {fa, tsv, tsv},
		"threshold range":  {"-t", "101", fa, tsv},
		"negative column":  {"-c", "-1", fa, tsv},
		"stats format":     {"--stats-format", "xml", fa, tsv},
		"two stdin":        {"-", "-"},
		"verbose+quiet":    {"-v", "-q", fa, tsv},
		"missing input":    {fa, missing},
	}
	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), argv)
			assert.Error(t, err)
		})
	}

	_, err := ParseArgs(newFS(), []string{fa, missing})
	var ue *clibase.UsageError
	assert.True(t, errors.As(err, &ue))
}

func TestParseArgs_HelpExamplesVersion(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = ParseArgs(newFS(), []string{"--examples"})
	assert.ErrorIs(t, err, clibase.ErrPrintedAndExitOK)

	o, err := ParseArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, o.Version)
}
