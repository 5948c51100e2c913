package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqjoin.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, cfg.Threshold)
	assert.Equal(t, 50.0, FloatOr(cfg.Threshold, 50))
	assert.Equal(t, 10, IntOr(cfg.Column, 10))
	assert.Equal(t, "x", StringOr(cfg.Organism, "x"))
}

func TestLoad_Values(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
threshold: 75.5
column: 0
organism: Saccharomyces
delimiter: ","
wrap: 60
duplicates: first
exclude: [C, S]
verbose: true
`))
	require.NoError(t, err)
	assert.Equal(t, 75.5, FloatOr(cfg.Threshold, 50))
	assert.Equal(t, 0, IntOr(cfg.Column, 10), "an explicit zero is kept")
	assert.Equal(t, "Saccharomyces", cfg.Organism)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, 60, IntOr(cfg.Wrap, 80))
	assert.Equal(t, "first", cfg.Duplicates)
	assert.Equal(t, []string{"C", "S"}, cfg.Exclude)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "threshold: [1, 2\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "threshold: 150\n"))
	assert.ErrorContains(t, err, "outside")

	_, err = Load(writeConfig(t, "column: -1\n"))
	assert.ErrorContains(t, err, "column")
}
