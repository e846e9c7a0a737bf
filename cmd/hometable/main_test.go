package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hometable/internal/config"
	"github.com/lox/hometable/internal/simulator"
)

func TestRenderStandings(t *testing.T) {
	cfg := config.Default()
	results, err := simulator.RunTables(context.Background(), cfg, simulator.Config{Hands: 20, Seed: 9})
	require.NoError(t, err)
	require.Len(t, results, 1)

	out := renderStandings(results[0])
	assert.Contains(t, out, "home")
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "bb/hand")
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "error"

table "t" {
  big_blind   = 2
  small_blind = 1
  player "a" {
    seat  = 1
    stack = 100
  }
  player "b" {
    seat  = 2
    stack = 100
  }
}
`), 0o644))

	cli := &CLI{}
	assert.NoError(t, (&ValidateCmd{Config: path}).Run(cli))

	require.NoError(t, os.WriteFile(path, []byte(`
table "t" {
  big_blind = 2
  player "a" {
    seat  = 1
    stack = 100
  }
}
`), 0o644))
	assert.ErrorIs(t, (&ValidateCmd{Config: path}).Run(cli), config.ErrInvalidConfig)

	assert.Error(t, (&ValidateCmd{Config: filepath.Join(dir, "missing.hcl")}).Run(cli))
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, log.DebugLevel, newLogger("debug").GetLevel())
	assert.Equal(t, log.ErrorLevel, newLogger("error").GetLevel())
	assert.Equal(t, log.InfoLevel, newLogger("bogus").GetLevel())
}

func TestWriteHistory(t *testing.T) {
	results, err := simulator.RunTables(context.Background(), config.Default(), simulator.Config{Hands: 3, Seed: 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, writeHistory(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"home"`)
	assert.Contains(t, string(data), `"Variant": "holdem"`)
}

func TestWritePHH(t *testing.T) {
	cfg := config.Default()
	stud := cfg.Tables[0]
	stud.Name = "stud"
	stud.Variant = "stud"
	stud.SmallBlind, stud.BigBlind, stud.Ante = 0, 0, 1
	cfg.Tables = append(cfg.Tables, stud)
	require.NoError(t, cfg.Validate())

	results, err := simulator.RunTables(context.Background(), cfg, simulator.Config{Hands: 4, Seed: 3})
	require.NoError(t, err)

	dir := t.TempDir()
	n, err := writePHH(dir, results)
	require.NoError(t, err)
	assert.Equal(t, len(results[0].Table.History), n)

	files, err := filepath.Glob(filepath.Join(dir, "*.phh"))
	require.NoError(t, err)
	assert.Len(t, files, n)

	data, err := os.ReadFile(filepath.Join(dir, "home-0001.phh"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `variant = "NT"`)
	assert.Contains(t, string(data), `table = "home"`)
}
