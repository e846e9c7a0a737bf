package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/lox/hometable/internal/config"
	"github.com/lox/hometable/internal/fileutil"
	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/internal/phh"
	"github.com/lox/hometable/internal/simulator"
)

type SimulateCmd struct {
	Config  string `short:"c" default:"table.hcl" type:"path" help:"Table configuration file (defaults are used when missing)"`
	Hands   int    `help:"Hands per table (overrides the config)"`
	Seed    *int64 `help:"Deterministic RNG seed (overrides the config)"`
	Policy  string `default:"rand" enum:"rand,call,maniac,tight" help:"How simulated players act: rand, call, maniac, tight"`
	History string `type:"path" help:"Write every hand summary to this JSON file"`
	PHH     string `name:"phh" type:"path" help:"Write hold'em hands as PHH files into this directory"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Hands = c.Hands
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(levelFor(cli, cfg))
	logger.Info("Simulating", "tables", len(cfg.Tables), "hands", cfg.Hands, "seed", cfg.Seed, "policy", c.Policy)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := simulator.RunTables(ctx, cfg, simulator.Config{
		Hands:  cfg.Hands,
		Seed:   cfg.Seed,
		Policy: c.Policy,
		Logger: logger,
	})
	for _, res := range results {
		if res != nil {
			printStandings(os.Stdout, res)
		}
	}
	if err != nil {
		return err
	}
	if c.History != "" {
		if err := writeHistory(c.History, results); err != nil {
			return err
		}
		logger.Info("Hand history written", "path", c.History)
	}
	if c.PHH != "" {
		n, err := writePHH(c.PHH, results)
		if err != nil {
			return err
		}
		logger.Info("PHH hands written", "dir", c.PHH, "hands", n)
	}
	logger.Info("Simulation complete", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// writeHistory saves each table's hand summaries keyed by table name.
func writeHistory(path string, results []*simulator.Result) error {
	out := make(map[string][]game.HandSummary, len(results))
	for _, res := range results {
		out[res.Table.Name] = res.Table.History
	}
	return fileutil.WriteJSONAtomic(path, out)
}

// writePHH writes one file per hold'em hand, named <table>-<number>.phh.
// Stud tables have no PHH form and are skipped.
func writePHH(dir string, results []*simulator.Result) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	written := 0
	for _, res := range results {
		for _, summary := range res.Table.History {
			h, err := phh.FromSummary(res.Table.Name, summary)
			if errors.Is(err, phh.ErrUnsupportedVariant) {
				break
			}
			if err != nil {
				return written, err
			}
			data, err := phh.EncodeToBytes(h)
			if err != nil {
				return written, err
			}
			name := filepath.Join(dir, fmt.Sprintf("%s-%04d.phh", res.Table.Name, summary.Number))
			if err := fileutil.WriteFileAtomic(name, data, 0o644); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
