package main

import (
	"fmt"
	"os"

	"github.com/lox/hometable/internal/config"
)

type ValidateCmd struct {
	Config string `short:"c" default:"table.hcl" type:"path" help:"Table configuration file"`
}

func (c *ValidateCmd) Run(cli *CLI) error {
	if _, err := os.Stat(c.Config); err != nil {
		return fmt.Errorf("config %s: %w", c.Config, err)
	}
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(levelFor(cli, cfg))
	for _, t := range cfg.Tables {
		logger.Info("Table ok",
			"table", t.Name,
			"variant", t.Variant,
			"blinds", fmt.Sprintf("%d/%d", t.SmallBlind, t.BigBlind),
			"ante", t.Ante,
			"players", len(t.Players))
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("%s: %d table(s) valid", c.Config, len(cfg.Tables))))
	return nil
}

func levelFor(cli *CLI, cfg *config.File) string {
	if cli.LogLevel != "" {
		return cli.LogLevel
	}
	return cfg.LogLevel
}
