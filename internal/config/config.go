// Package config loads table setups from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hometable/internal/game"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// File is a parsed configuration file.
type File struct {
	LogLevel string  `hcl:"log_level,optional"`
	Seed     int64   `hcl:"seed,optional"`
	Hands    int     `hcl:"hands,optional"`
	Tables   []Table `hcl:"table,block"`
}

// Table describes one table and who sits at it.
type Table struct {
	Name       string   `hcl:"name,label"`
	Variant    string   `hcl:"variant,optional"`
	SmallBlind int      `hcl:"small_blind,optional"`
	BigBlind   int      `hcl:"big_blind,optional"`
	Ante       int      `hcl:"ante,optional"`
	DealerSeat int      `hcl:"dealer_seat,optional"` // 0 picks a random first dealer
	Players    []Player `hcl:"player,block"`
}

// Player is a seated player.
type Player struct {
	ID         string `hcl:"id,label"`
	Name       string `hcl:"name,optional"`
	Seat       int    `hcl:"seat"`
	Stack      int    `hcl:"stack"`
	SittingOut bool   `hcl:"sitting_out,optional"`
}

// Default returns a three-handed hold'em game.
func Default() *File {
	return &File{
		LogLevel: "info",
		Hands:    100,
		Tables: []Table{
			{
				Name:       "home",
				Variant:    "holdem",
				SmallBlind: 5,
				BigBlind:   10,
				Players: []Player{
					{ID: "alice", Name: "Alice", Seat: 1, Stack: 1000},
					{ID: "bob", Name: "Bob", Seat: 2, Stack: 1000},
					{ID: "carol", Name: "Carol", Seat: 3, Stack: 1000},
				},
			},
		},
	}
}

// Load reads filename, or returns Default when it does not exist.
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from src. filename is only used in messages.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*File, error) {
	var cfg File
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Hands == 0 {
		cfg.Hands = 100
	}
	for i := range cfg.Tables {
		if cfg.Tables[i].Variant == "" {
			cfg.Tables[i].Variant = "holdem"
		}
		for j := range cfg.Tables[i].Players {
			if p := &cfg.Tables[i].Players[j]; p.Name == "" {
				p.Name = p.ID
			}
		}
	}
	return &cfg, nil
}

// Validate checks every table can be played.
func (c *File) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Hands < 0 {
		return fmt.Errorf("%w: hands must not be negative", ErrInvalidConfig)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("%w: at least one table must be configured", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if names[t.Name] {
			return fmt.Errorf("%w: duplicate table %q", ErrInvalidConfig, t.Name)
		}
		names[t.Name] = true
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the table's stakes and seating.
func (t Table) Validate() error {
	variant, err := game.ParseVariant(t.Variant)
	if err != nil {
		return fmt.Errorf("%w: table %s: %v", ErrInvalidConfig, t.Name, err)
	}
	if t.SmallBlind < 0 || t.BigBlind < 0 || t.Ante < 0 {
		return fmt.Errorf("%w: table %s: blinds and ante must not be negative", ErrInvalidConfig, t.Name)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("%w: table %s: big blind must be at least the small blind", ErrInvalidConfig, t.Name)
	}
	if variant == game.Holdem && t.BigBlind == 0 {
		return fmt.Errorf("%w: table %s: hold'em needs a big blind", ErrInvalidConfig, t.Name)
	}
	if len(t.Players) < 2 {
		return fmt.Errorf("%w: table %s: at least two players are needed", ErrInvalidConfig, t.Name)
	}

	seats := make(map[int]bool, len(t.Players))
	ids := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		if ids[p.ID] {
			return fmt.Errorf("%w: table %s: duplicate player %q", ErrInvalidConfig, t.Name, p.ID)
		}
		ids[p.ID] = true
		if p.Seat <= 0 {
			return fmt.Errorf("%w: table %s: player %s: seat must be positive", ErrInvalidConfig, t.Name, p.ID)
		}
		if seats[p.Seat] {
			return fmt.Errorf("%w: table %s: seat %d is taken twice", ErrInvalidConfig, t.Name, p.Seat)
		}
		seats[p.Seat] = true
		if p.Stack < 0 {
			return fmt.Errorf("%w: table %s: player %s: stack must not be negative", ErrInvalidConfig, t.Name, p.ID)
		}
	}
	if t.DealerSeat != 0 && !seats[t.DealerSeat] {
		return fmt.Errorf("%w: table %s: dealer seat %d is empty", ErrInvalidConfig, t.Name, t.DealerSeat)
	}
	return nil
}

// TableState builds the starting state for the table.
func (t Table) TableState() (game.TableState, error) {
	variant, err := game.ParseVariant(t.Variant)
	if err != nil {
		return game.TableState{}, err
	}
	players := make([]*game.Player, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, &game.Player{
			ID:           p.ID,
			Name:         p.Name,
			Seat:         p.Seat,
			Stack:        p.Stack,
			IsSittingOut: p.SittingOut,
		})
	}
	slices.SortFunc(players, func(a, b *game.Player) int { return a.Seat - b.Seat })

	return game.TableState{
		Name:    t.Name,
		Variant: variant,
		Config: game.TableConfig{
			SmallBlind: t.SmallBlind,
			BigBlind:   t.BigBlind,
			Ante:       t.Ante,
		},
		Players: players,
	}, nil
}

// FirstDealer is the configured first dealer seat, or nil for a random one.
func (t Table) FirstDealer() *int {
	if t.DealerSeat == 0 {
		return nil
	}
	seat := t.DealerSeat
	return &seat
}

// Table returns the named table.
func (c *File) Table(name string) (Table, bool) {
	for _, t := range c.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
