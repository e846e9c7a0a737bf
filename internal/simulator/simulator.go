// Package simulator plays hands against the engine with scripted players,
// dealing every checkpoint from the hand's own deck.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hometable/internal/config"
	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/internal/randutil"
	"github.com/lox/hometable/internal/statistics"
)

// ErrChipsNotConserved means chips appeared or vanished during a hand.
var ErrChipsNotConserved = errors.New("chips not conserved")

// maxSteps bounds the transitions in one hand.
const maxSteps = 2000

// Config holds configuration for running simulations.
type Config struct {
	Hands  int
	Seed   int64
	Policy string
	Logger *log.Logger
	Clock  quartz.Clock
}

// Result is the outcome of a simulated session at one table.
type Result struct {
	Table     game.TableState
	Hands     int
	Showdowns int
	Stopped   string // Why play ended early, if it did
	Players   map[string]*statistics.Statistics
}

// Simulator plays one table.
type Simulator struct {
	config Config
	engine *game.Engine
	policy Policy
}

// New creates a simulator. stream separates the random streams of tables
// sharing a seed.
func New(cfg Config, stream uint64) (*Simulator, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	policy, err := NewPolicy(cfg.Policy, randutil.Stream(cfg.Seed, 2*stream+1))
	if err != nil {
		return nil, err
	}
	engine := game.NewEngine(
		game.WithLogger(cfg.Logger),
		game.WithClock(cfg.Clock),
		game.WithRNG(randutil.Stream(cfg.Seed, 2*stream)),
	)
	return &Simulator{config: cfg, engine: engine, policy: policy}, nil
}

// Run plays up to the configured number of hands, stopping early when fewer
// than two players can continue.
func (s *Simulator) Run(ctx context.Context, table game.TableState, dealerSeat *int) (*Result, error) {
	result := &Result{Players: make(map[string]*statistics.Statistics)}
	for _, p := range table.Players {
		result.Players[p.ID] = &statistics.Statistics{}
	}

	for range s.config.Hands {
		if err := ctx.Err(); err != nil {
			result.Table = table
			return result, err
		}

		before := make(map[string]int, len(table.Players))
		for _, p := range table.Players {
			before[p.ID] = p.Stack
		}

		started, err := s.engine.StartHand(table, dealerSeat)
		if errors.Is(err, game.ErrInsufficientPlayers) {
			result.Stopped = err.Error()
			break
		}
		if err != nil {
			result.Table = table
			return result, err
		}
		participants := started.CurrentHand.Participants
		dealer := started.CurrentHand.DealerSeat

		table, err = s.playHand(ctx, started)
		if err != nil {
			result.Table = table
			return result, err
		}
		summary := table.History[len(table.History)-1]

		result.Hands++
		if summary.EndedBy == game.EndedByShowdown {
			result.Showdowns++
		}
		offsets := dealerOffsets(table, participants, dealer)
		for _, id := range participants {
			p, _ := table.Player(id)
			result.Players[id].Add(statistics.HandResult{
				HandNumber:     summary.Number,
				NetChips:       p.Stack - before[id],
				BigBlind:       table.Config.BigBlind,
				WentToShowdown: summary.EndedBy == game.EndedByShowdown,
				PotSize:        summary.TotalPot,
				DealerOffset:   offsets[id],
			})
		}
	}

	result.Table = table
	return result, nil
}

// playHand drives a started hand to completion.
func (s *Simulator) playHand(ctx context.Context, table game.TableState) (game.TableState, error) {
	total := table.TotalChips()
	number := table.CurrentHand.Number

	for step := 0; table.CurrentHand != nil; step++ {
		if step >= maxSteps {
			return table, fmt.Errorf("hand %d did not finish after %d steps", number, maxSteps)
		}
		if err := ctx.Err(); err != nil {
			return table, err
		}

		next, err := s.step(table)
		if err != nil {
			return table, fmt.Errorf("hand %d: %w", number, err)
		}
		if got := next.TotalChips(); got != total {
			return next, fmt.Errorf("%w: hand %d has %d chips, started with %d", ErrChipsNotConserved, number, got, total)
		}
		table = next
	}
	return table, nil
}

// step answers whatever the hand is waiting for.
func (s *Simulator) step(table game.TableState) (game.TableState, error) {
	h := table.CurrentHand
	switch h.Phase {
	case game.AwaitingDealConfirm:
		return s.engine.ConfirmDeal(table)
	case game.AwaitingStudFirst, game.AwaitingStudCard:
		return s.engine.DealStudFromDeck(table)
	case game.AwaitingCommunityCards:
		return s.engine.DealCommunityFromDeck(table)
	case game.PhaseShowdown:
		return s.engine.SettleShowdown(table)
	case game.AwaitingAction:
		action, amount := s.policy.Decide(table)
		if next := s.engine.ProcessAction(table, action, amount); next.CurrentHand != h {
			return next, nil
		}
		// Rejected; fall back to the passive choice.
		fallback := game.Call
		if h.Committed[h.ActivePlayerID] == h.CurrentBet {
			fallback = game.Check
		}
		if next := s.engine.ProcessAction(table, fallback, 0); next.CurrentHand != h {
			return next, nil
		}
		return table, fmt.Errorf("%s cannot act", h.ActivePlayerID)
	default:
		return table, fmt.Errorf("unexpected phase %s", h.Phase)
	}
}

// dealerOffsets numbers participants by seats clockwise from the dealer.
func dealerOffsets(table game.TableState, participants []string, dealerSeat int) map[string]int {
	seats := make(map[string]int, len(participants))
	top := 0
	for _, id := range participants {
		if p, ok := table.Player(id); ok {
			seats[id] = p.Seat
			top = max(top, p.Seat)
		}
	}
	distance := func(seat int) int { return (seat - dealerSeat + top + 1) % (top + 1) }

	ids := slices.Clone(participants)
	slices.SortFunc(ids, func(a, b string) int { return distance(seats[a]) - distance(seats[b]) })
	offsets := make(map[string]int, len(ids))
	for i, id := range ids {
		offsets[id] = i
	}
	return offsets
}

// RunTables simulates every configured table concurrently. Each table gets
// its own engine and random streams, so results do not depend on scheduling.
func RunTables(ctx context.Context, file *config.File, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(file.Tables))
	g, ctx := errgroup.WithContext(ctx)

	for i, t := range file.Tables {
		table, err := t.TableState()
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		tableCfg := cfg
		if tableCfg.Logger != nil {
			tableCfg.Logger = tableCfg.Logger.With("table", t.Name)
		}
		sim, err := New(tableCfg, uint64(i))
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			res, err := sim.Run(ctx, table, t.FirstDealer())
			results[i] = res
			if err != nil {
				return fmt.Errorf("table %s: %w", t.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
