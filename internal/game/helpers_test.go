package game

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/hometable/internal/randutil"
	"github.com/lox/hometable/poker"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	base := []EngineOption{
		WithLogger(log.New(io.Discard)),
		WithClock(quartz.NewMock(t)),
		WithRNG(randutil.New(42)),
	}
	return NewEngine(append(base, opts...)...)
}

// newTable seats players A, B, C... in seats 1, 2, 3... with the given stacks.
func newTable(variant Variant, cfg TableConfig, stacks ...int) TableState {
	players := make([]*Player, len(stacks))
	for i, stack := range stacks {
		id := string(rune('A' + i))
		players[i] = &Player{ID: id, Name: "Player " + id, Seat: i + 1, Stack: stack}
	}
	return TableState{Name: "test", Variant: variant, Config: cfg, Players: players}
}

func seat(n int) *int { return &n }

func mustPlayer(t *testing.T, table TableState, id string) *Player {
	t.Helper()
	p, ok := table.Player(id)
	require.True(t, ok, "player %s", id)
	return p
}

// startConfirmed starts a hand at the given dealer seat and confirms the deal.
func startConfirmed(t *testing.T, e *Engine, table TableState, dealer int) TableState {
	t.Helper()
	table, err := e.StartHand(table, seat(dealer))
	require.NoError(t, err)
	table, err = e.ConfirmDeal(table)
	require.NoError(t, err)
	return table
}

// act applies an action and fails the test if it was rejected.
func act(t *testing.T, e *Engine, table TableState, player string, action ActionType, amount int) TableState {
	t.Helper()
	require.NotNil(t, table.CurrentHand, "no hand for %s %s", player, action)
	require.Equal(t, AwaitingAction, table.CurrentHand.Phase)
	require.Equal(t, player, table.CurrentHand.ActivePlayerID)
	next := e.ProcessAction(table, action, amount)
	require.NotSame(t, table.CurrentHand, next.CurrentHand, "%s %s was rejected", player, action)
	return next
}

// chipsOutOfStacks is how much players have lost from their stacks this hand.
func chipsOutOfStacks(table TableState) int {
	h := table.CurrentHand
	out := 0
	for id, start := range h.StartingStacks {
		if p, ok := table.Player(id); ok {
			out += start - p.Stack
		}
	}
	return out
}

func requireConserved(t *testing.T, table TableState) {
	t.Helper()
	if h := table.CurrentHand; h != nil {
		require.Equal(t, chipsOutOfStacks(table), h.PotTotal(), "pot must hold exactly what stacks lost")
		total := 0
		for _, v := range h.TotalCommitted {
			total += v
		}
		require.Equal(t, h.PotTotal(), total, "whole-hand commitments must match pot")
	}
}

// rankedEvaluator declares winners by a fixed preference order, ignoring cards.
type rankedEvaluator struct {
	order []string
	ties  map[string]bool
}

func (r rankedEvaluator) Evaluate(hands map[string][]poker.Card, _ []poker.Card) poker.Evaluation {
	ev := poker.Evaluation{AllHands: make(map[string]poker.EvaluatedHand)}
	for id := range hands {
		ev.AllHands[id] = poker.EvaluatedHand{Description: fmt.Sprintf("hand of %s", id)}
	}
	for _, id := range r.order {
		if _, ok := hands[id]; !ok {
			continue
		}
		if len(ev.Winners) == 0 || r.ties[id] {
			ev.Winners = append(ev.Winners, poker.Winner{PlayerID: id})
			continue
		}
		break
	}
	return ev
}

type brokenEvaluator struct{}

func (brokenEvaluator) Evaluate(map[string][]poker.Card, []poker.Card) poker.Evaluation {
	return poker.Evaluation{}
}
