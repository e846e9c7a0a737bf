package phh_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hometable/internal/config"
	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/internal/phh"
	"github.com/lox/hometable/internal/simulator"
	"github.com/lox/hometable/poker"
)

func hole(codes ...poker.Card) []game.HoleCard {
	out := make([]game.HoleCard, len(codes))
	for i, c := range codes {
		out[i] = game.HoleCard{Code: c}
	}
	return out
}

func voluntary(id string, street game.Street, typ game.ActionType, amount int) game.Action {
	return game.Action{PlayerID: id, Street: street, Type: typ, Amount: amount}
}

func forced(id string, typ game.ActionType, amount int) game.Action {
	return game.Action{PlayerID: id, Street: game.Preflop, Category: game.Forced, Type: typ, Amount: amount}
}

func TestFromSummaryHeadsUpFold(t *testing.T) {
	t.Parallel()

	completed := time.Date(2026, time.March, 7, 21, 30, 5, 0, time.UTC)
	summary := game.HandSummary{
		HandID:     "h-1",
		Number:     1,
		Variant:    game.Holdem,
		Config:     game.TableConfig{SmallBlind: 5, BigBlind: 10},
		DealerSeat: 1,
		Seats: []game.SeatRecord{
			{PlayerID: "A", Seat: 1, StartingStack: 100, FinalStack: 110, Cards: hole("Ah", "Kh")},
			{PlayerID: "B", Seat: 2, StartingStack: 100, FinalStack: 90, Cards: hole("7c", "2d"), Folded: true},
		},
		Actions: []game.Action{
			forced("A", game.PostSmallBlind, 5),
			forced("B", game.PostBigBlind, 10),
			voluntary("A", game.Preflop, game.Raise, 35),
			voluntary("B", game.Preflop, game.Fold, 0),
		},
		Shares:      map[string]int{"A": 50},
		Refunds:     map[string]int{"A": 30},
		EndedBy:     game.EndedByFold,
		CompletedAt: completed,
	}

	h, err := phh.FromSummary("home", summary)
	require.NoError(t, err)

	assert.Equal(t, "NT", h.Variant)
	assert.Equal(t, []string{"B", "A"}, h.Players, "big blind first, button last")
	assert.Equal(t, []int{2, 1}, h.Seats)
	assert.Equal(t, []int{10, 5}, h.BlindsOrStraddles)
	assert.Equal(t, []int{0, 0}, h.Antes)
	assert.Equal(t, 10, h.MinBet)
	assert.Equal(t, []int{100, 100}, h.StartingStacks)
	assert.Equal(t, []int{90, 110}, h.FinishingStacks)
	assert.Equal(t, []int{0, 20}, h.Winnings)
	assert.Equal(t, []string{
		"d dh p1 7c2d",
		"d dh p2 AhKh",
		"p2 cbr 40",
		"p1 f",
	}, h.Actions)
	assert.Equal(t, "21:30:05", h.Time)
	assert.Equal(t, 7, h.Day)
	assert.Equal(t, 3, h.Month)
	assert.Equal(t, 2026, h.Year)
}

func TestFromSummaryShowdown(t *testing.T) {
	t.Parallel()

	summary := game.HandSummary{
		HandID:     "h-2",
		Variant:    game.Holdem,
		Config:     game.TableConfig{SmallBlind: 5, BigBlind: 10},
		DealerSeat: 3,
		Seats: []game.SeatRecord{
			{PlayerID: "A", Seat: 1, StartingStack: 200, FinalStack: 190, Cards: hole("2c", "3d"), Folded: true},
			{PlayerID: "B", Seat: 2, StartingStack: 200, FinalStack: 270, Cards: hole("As", "Ad")},
			{PlayerID: "C", Seat: 3, StartingStack: 200, FinalStack: 140, Cards: hole("Ks", "Qs")},
		},
		Board: []poker.Card{"Ah", "7d", "2s", "9c", "Jh"},
		Actions: []game.Action{
			forced("A", game.PostSmallBlind, 5),
			forced("B", game.PostBigBlind, 10),
			voluntary("C", game.Preflop, game.Call, 10),
			voluntary("A", game.Preflop, game.Call, 5),
			voluntary("B", game.Preflop, game.Check, 0),
			voluntary("A", game.Flop, game.Check, 0),
			voluntary("B", game.Flop, game.Bet, 20),
			voluntary("C", game.Flop, game.Raise, 60),
			voluntary("A", game.Flop, game.Fold, 0),
			voluntary("B", game.Flop, game.Call, 40),
			voluntary("B", game.Turn, game.Check, 0),
			voluntary("C", game.Turn, game.Check, 0),
			voluntary("B", game.River, game.Check, 0),
			voluntary("C", game.River, game.Check, 0),
		},
		Shares:  map[string]int{"B": 130},
		EndedBy: game.EndedByShowdown,
	}

	h, err := phh.FromSummary("home", summary)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, h.Players)
	assert.Equal(t, []int{5, 10, 0}, h.BlindsOrStraddles)
	assert.Equal(t, []int{0, 130, 0}, h.Winnings)
	assert.Equal(t, []string{
		"d dh p1 2c3d",
		"d dh p2 AsAd",
		"d dh p3 KsQs",
		"p3 cc",
		"p1 cc",
		"p2 cc",
		"d db Ah7d2s",
		"p1 cc",
		"p2 cbr 20",
		"p3 cbr 60",
		"p1 f",
		"p2 cc",
		"d db 9c",
		"p2 cc",
		"p3 cc",
		"d db Jh",
		"p2 cc",
		"p3 cc",
		"p2 sm AsAd",
		"p3 sm KsQs",
	}, h.Actions)
	assert.Empty(t, h.Time, "no completion time recorded")
}

func TestFromSummaryAllInRunout(t *testing.T) {
	t.Parallel()

	summary := game.HandSummary{
		Variant:    game.Holdem,
		Config:     game.TableConfig{SmallBlind: 5, BigBlind: 10, Ante: 1},
		DealerSeat: 2,
		Seats: []game.SeatRecord{
			{PlayerID: "A", Seat: 1, StartingStack: 50, FinalStack: 0, Cards: hole("Ts", "Td")},
			{PlayerID: "B", Seat: 2, StartingStack: 80, FinalStack: 130, Cards: hole("Qc", "Qh")},
		},
		Board: []poker.Card{"2h", "3h", "4c", "8s", "Kd"},
		Actions: []game.Action{
			forced("A", game.PostAnte, 1),
			forced("B", game.PostAnte, 1),
			forced("B", game.PostSmallBlind, 5),
			forced("A", game.PostBigBlind, 10),
			voluntary("B", game.Preflop, game.Raise, 25),
			voluntary("A", game.Preflop, game.AllInAction, 39),
			voluntary("B", game.Preflop, game.Call, 19),
		},
		Shares:  map[string]int{"B": 100},
		EndedBy: game.EndedByShowdown,
	}

	h, err := phh.FromSummary("home", summary)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1}, h.Antes)
	assert.Equal(t, []int{10, 5}, h.BlindsOrStraddles)
	assert.Equal(t, []string{
		"d dh p1 TsTd",
		"d dh p2 QcQh",
		"p2 cbr 30",
		"p1 cbr 49",
		"p2 cc",
		"d db 2h3h4c",
		"d db 8s",
		"d db Kd",
		"p1 sm TsTd",
		"p2 sm QcQh",
	}, h.Actions)
}

func TestFromSummaryRejectsStud(t *testing.T) {
	t.Parallel()

	_, err := phh.FromSummary("home", game.HandSummary{Variant: game.Stud})
	assert.ErrorIs(t, err, phh.ErrUnsupportedVariant)
}

func TestFromSummaryUnknownPlayer(t *testing.T) {
	t.Parallel()

	_, err := phh.FromSummary("home", game.HandSummary{
		Variant: game.Holdem,
		Seats:   []game.SeatRecord{{PlayerID: "A", Seat: 1}},
		Actions: []game.Action{voluntary("Z", game.Preflop, game.Fold, 0)},
	})
	assert.Error(t, err)
}

// Simulated hands must convert into histories whose stacks balance.
func TestFromSummarySimulatedHands(t *testing.T) {
	t.Parallel()

	cfg := config.Table{Name: "sim", Variant: "holdem", SmallBlind: 5, BigBlind: 10, DealerSeat: 1}
	for i, id := range []string{"a", "b", "c", "d"} {
		cfg.Players = append(cfg.Players, config.Player{ID: id, Seat: i + 1, Stack: 500})
	}
	require.NoError(t, cfg.Validate())
	table, err := cfg.TableState()
	require.NoError(t, err)

	sim, err := simulator.New(simulator.Config{
		Hands:  50,
		Seed:   7,
		Policy: "rand",
		Logger: log.New(io.Discard),
		Clock:  quartz.NewMock(t),
	}, 0)
	require.NoError(t, err)
	result, err := sim.Run(context.Background(), table, cfg.FirstDealer())
	require.NoError(t, err)
	require.NotEmpty(t, result.Table.History)

	for _, summary := range result.Table.History {
		h, err := phh.FromSummary("sim", summary)
		require.NoError(t, err)

		start, finish := 0, 0
		for i := range h.Players {
			start += h.StartingStacks[i]
			finish += h.FinishingStacks[i]
		}
		assert.Equal(t, start, finish)
		for i, line := range h.Actions[:len(h.Players)] {
			assert.True(t, strings.HasPrefix(line, "d dh p"), "hand %d action %d: %s", summary.Number, i, line)
		}

		out, err := phh.EncodeToBytes(h)
		require.NoError(t, err)
		assert.Contains(t, string(out), `variant = "NT"`)
		assert.NotContains(t, string(out), "??")
	}
}
