package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestRankEvaluatorHoldem(t *testing.T) {
	t.Parallel()

	board := mustCards(t, "2c 7d 9h Js Qc")
	ev := RankEvaluator{}.Evaluate(map[string][]Card{
		"alice": mustCards(t, "As Ah"),
		"bob":   mustCards(t, "Kd Kh"),
	}, board)

	require.Len(t, ev.Winners, 1)
	assert.Equal(t, "alice", ev.Winners[0].PlayerID)
	assert.Equal(t, "Pair", ev.Winners[0].Description)
	assert.Len(t, ev.AllHands, 2)
	assert.Len(t, ev.AllHands["bob"].Cards, 7)
}

func TestRankEvaluatorTie(t *testing.T) {
	t.Parallel()

	board := mustCards(t, "As Kd Qs Jc Th")
	ev := RankEvaluator{}.Evaluate(map[string][]Card{
		"alice": mustCards(t, "2c 3d"),
		"bob":   mustCards(t, "2d 4h"),
	}, board)

	require.Len(t, ev.Winners, 2)
	assert.Equal(t, "alice", ev.Winners[0].PlayerID)
	assert.Equal(t, "bob", ev.Winners[1].PlayerID)
	assert.Equal(t, "Straight", ev.Winners[0].Description)
}

func TestRankEvaluatorFiveCardStud(t *testing.T) {
	t.Parallel()

	ev := RankEvaluator{}.Evaluate(map[string][]Card{
		"alice": mustCards(t, "2c 2d 9h 9s Kc"),
		"bob":   mustCards(t, "Ac Kd Qh Js 3c"),
	}, nil)

	require.Len(t, ev.Winners, 1)
	assert.Equal(t, "alice", ev.Winners[0].PlayerID)
	assert.Equal(t, "Two Pair", ev.Winners[0].Description)
}

func TestRankEvaluatorMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hands map[string][]Card
		board []Card
	}{
		{name: "empty", hands: nil},
		{name: "too few cards", hands: map[string][]Card{"a": {"As", "Kd"}}, board: []Card{"2c"}},
		{name: "too many cards", hands: map[string][]Card{"a": {"As", "Kd", "Qh", "Js"}}, board: []Card{"2c", "3c", "4c", "5c"}},
		{name: "placeholder card", hands: map[string][]Card{"a": {"", "Kd", "Qh", "Js", "2c"}}},
		{name: "duplicate card", hands: map[string][]Card{"a": {"As", "Kd"}, "b": {"As", "Qd"}}, board: []Card{"2c", "3c", "4d"}},
		{name: "garbage code", hands: map[string][]Card{"a": {"Zz", "Kd", "Qh", "Js", "2c"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := RankEvaluator{}.Evaluate(tc.hands, tc.board)
			assert.Empty(t, ev.Winners)
		})
	}
}
