package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPayoutsToPlayers(t *testing.T) {
	t.Parallel()

	alice := &Player{ID: "A", Seat: 1, Stack: 100, Wins: 2}
	bob := &Player{ID: "B", Seat: 2, Stack: 50}
	carol := &Player{ID: "C", Seat: 3, Stack: 0}
	players := []*Player{alice, bob, carol}

	out := ApplyPayoutsToPlayers(players, map[string]int{"A": 150, "C": 40}, []string{"A"})
	require.Len(t, out, 3)

	assert.NotSame(t, alice, out[0])
	assert.Equal(t, 250, out[0].Stack)
	assert.Equal(t, 3, out[0].Wins)

	assert.Same(t, bob, out[1], "zero share must return the same player")

	assert.NotSame(t, carol, out[2])
	assert.Equal(t, 40, out[2].Stack)
	assert.Zero(t, out[2].Wins, "refund alone is not a win")

	assert.Equal(t, 100, alice.Stack, "input players must not change")
	assert.Same(t, alice, players[0])
}

func TestApplyPayoutsNegativeShareIsNoOp(t *testing.T) {
	t.Parallel()

	p := &Player{ID: "A", Stack: 10}
	out := ApplyPayoutsToPlayers([]*Player{p}, map[string]int{"A": -5}, []string{"A"})
	assert.Same(t, p, out[0])
}
