package simulator

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/poker"
)

// Policy picks the active player's action. amount is the street total for
// bets and raises.
type Policy interface {
	Decide(table game.TableState) (action game.ActionType, amount int)
}

// NewPolicy returns a policy by name: rand, call, maniac or tight.
func NewPolicy(name string, rng *rand.Rand) (Policy, error) {
	switch name {
	case "", "rand":
		return RandomPolicy{rng: rng}, nil
	case "call":
		return CallingPolicy{}, nil
	case "maniac":
		return ManiacPolicy{rng: rng}, nil
	case "tight":
		return TightPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// situation is what the active player faces.
type situation struct {
	owes      int
	bet       int
	raiseStep int
}

func describe(table game.TableState) situation {
	h := table.CurrentHand
	step := max(h.MinRaise, table.Config.BigBlind, table.Config.Ante, 1)
	return situation{
		owes:      h.CurrentBet - h.Committed[h.ActivePlayerID],
		bet:       h.CurrentBet,
		raiseStep: step,
	}
}

// RandomPolicy mixes every action with fixed weights.
type RandomPolicy struct {
	rng *rand.Rand
}

func (r RandomPolicy) Decide(table game.TableState) (game.ActionType, int) {
	s := describe(table)
	roll := r.rng.IntN(100)

	if s.owes <= 0 {
		switch {
		case roll < 60:
			return game.Check, 0
		case roll < 95:
			return game.Bet, s.bet + s.raiseStep*(1+r.rng.IntN(3))
		default:
			return game.AllInAction, 0
		}
	}

	switch {
	case roll < 20:
		return game.Fold, 0
	case roll < 75:
		return game.Call, 0
	case roll < 95:
		return game.Raise, s.bet + s.raiseStep*(1+r.rng.IntN(3))
	default:
		return game.AllInAction, 0
	}
}

// CallingPolicy never folds and never raises.
type CallingPolicy struct{}

func (CallingPolicy) Decide(table game.TableState) (game.ActionType, int) {
	if describe(table).owes > 0 {
		return game.Call, 0
	}
	return game.Check, 0
}

// ManiacPolicy raises most of the time.
type ManiacPolicy struct {
	rng *rand.Rand
}

func (m ManiacPolicy) Decide(table game.TableState) (game.ActionType, int) {
	s := describe(table)
	roll := m.rng.IntN(100)
	switch {
	case roll < 10:
		return game.AllInAction, 0
	case roll < 70:
		return game.Raise, s.bet + s.raiseStep*(2+m.rng.IntN(4))
	case s.owes > 0:
		return game.Call, 0
	default:
		return game.Check, 0
	}
}

// TightPolicy plays by the strength of its first two cards: it raises
// premium hands, folds trash to a bet and calls everything else down.
type TightPolicy struct{}

func (TightPolicy) Decide(table game.TableState) (game.ActionType, int) {
	s := describe(table)
	h := table.CurrentHand
	category := poker.CategoryUnknown
	if cards := h.HoleCodes(h.ActivePlayerID); len(cards) >= 2 {
		category = poker.CategorizeHoleCards(cards[0], cards[1])
	}

	switch category {
	case poker.CategoryPremium:
		if s.owes > 0 {
			return game.Raise, s.bet + 2*s.raiseStep
		}
		return game.Bet, s.bet + s.raiseStep
	case poker.CategoryTrash:
		if s.owes > 0 {
			return game.Fold, 0
		}
	}
	if s.owes > 0 {
		return game.Call, 0
	}
	return game.Check, 0
}
