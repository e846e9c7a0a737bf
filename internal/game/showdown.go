package game

import (
	"fmt"
	"slices"

	"github.com/lox/hometable/poker"
)

// SettleShowdown pays out a hand that reached showdown. Every pot goes to
// the best hand among its eligible players, split evenly with odd chips
// handed out clockwise from the dealer; uncalled chips are refunded.
//
// If the evaluator cannot name winners the table comes back unchanged with
// ErrUnresolvedShowdown so the hand can be retried.
func (e *Engine) SettleShowdown(table TableState) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}
	if h.Phase != PhaseShowdown {
		return table, fmt.Errorf("%w: showdown during %s", ErrWrongPhase, h.Phase)
	}

	var ids []string
	for _, p := range contenders(table) {
		ids = append(ids, p.ID)
	}
	overall := e.evaluate(h, ids)
	if len(overall.Winners) == 0 {
		e.logger.Warn("Showdown unresolved", "hand", h.Number, "players", ids)
		return table, ErrUnresolvedShowdown
	}
	descriptions := make(map[string]string, len(overall.AllHands))
	for id, hand := range overall.AllHands {
		descriptions[id] = hand.Description
	}

	settled, err := e.settle(table.Clone(), EndedByShowdown, descriptions, func(pot Pot) ([]string, error) {
		if len(pot.Eligible) == 1 {
			return pot.Eligible, nil
		}
		var winners []string
		for _, w := range e.evaluate(h, pot.Eligible).Winners {
			if slices.Contains(pot.Eligible, w.PlayerID) {
				winners = append(winners, w.PlayerID)
			}
		}
		if len(winners) == 0 {
			return nil, ErrUnresolvedShowdown
		}
		return winners, nil
	})
	if err != nil {
		e.logger.Warn("Showdown unresolved", "hand", h.Number, "error", err)
		return table, err
	}
	return settled, nil
}

func (e *Engine) evaluate(h *HandState, ids []string) poker.Evaluation {
	hands := make(map[string][]poker.Card, len(ids))
	for _, id := range ids {
		hands[id] = h.HoleCodes(id)
	}
	var board []poker.Card
	if h.Variant == Holdem {
		board = h.Board
	}
	return e.evaluator.Evaluate(hands, board)
}

// commitments lists each participant's whole-hand commitment.
func commitments(t TableState) []Commitment {
	h := t.CurrentHand
	out := make([]Commitment, 0, len(h.Participants))
	for _, p := range t.participants() {
		out = append(out, Commitment{
			PlayerID: p.ID,
			Amount:   h.TotalCommitted[p.ID],
			IsFolded: p.Status == Folded,
		})
	}
	return out
}

// settle partitions the hand's chips, pays each pot to the players pick
// returns for it, refunds uncalled chips, records the summary and clears the
// hand. t must be a clone.
func (e *Engine) settle(t TableState, reason EndReason, descriptions map[string]string, pick func(Pot) ([]string, error)) (TableState, error) {
	h := t.CurrentHand
	result := CalculatePots(commitments(t))
	ring := t.ringFromDealer()

	shares := make(map[string]int)
	won := make(map[string]bool)
	var winners []string
	awards := make([]PotAward, 0, len(result.Pots))

	for _, pot := range result.Pots {
		potWinners, err := pick(pot)
		if err != nil {
			return t, err
		}
		split := SplitPot(pot.Amount, potWinners, ring)
		award := PotAward{Amount: pot.Amount, Eligible: pot.Eligible, Shares: split}
		for _, id := range ring {
			amt := split[id]
			if amt <= 0 {
				continue
			}
			award.Winners = append(award.Winners, id)
			shares[id] += amt
			if !won[id] {
				won[id] = true
				winners = append(winners, id)
			}
		}
		awards = append(awards, award)
	}
	for id, amt := range result.Refunds {
		shares[id] += amt
	}

	t.Players = ApplyPayoutsToPlayers(t.Players, shares, winners)

	seats := make([]SeatRecord, 0, len(h.Participants))
	for _, p := range t.participants() {
		seats = append(seats, SeatRecord{
			PlayerID:      p.ID,
			Seat:          p.Seat,
			StartingStack: h.StartingStacks[p.ID],
			FinalStack:    p.Stack,
			Cards:         h.PlayerHands[p.ID],
			Folded:        p.Status == Folded,
		})
	}

	summary := HandSummary{
		HandID:       h.ID,
		Number:       h.Number,
		Variant:      h.Variant,
		Config:       t.Config,
		DealerSeat:   h.DealerSeat,
		Seats:        seats,
		Actions:      h.Actions,
		Board:        h.Board,
		Winners:      winners,
		Shares:       shares,
		Refunds:      result.Refunds,
		Pots:         awards,
		Descriptions: descriptions,
		TotalPot:     h.PotTotal(),
		EndedBy:      reason,
		CompletedAt:  e.clock.Now(),
	}

	t.CurrentHand = nil
	t.History = append(t.History, summary)

	e.logger.Info("Hand complete",
		"table", t.Name,
		"hand", summary.Number,
		"ended", reason,
		"winners", winners,
		"pot", summary.TotalPot)
	return t, nil
}
