package game

import (
	"fmt"
	"time"
)

// ValidateAction reports whether the player may take action right now.
// amount is the street total a bet or raise goes to; zero means no amount.
func ValidateAction(h *HandState, p *Player, action ActionType, amount int) error {
	if h == nil {
		return ErrNoHand
	}
	if h.Phase != AwaitingAction || h.ActivePlayerID != p.ID {
		return fmt.Errorf("%w: %s is not to act", ErrInvalidAction, p.ID)
	}

	committed := h.Committed[p.ID]
	switch action {
	case Fold, Call:
		return nil
	case Check:
		if committed != h.CurrentBet {
			return fmt.Errorf("%w: cannot check, must call %d", ErrInvalidAction, h.CurrentBet-committed)
		}
	case Bet, Raise:
		if amount <= 0 {
			return fmt.Errorf("%w: %s requires an amount", ErrInvalidAction, action)
		}
		delta := min(amount-committed, p.Stack)
		if delta <= 0 {
			return fmt.Errorf("%w: %s to %d adds no chips", ErrInvalidAction, action, amount)
		}
		if committed+delta <= h.CurrentBet && delta != p.Stack {
			return fmt.Errorf("%w: %s to %d does not exceed current bet %d", ErrInvalidAction, action, amount, h.CurrentBet)
		}
	case AllInAction:
		if p.Stack <= 0 {
			return fmt.Errorf("%w: no chips left", ErrInvalidAction)
		}
	default:
		return fmt.Errorf("%w: %s is not a betting action", ErrInvalidAction, action)
	}
	return nil
}

// chipDelta is how many chips a validated action moves from the stack.
func chipDelta(h *HandState, p *Player, action ActionType, amount int) int {
	committed := h.Committed[p.ID]
	switch action {
	case Call:
		return max(0, min(h.CurrentBet-committed, p.Stack))
	case Bet, Raise:
		return min(amount-committed, p.Stack)
	case AllInAction:
		return p.Stack
	default:
		return 0
	}
}

// applyAction performs a validated action on t, which must be a clone.
func applyAction(t *TableState, p *Player, action ActionType, amount int, now time.Time) {
	h := t.CurrentHand
	delta := chipDelta(h, p, action, amount)

	t.updatePlayer(p.ID, func(c *Player) {
		c.Stack -= delta
		switch {
		case action == Fold:
			c.Status = Folded
		case delta > 0 && c.Stack == 0:
			c.Status = AllIn
		}
	})

	if delta > 0 {
		h.Committed[p.ID] += delta
		h.TotalCommitted[p.ID] += delta
		if total := h.Committed[p.ID]; total > h.CurrentBet {
			if raise := total - h.CurrentBet; raise >= h.MinRaise {
				h.MinRaise = raise
			}
			h.CurrentBet = total
			h.LastAggressor = p.ID
		}
	}

	h.Actions = append(h.Actions, Action{
		PlayerID:  p.ID,
		Street:    h.Street,
		Category:  Voluntary,
		Type:      action,
		Amount:    delta,
		CreatedAt: now,
	})
}

// RoundComplete reports whether the current street's betting is closed:
// at least one player can still act, and every such player has matched the
// current bet and made a voluntary action this street. A big blind that has
// only posted has not acted.
func RoundComplete(h *HandState, players []*Player) bool {
	if h == nil {
		return false
	}
	inHand := make(map[string]bool, len(h.Participants))
	for _, id := range h.Participants {
		inHand[id] = true
	}

	active := 0
	for _, p := range players {
		if !inHand[p.ID] || p.Status != Active {
			continue
		}
		active++
		if h.Committed[p.ID] != h.CurrentBet || !h.HasActed(p.ID) {
			return false
		}
	}
	return active > 0
}

// NextActor finds the first player clockwise of fromSeat who can still act,
// skipping folded, all-in and sitting-out players. The search covers one
// full lap, ending on fromSeat itself.
func NextActor(players []*Player, fromSeat int) (string, bool) {
	seated := bySeat(players)
	if len(seated) == 0 {
		return "", false
	}
	start := 0
	for i, p := range seated {
		if p.Seat > fromSeat {
			start = i
			break
		}
	}
	for i := range seated {
		p := seated[(start+i)%len(seated)]
		if !p.IsSittingOut && p.Status == Active {
			return p.ID, true
		}
	}
	return "", false
}

// contenders returns the participants who have not folded.
func contenders(t TableState) []*Player {
	var out []*Player
	for _, p := range t.participants() {
		if p.InHand() {
			out = append(out, p)
		}
	}
	return out
}

// bettingNeeded reports whether the street needs any decisions: two players
// able to bet, or one who still owes chips to an all-in.
func bettingNeeded(t TableState) bool {
	h := t.CurrentHand
	var active []*Player
	for _, p := range t.participants() {
		if p.Status == Active {
			active = append(active, p)
		}
	}
	switch len(active) {
	case 0:
		return false
	case 1:
		return h.Committed[active[0].ID] < h.CurrentBet
	default:
		return true
	}
}
