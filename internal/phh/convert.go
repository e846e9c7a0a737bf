package phh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/poker"
)

// ErrUnsupportedVariant is returned for hands PHH export does not cover.
var ErrUnsupportedVariant = errors.New("phh: unsupported variant")

// FromSummary converts a settled hold'em hand into a hand history. Players
// are listed clockwise from the seat after the dealer, so the button is last.
func FromSummary(table string, s game.HandSummary) (*HandHistory, error) {
	if s.Variant != game.Holdem {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, s.Variant)
	}

	seats := order(s.Seats, s.DealerSeat)
	index := make(map[string]int, len(seats))
	for i, r := range seats {
		index[r.PlayerID] = i
	}

	n := len(seats)
	h := &HandHistory{
		Variant:           "NT",
		Table:             table,
		SeatCount:         n,
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            s.Config.BigBlind,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Players:           make([]string, n),
		HandID:            s.HandID,
		Metadata:          &Metadata{Number: s.Number, EndedBy: string(s.EndedBy)},
	}
	for _, pot := range s.Pots {
		h.Metadata.Pots = append(h.Metadata.Pots, pot.Amount)
	}
	for i, r := range seats {
		h.Seats[i] = r.Seat
		h.StartingStacks[i] = r.StartingStack
		h.FinishingStacks[i] = r.FinalStack
		h.Winnings[i] = s.Shares[r.PlayerID] - s.Refunds[r.PlayerID]
		h.Players[i] = r.PlayerID
		h.Actions = append(h.Actions, fmt.Sprintf("d dh p%d %s", i+1, holeString(r.Cards)))
	}
	if !s.CompletedAt.IsZero() {
		ts := s.CompletedAt.UTC()
		h.Time = ts.Format("15:04:05")
		h.TimeZone = "UTC"
		h.Day, h.Month, h.Year = ts.Day(), int(ts.Month()), ts.Year()
	}

	street := game.Preflop
	committed := make(map[string]int, n)
	high := 0
	for _, a := range s.Actions {
		i, ok := index[a.PlayerID]
		if !ok {
			return nil, fmt.Errorf("phh: action by unknown player %q", a.PlayerID)
		}
		if a.Category == game.Forced {
			switch a.Type {
			case game.PostAnte:
				h.Antes[i] += a.Amount
				continue
			case game.PostSmallBlind, game.PostBigBlind:
				h.BlindsOrStraddles[i] += a.Amount
			}
		}
		for street < a.Street {
			street++
			h.Actions = append(h.Actions, boardAction(s.Board, street)...)
			clear(committed)
			high = 0
		}
		committed[a.PlayerID] += a.Amount
		total := committed[a.PlayerID]
		if line, ok := FormatAction(i, a.Type, total, total > high); ok {
			h.Actions = append(h.Actions, line)
		}
		high = max(high, total)
	}
	for street < game.River {
		street++
		h.Actions = append(h.Actions, boardAction(s.Board, street)...)
	}

	if s.EndedBy == game.EndedByShowdown {
		for i, r := range seats {
			if !r.Folded {
				h.Actions = append(h.Actions, fmt.Sprintf("p%d sm %s", i+1, holeString(r.Cards)))
			}
		}
	}
	return h, nil
}

// order rotates seat-ordered records to start after the dealer.
func order(records []game.SeatRecord, dealer int) []game.SeatRecord {
	start := 0
	for i, r := range records {
		if r.Seat > dealer {
			start = i
			break
		}
	}
	out := make([]game.SeatRecord, 0, len(records))
	out = append(out, records[start:]...)
	return append(out, records[:start]...)
}

func boardAction(board []poker.Card, street game.Street) []string {
	lo, hi := 0, 0
	switch street {
	case game.Flop:
		lo, hi = 0, 3
	case game.Turn:
		lo, hi = 3, 4
	case game.River:
		lo, hi = 4, 5
	default:
		return nil
	}
	if len(board) < hi {
		return nil
	}
	return []string{"d db " + cardString(board[lo:hi])}
}

func holeString(cards []game.HoleCard) string {
	codes := make([]poker.Card, len(cards))
	for i, c := range cards {
		codes[i] = c.Code
	}
	return cardString(codes)
}

func cardString(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
