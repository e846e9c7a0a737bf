package game

import (
	"time"

	"github.com/lox/hometable/poker"
)

// TableConfig holds the forced bets. Hold'em tables use blinds and stud
// tables use an ante, though nothing stops a table from setting both.
type TableConfig struct {
	SmallBlind int
	BigBlind   int
	Ante       int
}

// TableState is an immutable snapshot of a table.
type TableState struct {
	Name    string
	Variant Variant
	Config  TableConfig
	Players []*Player

	CurrentHand *HandState

	DealerSeat int  // Dealer of the most recent hand
	HasDealt   bool // False until the first hand is started
	HandCount  int

	History []HandSummary
}

// EndReason is how a hand finished.
type EndReason string

const (
	EndedByFold     EndReason = "fold"
	EndedByShowdown EndReason = "showdown"
)

// PotAward records who took one pot.
type PotAward struct {
	Amount   int
	Eligible []string
	Winners  []string
	Shares   map[string]int
}

// SeatRecord is one participant's part in a finished hand.
type SeatRecord struct {
	PlayerID      string
	Seat          int
	StartingStack int
	FinalStack    int
	Cards         []HoleCard
	Folded        bool
}

// HandSummary is the record kept once a hand is over.
type HandSummary struct {
	HandID       string
	Number       int
	Variant      Variant
	Config       TableConfig
	DealerSeat   int
	Seats        []SeatRecord // Participants in seat order
	Actions      []Action
	Board        []poker.Card
	Winners      []string
	Shares       map[string]int // Everything paid out, refunds included
	Refunds      map[string]int
	Pots         []PotAward
	Descriptions map[string]string
	TotalPot     int
	EndedBy      EndReason
	CompletedAt  time.Time
}

// Clone copies the table. Players are shared since they are never modified
// in place; the current hand is deep-copied.
func (t TableState) Clone() TableState {
	c := t
	c.Players = append([]*Player(nil), t.Players...)
	c.History = append([]HandSummary(nil), t.History...)
	c.CurrentHand = t.CurrentHand.Clone()
	return c
}

// Player returns the player with the given id.
func (t TableState) Player(id string) (*Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// TotalChips is every chip at the table, on stacks or in the current hand.
func (t TableState) TotalChips() int {
	total := 0
	for _, p := range t.Players {
		total += p.Stack
	}
	if t.CurrentHand != nil {
		total += t.CurrentHand.PotTotal()
	}
	return total
}

// replacePlayer swaps in a changed copy of a player. The receiver must
// already be a clone.
func (t *TableState) replacePlayer(p *Player) {
	for i, old := range t.Players {
		if old.ID == p.ID {
			t.Players[i] = p
			return
		}
	}
}

// updatePlayer applies fn to a copy of the player and stores the copy.
func (t *TableState) updatePlayer(id string, fn func(*Player)) {
	p, ok := t.Player(id)
	if !ok {
		return
	}
	c := p.clone()
	fn(c)
	t.replacePlayer(c)
}

// participants returns the hand's players in seat order.
func (t TableState) participants() []*Player {
	if t.CurrentHand == nil {
		return nil
	}
	out := make([]*Player, 0, len(t.CurrentHand.Participants))
	for _, id := range t.CurrentHand.Participants {
		if p, ok := t.Player(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// ringFromDealer orders the hand's participants starting with the seat
// immediately clockwise of the dealer.
func (t TableState) ringFromDealer() []string {
	players := t.participants()
	if len(players) == 0 {
		return nil
	}
	start := 0
	for i, p := range players {
		if p.Seat > t.CurrentHand.DealerSeat {
			start = i
			break
		}
	}
	ring := make([]string, 0, len(players))
	for i := range players {
		ring = append(ring, players[(start+i)%len(players)].ID)
	}
	return ring
}
