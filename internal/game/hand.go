package game

import (
	"maps"
	"time"

	"github.com/lox/hometable/poker"
)

// ActionType is what a player (or the table, for forced bets) did.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllInAction
	PostSmallBlind
	PostBigBlind
	PostAnte
)

func (a ActionType) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin",
		"small_blind", "big_blind", "ante"}[a]
}

// ActionCategory separates forced postings from decisions. Only voluntary
// actions count as having acted on a street.
type ActionCategory int

const (
	Voluntary ActionCategory = iota
	Forced
)

// Action is an entry of the hand's append-only log.
type Action struct {
	PlayerID  string
	Street    Street
	Category  ActionCategory
	Type      ActionType
	Amount    int // Chips moved from the stack by this action
	CreatedAt time.Time
}

// HoleCard is a card dealt to one player. A zero Code is a face-down
// placeholder that has not been revealed to the engine yet.
type HoleCard struct {
	Code   poker.Card
	FaceUp bool
}

// Pot is a settlement unit: chips and the players who can win them.
type Pot struct {
	Amount   int
	Eligible []string
}

// HandState is one hand in progress.
type HandState struct {
	ID         string
	Number     int
	Variant    Variant
	DealerSeat int

	Street         Street
	Phase          Phase
	ActivePlayerID string // Set only while Phase is AwaitingAction

	Board       []poker.Card
	PlayerHands map[string][]HoleCard
	Deck        []poker.Card

	// Participants are the ids dealt into the hand, in seat order.
	Participants []string

	Pots           []Pot          // Chips from closed streets; Pots[0] is the running main pot
	CurrentBet     int            // Highest street commitment
	MinRaise       int            // Size of the last full raise on this street
	Committed      map[string]int // Chips put in on the current street
	TotalCommitted map[string]int // Chips put in over the whole hand
	StartingStacks map[string]int
	LastAggressor  string

	Actions []Action
}

// Clone returns a deep copy of the hand.
func (h *HandState) Clone() *HandState {
	if h == nil {
		return nil
	}
	c := *h
	c.Board = append([]poker.Card(nil), h.Board...)
	c.Deck = append([]poker.Card(nil), h.Deck...)
	c.Participants = append([]string(nil), h.Participants...)
	c.Actions = append([]Action(nil), h.Actions...)
	c.Committed = maps.Clone(h.Committed)
	c.TotalCommitted = maps.Clone(h.TotalCommitted)
	c.StartingStacks = maps.Clone(h.StartingStacks)
	c.PlayerHands = make(map[string][]HoleCard, len(h.PlayerHands))
	for id, cards := range h.PlayerHands {
		c.PlayerHands[id] = append([]HoleCard(nil), cards...)
	}
	c.Pots = make([]Pot, len(h.Pots))
	for i, p := range h.Pots {
		c.Pots[i] = Pot{Amount: p.Amount, Eligible: append([]string(nil), p.Eligible...)}
	}
	return &c
}

// Sentinel renders the phase the way a single active-player field would:
// a waiting tag, a player id, or "" at showdown.
func (h *HandState) Sentinel() string {
	switch h.Phase {
	case AwaitingDealConfirm:
		return SentinelDealConfirm
	case AwaitingStudFirst:
		return SentinelStudFirst
	case AwaitingCommunityCards:
		return SentinelCards
	case AwaitingStudCard:
		return SentinelStudCard
	case AwaitingAction:
		return h.ActivePlayerID
	default:
		return ""
	}
}

// PotTotal is every chip committed to the hand so far.
func (h *HandState) PotTotal() int {
	total := 0
	for _, p := range h.Pots {
		total += p.Amount
	}
	for _, v := range h.Committed {
		total += v
	}
	return total
}

// HasActed reports whether the player made a voluntary action on the current street.
func (h *HandState) HasActed(playerID string) bool {
	for i := len(h.Actions) - 1; i >= 0; i-- {
		a := h.Actions[i]
		if a.Street != h.Street {
			break
		}
		if a.PlayerID == playerID && a.Category == Voluntary {
			return true
		}
	}
	return false
}

// HoleCodes returns the codes of a player's cards in deal order.
func (h *HandState) HoleCodes(playerID string) []poker.Card {
	cards := h.PlayerHands[playerID]
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Code
	}
	return out
}

// addDeadMoney puts chips straight into the main pot.
func (h *HandState) addDeadMoney(amount int) {
	if amount <= 0 {
		return
	}
	if len(h.Pots) == 0 {
		h.Pots = []Pot{{}}
	}
	h.Pots[0].Amount += amount
}
