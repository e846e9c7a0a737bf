package game

import "sort"

// Status is a player's standing in the current hand.
type Status int

const (
	Active Status = iota
	Folded
	AllIn
	SittingOut
)

func (s Status) String() string {
	return [...]string{"active", "folded", "allIn", "sittingOut"}[s]
}

// Player is a seat at the table. Players are shared between table snapshots
// and must not be modified once published; use the with* helpers to derive a
// changed copy.
type Player struct {
	ID           string
	Name         string
	Seat         int
	Stack        int
	IsSittingOut bool
	Status       Status
	Wins         int
}

// Eligible reports whether the player can be dealt into the next hand.
func (p *Player) Eligible() bool {
	return !p.IsSittingOut && p.Stack > 0
}

// InHand reports whether the player still contests the pot.
func (p *Player) InHand() bool {
	return p.Status == Active || p.Status == AllIn
}

func (p *Player) clone() *Player {
	c := *p
	return &c
}

// bySeat returns a copy of players ordered by seat number.
func bySeat(players []*Player) []*Player {
	out := make([]*Player, len(players))
	copy(out, players)
	sort.Slice(out, func(i, j int) bool { return out[i].Seat < out[j].Seat })
	return out
}
