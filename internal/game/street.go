package game

import "fmt"

// Variant is the poker game played at a table.
type Variant int

const (
	Holdem Variant = iota
	Stud
)

func (v Variant) String() string {
	switch v {
	case Holdem:
		return "holdem"
	case Stud:
		return "stud"
	default:
		return "unknown"
	}
}

// MarshalText encodes the variant by name.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseVariant maps a config name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "holdem", "hold'em", "texas":
		return Holdem, nil
	case "stud", "five-card-stud":
		return Stud, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

// Streets returns the betting streets of the variant in dealing order.
func (v Variant) Streets() []Street {
	if v == Stud {
		return []Street{Street1, Street2, Street3, Street4, Street5}
	}
	return []Street{Preflop, Flop, Turn, River}
}

// Street is a betting round.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Street1
	Street2
	Street3
	Street4
	Street5
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river",
		"street1", "street2", "street3", "street4", "street5", "showdown"}[s]
}

// next returns the street after s for variant v, or Showdown after the last.
func (v Variant) next(s Street) Street {
	streets := v.Streets()
	for i, st := range streets {
		if st == s && i+1 < len(streets) {
			return streets[i+1]
		}
	}
	return Showdown
}

// communityCount is how many board cards open a Hold'em street.
func communityCount(s Street) int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// Phase is the checkpoint a hand is waiting on.
type Phase int

const (
	AwaitingDealConfirm Phase = iota
	AwaitingStudFirst
	AwaitingAction
	AwaitingCommunityCards
	AwaitingStudCard
	PhaseShowdown
)

func (p Phase) String() string {
	return [...]string{"awaitingDealConfirm", "awaitingStudFirst", "awaitingAction",
		"awaitingCommunityCards", "awaitingStudCard", "showdown"}[p]
}

// Sentinel tags used by table front-ends that keep the phase in the active
// player field.
const (
	SentinelDealConfirm = "WAITING_FOR_DEAL_CONFIRM"
	SentinelCards       = "WAITING_FOR_CARDS"
	SentinelStudFirst   = "WAITING_FOR_STUD_FIRST"
	SentinelStudCard    = "WAITING_FOR_STUD_CARD"
)
