package poker

import (
	"sort"

	ranker "github.com/chehsunliu/poker"
)

// Winner is a player holding the best hand among those evaluated.
type Winner struct {
	PlayerID    string
	Description string
}

// EvaluatedHand is the result for a single player's card set.
type EvaluatedHand struct {
	Cards       []Card
	Description string
	Rank        int32 // Lower is stronger
}

// Evaluation is the outcome of comparing several card sets. An evaluation
// with no winners means the input could not be resolved.
type Evaluation struct {
	Winners  []Winner
	AllHands map[string]EvaluatedHand
}

// RankEvaluator ranks hands of five to seven cards using chehsunliu/poker.
type RankEvaluator struct{}

// Evaluate combines each player's cards with the board and returns the tied
// best hands. Malformed input (bad codes, duplicate cards, fewer than five or
// more than seven cards) yields an empty Evaluation instead of panicking.
func (RankEvaluator) Evaluate(hands map[string][]Card, board []Card) (ev Evaluation) {
	defer func() {
		if r := recover(); r != nil {
			ev = Evaluation{}
		}
	}()

	if len(hands) == 0 {
		return Evaluation{}
	}

	ids := make([]string, 0, len(hands))
	for id := range hands {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[Card]bool)
	for _, c := range board {
		if !c.Valid() || seen[c] {
			return Evaluation{}
		}
		seen[c] = true
	}

	all := make(map[string]EvaluatedHand, len(hands))
	best := int32(-1)
	for _, id := range ids {
		cards := make([]Card, 0, len(hands[id])+len(board))
		cards = append(cards, hands[id]...)
		cards = append(cards, board...)
		if len(cards) < 5 || len(cards) > 7 {
			return Evaluation{}
		}

		converted := make([]ranker.Card, len(cards))
		for i, c := range cards {
			if !c.Valid() {
				return Evaluation{}
			}
			if i < len(hands[id]) {
				if seen[c] {
					return Evaluation{}
				}
				seen[c] = true
			}
			converted[i] = ranker.NewCard(string(c))
		}

		rank := ranker.Evaluate(converted)
		all[id] = EvaluatedHand{
			Cards:       cards,
			Description: ranker.RankString(rank),
			Rank:        rank,
		}
		if best < 0 || rank < best {
			best = rank
		}
	}

	ev.AllHands = all
	for _, id := range ids {
		if h := all[id]; h.Rank == best {
			ev.Winners = append(ev.Winners, Winner{PlayerID: id, Description: h.Description})
		}
	}
	return ev
}
