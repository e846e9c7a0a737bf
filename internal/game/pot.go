package game

import "sort"

// Commitment is what one player has put into a hand.
type Commitment struct {
	PlayerID string
	Amount   int
	IsFolded bool
}

// PotResult is the settled shape of a hand's chips: contested pots in
// ascending level order, and chips going back to whoever put them in.
type PotResult struct {
	Pots    []Pot
	Refunds map[string]int
}

// band is one commitment level slice with the chips each player put in it.
type band struct {
	Pot
	contributions map[string]int
}

// PartitionPots splits commitments into level bands. Each band holds
// everyone's chips between the previous level and its own, folded players
// included, and is eligible to the non-folded players who reached its level.
func PartitionPots(commitments []Commitment) []Pot {
	bands := partition(commitments)
	pots := make([]Pot, len(bands))
	for i, b := range bands {
		pots[i] = b.Pot
	}
	return pots
}

func partition(commitments []Commitment) []band {
	seen := make(map[int]bool)
	levels := make([]int, 0, len(commitments))
	for _, c := range commitments {
		if c.Amount > 0 && !seen[c.Amount] {
			seen[c.Amount] = true
			levels = append(levels, c.Amount)
		}
	}
	sort.Ints(levels)

	var bands []band
	prev := 0
	for _, level := range levels {
		b := band{contributions: make(map[string]int)}
		for _, c := range commitments {
			if part := min(c.Amount, level) - prev; part > 0 {
				b.Amount += part
				b.contributions[c.PlayerID] += part
			}
			if c.Amount >= level && !c.IsFolded {
				b.Eligible = append(b.Eligible, c.PlayerID)
			}
		}
		if b.Amount > 0 {
			bands = append(bands, b)
		}
		prev = level
	}
	return bands
}

// CalculatePots partitions commitments into pots and pulls out chips that
// nobody else can contest:
//   - a band whose only eligible player is also its only contributor is an
//     uncalled bet and goes back to that player;
//   - a band with no eligible player goes back to its contributors.
//
// If every player folded there are no pots and every commitment is refunded.
// The sum of pots and refunds always equals the sum of commitments.
func CalculatePots(commitments []Commitment) PotResult {
	result := PotResult{Refunds: make(map[string]int)}

	allFolded := true
	for _, c := range commitments {
		if !c.IsFolded {
			allFolded = false
			break
		}
	}
	if allFolded {
		for _, c := range commitments {
			if c.Amount > 0 {
				result.Refunds[c.PlayerID] += c.Amount
			}
		}
		return result
	}

	for _, b := range partition(commitments) {
		switch {
		case len(b.Eligible) == 0:
			for id, amount := range b.contributions {
				result.Refunds[id] += amount
			}
		case len(b.Eligible) == 1 && len(b.contributions) == 1 && b.contributions[b.Eligible[0]] == b.Amount:
			result.Refunds[b.Eligible[0]] += b.Amount
		default:
			result.Pots = append(result.Pots, b.Pot)
		}
	}
	return result
}

// SplitPot divides amount evenly between winners. Odd chips go one at a
// time to winners in ring order, so the first winner clockwise of the dealer
// gets the first extra chip.
func SplitPot(amount int, winners []string, ring []string) map[string]int {
	shares := make(map[string]int, len(winners))
	if len(winners) == 0 || amount <= 0 {
		return shares
	}

	isWinner := make(map[string]bool, len(winners))
	for _, w := range winners {
		isWinner[w] = true
	}
	ordered := make([]string, 0, len(winners))
	for _, id := range ring {
		if isWinner[id] {
			ordered = append(ordered, id)
			delete(isWinner, id)
		}
	}
	// Winners missing from the ring go last, in the order given.
	for _, w := range winners {
		if isWinner[w] {
			ordered = append(ordered, w)
			delete(isWinner, w)
		}
	}

	each := amount / len(ordered)
	remainder := amount % len(ordered)
	for i, id := range ordered {
		shares[id] = each
		if i < remainder {
			shares[id]++
		}
	}
	return shares
}
