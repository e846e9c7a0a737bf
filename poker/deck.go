package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInsufficientCards is returned when more cards are requested than remain.
var ErrInsufficientCards = errors.New("insufficient cards")

// NewDeck returns the 52 canonical card codes in a fixed order.
func NewDeck() []Card {
	deck := make([]Card, 0, len(rankChars)*len(suitChars))
	for i := range len(rankChars) {
		for j := range len(suitChars) {
			deck = append(deck, Card([]byte{rankChars[i], suitChars[j]}))
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates permutation of deck. The input is not modified.
func Shuffle(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal takes the first n cards from deck and returns them with the remainder.
func Deal(deck []Card, n int) (dealt, rest []Card, err error) {
	if n < 0 || n > len(deck) {
		return nil, deck, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(deck))
	}
	dealt = make([]Card, n)
	copy(dealt, deck[:n])
	rest = make([]Card, len(deck)-n)
	copy(rest, deck[n:])
	return dealt, rest, nil
}

// RemoveCards returns deck without any of the given cards.
func RemoveCards(deck []Card, cards ...Card) []Card {
	drop := make(map[Card]bool, len(cards))
	for _, c := range cards {
		drop[c] = true
	}
	out := make([]Card, 0, len(deck))
	for _, c := range deck {
		if !drop[c] {
			out = append(out, c)
		}
	}
	return out
}
