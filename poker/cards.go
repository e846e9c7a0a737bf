package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card code cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

// Card is a two-character card code such as "As" or "Td".
// The zero value is an undealt placeholder.
type Card string

// Rank returns the rank index of the card, 0 for a deuce through 12 for an
// ace, or -1 if the code is not a valid card.
func (c Card) Rank() int {
	if len(c) != 2 {
		return -1
	}
	return strings.IndexByte(rankChars, c[0])
}

// Suit returns the suit character of the card.
func (c Card) Suit() byte {
	if len(c) != 2 {
		return 0
	}
	return c[1]
}

// Valid reports whether the card is a canonical card code.
func (c Card) Valid() bool {
	return c.Rank() >= 0 && strings.IndexByte(suitChars, c.Suit()) >= 0
}

func (c Card) String() string {
	if c == "" {
		return "??"
	}
	return string(c)
}

// ParseCard parses a card code, accepting either case for rank and suit.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	c := Card(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	return c, nil
}

// ParseCards parses a run of card codes like "AsKd7h" or "As Kd 7h".
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
