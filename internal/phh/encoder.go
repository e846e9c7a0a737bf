package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/hometable/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatAction converts an engine action to a PHH action string. totalBet
// is the player's commitment on the street after the action. It reports
// false for forced posts, which PHH records in antes and blinds instead.
func FormatAction(index int, action game.ActionType, totalBet int, raises bool) (string, bool) {
	player := fmt.Sprintf("p%d", index+1)
	switch action {
	case game.Fold:
		return player + " f", true
	case game.Check, game.Call:
		return player + " cc", true
	case game.Bet, game.Raise, game.AllInAction:
		if !raises {
			return player + " cc", true
		}
		return fmt.Sprintf("%s cbr %d", player, totalBet), true
	default:
		return "", false
	}
}
