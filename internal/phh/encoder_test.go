package phh_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hometable/internal/game"
	"github.com/lox/hometable/internal/phh"
)

func TestFormatAction(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		action    game.ActionType
		totalBet  int
		raises    bool
		want      string
		shouldUse bool
	}{
		{"fold", 0, game.Fold, 0, false, "p1 f", true},
		{"check", 1, game.Check, 0, false, "p2 cc", true},
		{"call", 3, game.Call, 50, false, "p4 cc", true},
		{"raise", 0, game.Raise, 120, true, "p1 cbr 120", true},
		{"bet", 1, game.Bet, 40, true, "p2 cbr 40", true},
		{"allin raise", 0, game.AllInAction, 350, true, "p1 cbr 350", true},
		{"allin call", 2, game.AllInAction, 30, false, "p3 cc", true},
		{"post sb", 0, game.PostSmallBlind, 5, false, "", false},
		{"post bb", 1, game.PostBigBlind, 10, false, "", false},
		{"ante", 1, game.PostAnte, 1, false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := phh.FormatAction(tt.index, tt.action, tt.totalBet, tt.raises)
			assert.Equal(t, tt.shouldUse, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeHandHistory(t *testing.T) {
	hand := &phh.HandHistory{
		Variant:           "NT",
		Table:             "friday",
		HandID:            "0192f1c4-hand",
		SeatCount:         3,
		Seats:             []int{2, 4, 1},
		Players:           []string{"bob", "dave", "alice"},
		Antes:             []int{0, 0, 0},
		BlindsOrStraddles: []int{5, 10, 0},
		MinBet:            10,
		StartingStacks:    []int{500, 300, 1000},
		Actions: []string{
			"d dh p1 9s9d",
			"d dh p2 Tc4h",
			"d dh p3 KhQh",
			"p3 cbr 30",
			"p1 cc",
			"p2 f",
		},
		FinishingStacks: []int{470, 290, 1040},
		Winnings:        []int{0, 0, 70},
		Year:            2026,
		Month:           10,
		Day:             2,
		Time:            "20:15:00",
		TimeZone:        "UTC",
	}

	var buf bytes.Buffer
	require.NoError(t, phh.Encode(&buf, hand))

	want := "" +
		"variant = \"NT\"\n" +
		"table = \"friday\"\n" +
		"hand = \"0192f1c4-hand\"\n" +
		"seat_count = 3\n" +
		"seats = [2, 4, 1]\n" +
		"players = [\"bob\", \"dave\", \"alice\"]\n" +
		"antes = [0, 0, 0]\n" +
		"blinds_or_straddles = [5, 10, 0]\n" +
		"min_bet = 10\n" +
		"starting_stacks = [500, 300, 1000]\n" +
		"actions = [\"d dh p1 9s9d\", \"d dh p2 Tc4h\", \"d dh p3 KhQh\", \"p3 cbr 30\", \"p1 cc\", \"p2 f\"]\n" +
		"finishing_stacks = [470, 290, 1040]\n" +
		"winnings = [0, 0, 70]\n" +
		"year = 2026\n" +
		"month = 10\n" +
		"day = 2\n" +
		"time = \"20:15:00\"\n" +
		"time_zone = \"UTC\"\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeMetadataTable(t *testing.T) {
	out, err := phh.EncodeToBytes(&phh.HandHistory{
		Variant:  "NT",
		Metadata: &phh.Metadata{Number: 12, EndedBy: "showdown", Pots: []int{60, 40}},
	})
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "[metadata]")
	assert.Contains(t, got, "number = 12")
	assert.Contains(t, got, `ended_by = "showdown"`)
	assert.Contains(t, got, "pots = [60, 40]")
}

func TestEncodeNil(t *testing.T) {
	_, err := phh.EncodeToBytes(nil)
	assert.Error(t, err)
}
