package phh

// HandHistory is one hand in Poker Hand History form. Per-player slices are
// indexed by PHH player order, clockwise from the seat after the button.
type HandHistory struct {
	Variant string `toml:"variant"`
	Table   string `toml:"table,omitempty"`
	HandID  string `toml:"hand"`

	SeatCount int      `toml:"seat_count,omitempty"`
	Seats     []int    `toml:"seats,omitempty"`
	Players   []string `toml:"players,omitempty"`

	Antes             []int `toml:"antes"`
	BlindsOrStraddles []int `toml:"blinds_or_straddles"`
	MinBet            int   `toml:"min_bet"`
	StartingStacks    []int `toml:"starting_stacks"`

	Actions []string `toml:"actions"`

	FinishingStacks []int `toml:"finishing_stacks,omitempty"`
	Winnings        []int `toml:"winnings,omitempty"`

	Year     int    `toml:"year,omitempty"`
	Month    int    `toml:"month,omitempty"`
	Day      int    `toml:"day,omitempty"`
	Time     string `toml:"time,omitempty"`
	TimeZone string `toml:"time_zone,omitempty"`

	Metadata *Metadata `toml:"metadata,omitempty"`
}

// Metadata carries engine details PHH has no field for.
type Metadata struct {
	Number  int    `toml:"number"`
	EndedBy string `toml:"ended_by"`
	Pots    []int  `toml:"pots,omitempty"`
}
