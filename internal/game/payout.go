package game

// ApplyPayoutsToPlayers credits shares to stacks. Players with no positive
// share come back as the same pointer, so callers can spot no-ops by
// identity. Only players listed in winners get a win counted; a player who
// only had an uncalled bet returned is paid but not credited a win.
func ApplyPayoutsToPlayers(players []*Player, shares map[string]int, winners []string) []*Player {
	won := make(map[string]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}

	out := make([]*Player, len(players))
	for i, p := range players {
		share := shares[p.ID]
		if share <= 0 {
			out[i] = p
			continue
		}
		c := p.clone()
		c.Stack += share
		if won[p.ID] {
			c.Wins++
		}
		out[i] = c
	}
	return out
}
