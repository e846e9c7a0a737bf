package game

// ProcessAction applies the active player's action. It returns the table
// unchanged when there is no hand, nobody is due to act, or the action is
// not legal; rejected actions are logged, never returned as errors.
//
// amount is only read for Bet and Raise, as the street total to go to.
func (e *Engine) ProcessAction(table TableState, action ActionType, amount int) TableState {
	h := table.CurrentHand
	if h == nil || h.Phase != AwaitingAction {
		return table
	}
	p, ok := table.Player(h.ActivePlayerID)
	if !ok {
		return table
	}
	if err := ValidateAction(h, p, action, amount); err != nil {
		e.logger.Warn("Action rejected",
			"hand", h.Number,
			"player", p.ID,
			"action", action,
			"amount", amount,
			"error", err)
		return table
	}

	next := table.Clone()
	applyAction(&next, p, action, amount, e.clock.Now())
	nh := next.CurrentHand
	e.logger.Debug("Action",
		"hand", nh.Number,
		"street", nh.Street,
		"player", p.ID,
		"action", action,
		"bet", nh.CurrentBet,
		"pot", nh.PotTotal())

	if len(contenders(next)) <= 1 {
		return e.concludeByFold(next)
	}

	if RoundComplete(nh, next.participants()) || !bettingNeeded(next) {
		e.closeStreet(&next)
		return next
	}

	id, ok := NextActor(next.participants(), p.Seat)
	if !ok {
		e.closeStreet(&next)
		return next
	}
	nh.ActivePlayerID = id
	return next
}

// closeStreet sweeps the street's bets into the main pot and moves on to the
// next dealing checkpoint, or to showdown after the last street.
func (e *Engine) closeStreet(t *TableState) {
	h := t.CurrentHand

	total := 0
	for _, v := range h.Committed {
		total += v
	}
	if len(h.Pots) == 0 {
		h.Pots = []Pot{{}}
	}
	h.Pots[0].Amount += total
	h.Pots[0].Eligible = h.Pots[0].Eligible[:0]
	for _, p := range contenders(*t) {
		h.Pots[0].Eligible = append(h.Pots[0].Eligible, p.ID)
	}

	h.Committed = make(map[string]int, len(h.Participants))
	h.CurrentBet = 0
	h.MinRaise = t.Config.BigBlind
	if h.MinRaise <= 0 {
		h.MinRaise = max(t.Config.Ante, 1)
	}
	h.LastAggressor = ""
	h.ActivePlayerID = ""

	closed := h.Street
	h.Street = h.Variant.next(h.Street)
	switch {
	case h.Street == Showdown:
		h.Phase = PhaseShowdown
	case h.Variant == Stud:
		h.Phase = AwaitingStudCard
	default:
		h.Phase = AwaitingCommunityCards
	}
	e.logger.Debug("Street closed", "hand", h.Number, "street", closed, "next", h.Street, "pot", h.PotTotal())
}

// concludeByFold ends a hand when only one player has not folded. Pots are
// still partitioned, so chips the survivor cannot win go back to whoever
// put them in.
func (e *Engine) concludeByFold(t TableState) TableState {
	settled, err := e.settle(t, EndedByFold, nil, func(pot Pot) ([]string, error) {
		return pot.Eligible, nil
	})
	if err != nil {
		e.logger.Error("Fold-out settlement failed", "hand", t.CurrentHand.Number, "error", err)
	}
	return settled
}
