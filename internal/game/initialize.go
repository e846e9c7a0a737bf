package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lox/hometable/poker"
)

// InitializeHand builds the next hand for a table without touching it. It
// returns the new hand and the full player list with statuses reset and
// forced bets taken from stacks. It fails with ErrInsufficientPlayers when
// fewer than two players have chips and are not sitting out.
//
// dealerSeat is honoured only for a table's first hand; after that the
// button moves clockwise to the next eligible seat.
func (e *Engine) InitializeHand(table TableState, dealerSeat *int) (*HandState, []*Player, error) {
	var eligible []*Player
	for _, p := range bySeat(table.Players) {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) < 2 {
		return nil, nil, fmt.Errorf("%w: %d of %d players can play", ErrInsufficientPlayers, len(eligible), len(table.Players))
	}

	dealer := e.chooseDealer(table, eligible, dealerSeat)
	now := e.clock.Now()

	h := &HandState{
		ID:             uuid.Must(uuid.NewV7()).String(),
		Number:         table.HandCount + 1,
		Variant:        table.Variant,
		DealerSeat:     dealer,
		Street:         table.Variant.Streets()[0],
		Phase:          AwaitingDealConfirm,
		PlayerHands:    make(map[string][]HoleCard, len(eligible)),
		Committed:      make(map[string]int, len(eligible)),
		TotalCommitted: make(map[string]int, len(eligible)),
		StartingStacks: make(map[string]int, len(eligible)),
		MinRaise:       table.Config.BigBlind,
	}
	if h.MinRaise <= 0 {
		h.MinRaise = max(table.Config.Ante, 1)
	}

	working := make(map[string]*Player, len(table.Players))
	updated := make([]*Player, len(table.Players))
	for i, p := range table.Players {
		c := p.clone()
		if p.Eligible() {
			c.Status = Active
		} else {
			c.Status = SittingOut
			if c.Stack == 0 {
				c.IsSittingOut = true
			}
		}
		working[c.ID] = c
		updated[i] = c
	}
	for _, p := range eligible {
		h.Participants = append(h.Participants, p.ID)
		h.StartingStacks[p.ID] = p.Stack
	}

	post := func(id string, amount int, kind ActionType) int {
		p := working[id]
		amt := min(amount, p.Stack)
		if amt <= 0 {
			return 0
		}
		p.Stack -= amt
		if p.Stack == 0 {
			p.Status = AllIn
		}
		h.TotalCommitted[id] += amt
		h.Actions = append(h.Actions, Action{
			PlayerID:  id,
			Street:    h.Street,
			Category:  Forced,
			Type:      kind,
			Amount:    amt,
			CreatedAt: now,
		})
		return amt
	}

	if ante := table.Config.Ante; ante > 0 {
		for _, id := range h.Participants {
			h.addDeadMoney(post(id, ante, PostAnte))
		}
	}

	n := len(h.Participants)
	d := 0
	for i, p := range eligible {
		if p.Seat == dealer {
			d = i
		}
	}

	if table.Variant == Holdem {
		sb, bb := h.Participants[(d+1)%n], h.Participants[(d+2)%n]
		if n == 2 {
			sb, bb = h.Participants[d], h.Participants[(d+1)%n]
		}
		if amt := post(sb, table.Config.SmallBlind, PostSmallBlind); amt > 0 {
			h.Committed[sb] = amt
		}
		if amt := post(bb, table.Config.BigBlind, PostBigBlind); amt > 0 {
			h.Committed[bb] = amt
		}
		h.CurrentBet = table.Config.BigBlind
		for _, v := range h.Committed {
			h.CurrentBet = max(h.CurrentBet, v)
		}
	}

	deck := poker.Shuffle(e.rng, poker.NewDeck())
	order := make([]string, 0, n)
	for i := range n {
		order = append(order, h.Participants[(d+1+i)%n])
	}
	switch table.Variant {
	case Holdem:
		for range 2 {
			for _, id := range order {
				var dealt []poker.Card
				var err error
				dealt, deck, err = poker.Deal(deck, 1)
				if err != nil {
					return nil, nil, fmt.Errorf("dealing hole cards: %w", err)
				}
				h.PlayerHands[id] = append(h.PlayerHands[id], HoleCard{Code: dealt[0]})
			}
		}
	case Stud:
		for _, id := range order {
			h.PlayerHands[id] = []HoleCard{{}}
		}
	}
	h.Deck = deck

	return h, updated, nil
}

// StartHand initializes the next hand and returns the table with it in place.
func (e *Engine) StartHand(table TableState, dealerSeat *int) (TableState, error) {
	if table.CurrentHand != nil {
		return table, ErrHandInProgress
	}
	h, players, err := e.InitializeHand(table, dealerSeat)
	if err != nil {
		e.logger.Warn("Cannot start hand", "table", table.Name, "error", err)
		return table, err
	}

	next := table.Clone()
	next.Players = players
	next.CurrentHand = h
	next.DealerSeat = h.DealerSeat
	next.HasDealt = true
	next.HandCount = h.Number

	e.logger.Info("Hand started",
		"table", table.Name,
		"hand", h.Number,
		"variant", h.Variant,
		"dealer", h.DealerSeat,
		"players", len(h.Participants),
		"pot", h.PotTotal())
	return next, nil
}

func (e *Engine) chooseDealer(table TableState, eligible []*Player, explicit *int) int {
	if !table.HasDealt {
		if explicit != nil {
			return seatFrom(eligible, *explicit, true)
		}
		return eligible[e.rng.IntN(len(eligible))].Seat
	}
	for _, p := range eligible {
		if p.Seat == table.DealerSeat {
			return seatFrom(eligible, table.DealerSeat, false)
		}
	}
	return eligible[0].Seat
}

// seatFrom returns the first eligible seat clockwise of seat, or seat itself
// when inclusive and eligible. eligible must be in seat order.
func seatFrom(eligible []*Player, seat int, inclusive bool) int {
	for _, p := range eligible {
		if p.Seat > seat || (inclusive && p.Seat == seat) {
			return p.Seat
		}
	}
	return eligible[0].Seat
}
