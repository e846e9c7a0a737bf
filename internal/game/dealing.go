package game

import (
	"fmt"
	"sort"

	"github.com/lox/hometable/poker"
)

// ConfirmDeal records that the dealer has finished dealing. Hold'em goes
// straight to preflop betting; stud waits for the hole cards to be entered.
func (e *Engine) ConfirmDeal(table TableState) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}
	if h.Phase != AwaitingDealConfirm {
		return table, fmt.Errorf("%w: confirm deal during %s", ErrWrongPhase, h.Phase)
	}

	next := table.Clone()
	if next.Variant == Stud && hasPlaceholders(next.CurrentHand) {
		next.CurrentHand.Phase = AwaitingStudFirst
		return next, nil
	}
	e.openStreet(&next)
	return next, nil
}

// RevealCommunityCards adds the flop, turn or river to the board.
func (e *Engine) RevealCommunityCards(table TableState, cards []poker.Card) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}
	if h.Phase != AwaitingCommunityCards {
		return table, fmt.Errorf("%w: community cards during %s", ErrWrongPhase, h.Phase)
	}
	if want := communityCount(h.Street); len(cards) != want {
		return table, fmt.Errorf("%w: %s needs %d cards, got %d", ErrInvalidCards, h.Street, want, len(cards))
	}
	if err := checkUnseen(h, cards); err != nil {
		return table, err
	}

	next := table.Clone()
	nh := next.CurrentHand
	nh.Board = append(nh.Board, cards...)
	nh.Deck = poker.RemoveCards(nh.Deck, cards...)
	e.logger.Debug("Board dealt", "hand", nh.Number, "street", nh.Street, "board", nh.Board)
	e.openStreet(&next)
	return next, nil
}

// DealCommunityFromDeck reveals the next board cards from the hand's own deck.
func (e *Engine) DealCommunityFromDeck(table TableState) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}
	if h.Phase != AwaitingCommunityCards {
		return table, fmt.Errorf("%w: community cards during %s", ErrWrongPhase, h.Phase)
	}
	dealt, _, err := poker.Deal(h.Deck, communityCount(h.Street))
	if err != nil {
		return table, fmt.Errorf("dealing %s: %w", h.Street, err)
	}
	return e.RevealCommunityCards(table, dealt)
}

// RevealStudFirst fills in every player's face-down first card and opens
// street one.
func (e *Engine) RevealStudFirst(table TableState, cards map[string]poker.Card) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}
	if h.Phase != AwaitingStudFirst {
		return table, fmt.Errorf("%w: stud hole cards during %s", ErrWrongPhase, h.Phase)
	}

	var need []string
	for _, id := range h.Participants {
		if hasPlaceholder(h.PlayerHands[id]) {
			need = append(need, id)
		}
	}
	codes, err := cardsFor(h, need, cards)
	if err != nil {
		return table, err
	}

	next := table.Clone()
	nh := next.CurrentHand
	for i, id := range need {
		hand := nh.PlayerHands[id]
		for j := range hand {
			if hand[j].Code == "" {
				hand[j].Code = codes[i]
				break
			}
		}
	}
	nh.Deck = poker.RemoveCards(nh.Deck, codes...)
	e.openStreet(&next)
	return next, nil
}

// RevealStudCards deals one face-up card to every player still in the hand
// and opens the street.
func (e *Engine) RevealStudCards(table TableState, cards map[string]poker.Card) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}
	if h.Phase != AwaitingStudCard {
		return table, fmt.Errorf("%w: stud card during %s", ErrWrongPhase, h.Phase)
	}

	var need []string
	for _, p := range contenders(table) {
		need = append(need, p.ID)
	}
	codes, err := cardsFor(h, need, cards)
	if err != nil {
		return table, err
	}

	next := table.Clone()
	nh := next.CurrentHand
	for i, id := range need {
		nh.PlayerHands[id] = append(nh.PlayerHands[id], HoleCard{Code: codes[i], FaceUp: true})
	}
	nh.Deck = poker.RemoveCards(nh.Deck, codes...)
	e.logger.Debug("Stud cards dealt", "hand", nh.Number, "street", nh.Street, "players", len(need))
	e.openStreet(&next)
	return next, nil
}

// DealStudFromDeck answers either stud checkpoint from the hand's own deck,
// one card per waiting player starting clockwise of the dealer.
func (e *Engine) DealStudFromDeck(table TableState) (TableState, error) {
	h := table.CurrentHand
	if h == nil {
		return table, ErrNoHand
	}

	waiting := make(map[string]bool)
	switch h.Phase {
	case AwaitingStudFirst:
		for _, id := range h.Participants {
			if hasPlaceholder(h.PlayerHands[id]) {
				waiting[id] = true
			}
		}
	case AwaitingStudCard:
		for _, p := range contenders(table) {
			waiting[p.ID] = true
		}
	default:
		return table, fmt.Errorf("%w: stud deal during %s", ErrWrongPhase, h.Phase)
	}

	cards := make(map[string]poker.Card, len(waiting))
	deck := h.Deck
	for _, id := range table.ringFromDealer() {
		if !waiting[id] {
			continue
		}
		var dealt []poker.Card
		var err error
		dealt, deck, err = poker.Deal(deck, 1)
		if err != nil {
			return table, fmt.Errorf("dealing stud card: %w", err)
		}
		cards[id] = dealt[0]
	}

	if h.Phase == AwaitingStudFirst {
		return e.RevealStudFirst(table, cards)
	}
	return e.RevealStudCards(table, cards)
}

// openStreet hands the action to the street's first player, or closes the
// street straight away when no decisions are left to make.
func (e *Engine) openStreet(t *TableState) {
	h := t.CurrentHand
	if !bettingNeeded(*t) {
		e.closeStreet(t)
		return
	}
	id, ok := firstActor(*t)
	if !ok {
		e.closeStreet(t)
		return
	}
	h.Phase = AwaitingAction
	h.ActivePlayerID = id
	e.logger.Debug("Street open", "hand", h.Number, "street", h.Street, "first", id)
}

// firstActor picks who opens the betting on the current street.
func firstActor(t TableState) (string, bool) {
	h := t.CurrentHand
	players := t.participants()

	switch {
	case h.Variant == Holdem && h.Street == Preflop:
		start := h.DealerSeat
		if n := len(players); n > 2 {
			d := 0
			for i, p := range players {
				if p.Seat == h.DealerSeat {
					d = i
				}
			}
			start = players[(d+3)%n].Seat
		}
		// Seats are distinct integers, so clockwise of start-1 includes start.
		return NextActor(players, start-1)
	case h.Variant == Stud && h.Street != Street1:
		return bestShowing(t)
	default:
		return NextActor(players, h.DealerSeat)
	}
}

// bestShowing returns the active player with the strongest face-up cards.
// Ties go to the first of them clockwise of the dealer.
func bestShowing(t TableState) (string, bool) {
	h := t.CurrentHand
	var bestID string
	var bestKey []int
	for _, id := range t.ringFromDealer() {
		p, ok := t.Player(id)
		if !ok || p.Status != Active {
			continue
		}
		var up []poker.Card
		for _, c := range h.PlayerHands[id] {
			if c.FaceUp {
				up = append(up, c.Code)
			}
		}
		key := showingKey(up)
		if bestKey == nil || compareKeys(key, bestKey) > 0 {
			bestID, bestKey = id, key
		}
	}
	return bestID, bestID != ""
}

// showingKey scores an open hand of up to four cards: a category (high
// card, pair, two pair, trips, quads) followed by the ranks of each group,
// bigger groups first.
func showingKey(cards []poker.Card) []int {
	counts := make(map[int]int)
	for _, c := range cards {
		if r := c.Rank(); r >= 0 {
			counts[r]++
		}
	}
	type group struct{ rank, count int }
	groups := make([]group, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, group{r, n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	category := 0
	if len(groups) > 0 {
		switch groups[0].count {
		case 4:
			category = 4
		case 3:
			category = 3
		case 2:
			category = 1
			if len(groups) > 1 && groups[1].count == 2 {
				category = 2
			}
		}
	}
	key := []int{category}
	for _, g := range groups {
		key = append(key, g.rank)
	}
	return key
}

func compareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return len(a) - len(b)
}

func hasPlaceholder(cards []HoleCard) bool {
	for _, c := range cards {
		if c.Code == "" {
			return true
		}
	}
	return false
}

func hasPlaceholders(h *HandState) bool {
	for _, cards := range h.PlayerHands {
		if hasPlaceholder(cards) {
			return true
		}
	}
	return false
}

// checkUnseen rejects invalid codes and cards already showing in the hand.
func checkUnseen(h *HandState, cards []poker.Card) error {
	used := make(map[poker.Card]bool)
	for _, c := range h.Board {
		used[c] = true
	}
	for _, hand := range h.PlayerHands {
		for _, c := range hand {
			if c.Code != "" {
				used[c.Code] = true
			}
		}
	}
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %q is not a card", ErrInvalidCards, string(c))
		}
		if used[c] {
			return fmt.Errorf("%w: %s already dealt", ErrInvalidCards, c)
		}
		used[c] = true
	}
	return nil
}

// cardsFor pulls exactly one card per waiting player out of cards.
func cardsFor(h *HandState, need []string, cards map[string]poker.Card) ([]poker.Card, error) {
	if len(cards) != len(need) {
		return nil, fmt.Errorf("%w: want cards for %d players, got %d", ErrInvalidCards, len(need), len(cards))
	}
	codes := make([]poker.Card, len(need))
	for i, id := range need {
		c, ok := cards[id]
		if !ok {
			return nil, fmt.Errorf("%w: no card for %s", ErrInvalidCards, id)
		}
		codes[i] = c
	}
	if err := checkUnseen(h, codes); err != nil {
		return nil, err
	}
	return codes, nil
}
