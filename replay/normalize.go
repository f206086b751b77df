package replay

import (
	"fmt"
	"math/rand"
	"strings"

	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

type normalizedSeat struct {
	seat   holdem.Seat
	name   string
	stack  int64
	isHero bool
	hole   []card.Card
}

type normalizedAction struct {
	street holdem.Street
	seat   holdem.Seat
	action holdem.Action
}

type normalizedSpec struct {
	cfg            holdem.Config
	seats          [2]normalizedSeat
	hero           holdem.Seat
	actions        []normalizedAction
	handStartStack [2]int64
}

func (n *normalizedSpec) seat(s holdem.Seat) *normalizedSeat {
	return &n.seats[s-holdem.SeatPlayer]
}

// Deck slots: hole cards alternate from the button, then burn, flop x3,
// burn, turn, burn, river.
const (
	slotFlop  = 5
	slotTurn  = 9
	slotRiver = 11
)

func normalizeSpec(spec HandSpec) (normalizedSpec, error) {
	var out normalizedSpec

	t := spec.Table
	if t.BB <= 0 || t.SB < 0 || t.SB > t.BB {
		return out, setupErr("invalid_blinds", "invalid blinds configuration")
	}
	cfg := holdem.DefaultConfig()
	cfg.SmallBlind = t.SB
	cfg.BigBlind = t.BB
	if t.StartingStack > 0 {
		cfg.StartingStack = t.StartingStack
	}
	if t.MaxRaises > 0 {
		cfg.MaxRaisesPerStreet = t.MaxRaises
	}
	cfg.Seed = seedFromSpec(spec.RNG)
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	cfg.InitialButton = holdem.SeatOpponent
	if spec.Button != "" {
		b, err := holdem.ParseSeat(strings.ToLower(strings.TrimSpace(spec.Button)))
		if err != nil {
			return out, setupErr("invalid_button", "%v", err)
		}
		cfg.InitialButton = b
	}

	for _, s := range holdem.Seats {
		*out.seat(s) = normalizedSeat{seat: s, name: s.String(), stack: cfg.StartingStack}
	}
	heroCount := 0
	seen := map[holdem.Seat]bool{}
	for i, ss := range spec.Seats {
		s, err := holdem.ParseSeat(strings.ToLower(strings.TrimSpace(ss.Seat)))
		if err != nil {
			return out, setupErr("invalid_seat", "seat %d: %v", i, err)
		}
		if seen[s] {
			return out, setupErr("duplicate_seat", "duplicate seat %s", s)
		}
		seen[s] = true
		if ss.Stack <= 0 {
			return out, setupErr("invalid_stack", "seat %s stack must be > 0", s)
		}
		hole, err := parseHoleCards(ss.Hole)
		if err != nil {
			return out, setupErr("invalid_hole_cards", "%v", err)
		}
		ns := out.seat(s)
		ns.stack = ss.Stack
		ns.hole = hole
		ns.isHero = ss.IsHero
		if name := strings.TrimSpace(ss.Name); name != "" {
			ns.name = name
		}
		if ss.IsHero {
			heroCount++
			out.hero = s
		}
	}
	switch {
	case heroCount == 0:
		out.hero = holdem.SeatPlayer
	case heroCount > 1:
		return out, setupErr("invalid_hero", "multiple seats marked as hero")
	}

	board, err := parseBoard(spec.Board)
	if err != nil {
		return out, err
	}
	constraints, err := buildSlotConstraints(cfg.InitialButton, &out, board)
	if err != nil {
		return out, err
	}
	cfg.DeckOverride, err = parseOrBuildDeck(spec.Deck, constraints, seedFromSpec(spec.RNG))
	if err != nil {
		return out, err
	}
	out.cfg = cfg

	out.actions = make([]normalizedAction, 0, len(spec.Actions))
	for i, a := range spec.Actions {
		street, err := holdem.ParseStreet(strings.ToLower(a.Street))
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_street", Message: err.Error()}
		}
		seat, err := holdem.ParseSeat(strings.ToLower(a.Seat))
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_action_seat", Message: err.Error()}
		}
		at, err := holdem.ParseActionType(strings.ToLower(a.Type))
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_action", Message: err.Error()}
		}
		action, err := holdem.NewAction(at, a.AmountTo)
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_action", Message: err.Error()}
		}
		out.actions = append(out.actions, normalizedAction{street: street, seat: seat, action: action})
	}
	return out, nil
}

func parseOrBuildDeck(deck []string, constraints map[int]card.Card, seed int64) ([]card.Card, error) {
	if len(deck) > 0 {
		if len(deck) != 52 {
			return nil, setupErr("invalid_deck", "deck must contain 52 cards")
		}
		out := make(card.CardList, len(deck))
		for i, s := range deck {
			c, err := card.Parse(s)
			if err != nil {
				return nil, setupErr("invalid_deck_card", "deck[%d]: %v", i, err)
			}
			out[i] = c
		}
		if c, dup := out.Duplicate(); dup {
			return nil, setupErr("invalid_deck", "duplicate card %s in deck", c)
		}
		for idx, expected := range constraints {
			if out[idx] != expected {
				return nil, setupErr("deck_constraint_mismatch", "deck[%d] does not match constrained card %s", idx, expected)
			}
		}
		return out, nil
	}

	used := make(card.CardList, 0, len(constraints))
	for _, c := range constraints {
		used = append(used, c)
	}
	remaining := make(card.CardList, 0, 52-len(constraints))
	for _, c := range card.NewDeck() {
		if !used.Contains(c) {
			remaining = append(remaining, c)
		}
	}
	if seed != 0 {
		remaining.Shuffle(rand.New(rand.NewSource(seed)))
	}

	out := make([]card.Card, 52)
	ri := 0
	for i := range out {
		if constrained, ok := constraints[i]; ok {
			out[i] = constrained
			continue
		}
		out[i] = remaining[ri]
		ri++
	}
	return out, nil
}

func parseHoleCards(hole []string) ([]card.Card, error) {
	if len(hole) == 0 {
		return nil, nil
	}
	if len(hole) != 2 {
		return nil, fmt.Errorf("hole cards must contain exactly 2 cards")
	}
	out := make([]card.Card, 2)
	for i := range hole {
		c, err := card.Parse(hole[i])
		if err != nil {
			return nil, fmt.Errorf("hole[%d]: %w", i, err)
		}
		out[i] = c
	}
	if out[0] == out[1] {
		return nil, fmt.Errorf("hole cards cannot duplicate")
	}
	return out, nil
}

// parseBoard returns the five board slots; unknown cards are nil.
func parseBoard(board *BoardSpec) ([]*card.Card, error) {
	out := make([]*card.Card, 5)
	if board == nil {
		return out, nil
	}
	if len(board.Flop) != 0 && len(board.Flop) != 3 {
		return nil, setupErr("invalid_board", "flop must be either empty or 3 cards")
	}
	parse := func(idx int, s, label string) error {
		c, err := card.Parse(s)
		if err != nil {
			return setupErr("invalid_board_card", "%s: %v", label, err)
		}
		out[idx] = &c
		return nil
	}
	for i, s := range board.Flop {
		if err := parse(i, s, fmt.Sprintf("flop[%d]", i)); err != nil {
			return nil, err
		}
	}
	if board.Turn != nil {
		if err := parse(3, *board.Turn, "turn"); err != nil {
			return nil, err
		}
	}
	if board.River != nil {
		if err := parse(4, *board.River, "river"); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func buildSlotConstraints(button holdem.Seat, ns *normalizedSpec, board []*card.Card) (map[int]card.Card, error) {
	constraints := make(map[int]card.Card, 9)
	used := make(map[card.Card]struct{}, 9)

	for i, s := range [2]holdem.Seat{button, button.Other()} {
		hole := ns.seat(s).hole
		for round := range hole {
			if err := assignConstraint(constraints, used, round*2+i, hole[round]); err != nil {
				return nil, err
			}
		}
	}

	slots := [5]int{slotFlop, slotFlop + 1, slotFlop + 2, slotTurn, slotRiver}
	for i, cc := range board {
		if cc == nil {
			continue
		}
		if err := assignConstraint(constraints, used, slots[i], *cc); err != nil {
			return nil, err
		}
	}
	return constraints, nil
}

func assignConstraint(constraints map[int]card.Card, used map[card.Card]struct{}, slot int, c card.Card) error {
	if existing, ok := constraints[slot]; ok && existing != c {
		return setupErr("duplicate_constraints", "conflicting cards for slot %d", slot)
	}
	if _, ok := used[c]; ok {
		return setupErr("duplicate_cards", "card %s appears multiple times in constraints", c)
	}
	constraints[slot] = c
	used[c] = struct{}{}
	return nil
}

func seedFromSpec(rng *RNGSpec) int64 {
	if rng == nil {
		return 0
	}
	return rng.Seed
}
