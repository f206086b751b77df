package npc

import (
	"fmt"
	"math/rand"

	"github.com/paulhankin/poker"

	"headsup-holdem/card"
)

const defaultEquitySamples = 400

// EquityBrain plays the same thresholds as RuleBrain but measures strength as
// Monte-Carlo equity against one random hand.
type EquityBrain struct {
	Persona *NPCPersona
	Samples int
	rng     *rand.Rand
}

func NewEquityBrain(persona *NPCPersona, seed int64) *EquityBrain {
	samples := persona.Samples
	if samples <= 0 {
		samples = defaultEquitySamples
	}
	return &EquityBrain{
		Persona: persona,
		Samples: samples,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *EquityBrain) Name() string { return b.Persona.Name }

func (b *EquityBrain) Decide(view GameView) Decision {
	eq, err := Equity(view.HoleCards, view.Community, b.Samples, b.rng)
	if err != nil {
		// Unreadable cards: fall back to the matrix/category estimate.
		eq = estimateStrength(view)
	}
	d := decide(view, eq, b.Persona.Brain)
	d.Reason = fmt.Sprintf("equity %.2f: %s", eq, d.Reason)
	return d
}

// Equity estimates the share of the pot hole wins against a uniformly random
// opposing hand, with the rest of the board dealt at random. Ties count half.
func Equity(hole, board []card.Card, samples int, rng *rand.Rand) (float64, error) {
	if len(hole) != 2 || len(board) > 5 {
		return 0, fmt.Errorf("equity needs 2 hole cards and at most 5 board cards, got %d/%d", len(hole), len(board))
	}
	if samples <= 0 {
		samples = defaultEquitySamples
	}

	known := make(card.CardList, 0, 7)
	known = append(known, hole...)
	known = append(known, board...)
	if c, dup := known.Duplicate(); dup {
		return 0, fmt.Errorf("duplicate card %v", c)
	}

	mine, err := toPokerCards(known)
	if err != nil {
		return 0, err
	}
	stub := make([]poker.Card, 0, 52-len(known))
	for _, c := range card.NewDeck() {
		if known.Contains(c) {
			continue
		}
		pc, err := toPokerCard(c)
		if err != nil {
			return 0, err
		}
		stub = append(stub, pc)
	}

	need := 2 + (5 - len(board))
	var won float64
	var hero, villain [7]poker.Card
	for i := 0; i < samples; i++ {
		// partial Fisher-Yates: the first need cards of stub are the draw
		for j := 0; j < need; j++ {
			k := j + rng.Intn(len(stub)-j)
			stub[j], stub[k] = stub[k], stub[j]
		}
		n := copy(hero[:], mine)
		copy(hero[n:], stub[2:need])

		villain[0], villain[1] = stub[0], stub[1]
		copy(villain[2:], mine[2:])
		copy(villain[2+len(board):], stub[2:need])

		hs, vs := poker.Eval7(&hero), poker.Eval7(&villain)
		switch {
		case hs > vs:
			won++
		case hs == vs:
			won += 0.5
		}
	}
	return won / float64(samples), nil
}

func toPokerCard(c card.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit() {
	case card.Club:
		s = poker.Club
	case card.Diamond:
		s = poker.Diamond
	case card.Heart:
		s = poker.Heart
	case card.Spade:
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("invalid card %#x", byte(c))
	}
	// Both encodings count ranks ace=1..king=13.
	return poker.MakeCard(s, poker.Rank(c.Rank()))
}

func toPokerCards(cs []card.Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cs))
	for i, c := range cs {
		pc, err := toPokerCard(c)
		if err != nil {
			return nil, err
		}
		out[i] = pc
	}
	return out, nil
}

// Describe names a 5 to 7 card hand with the poker package's wording.
func Describe(cs []card.Card) (string, error) {
	pcs, err := toPokerCards(cs)
	if err != nil {
		return "", err
	}
	return poker.Describe(pcs)
}
