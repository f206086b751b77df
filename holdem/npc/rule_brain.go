package npc

import (
	"fmt"
	"math"
	"math/rand"

	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

// RuleBrain estimates strength from a preflop hand matrix and, once the flop
// is out, from the made-hand category. Thresholds come from the persona.
type RuleBrain struct {
	Persona *NPCPersona
	rng     *rand.Rand
}

// NewRuleBrain creates a RuleBrain from a persona definition.
func NewRuleBrain(persona *NPCPersona, seed int64) *RuleBrain {
	return &RuleBrain{
		Persona: persona,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *RuleBrain) Name() string { return b.Persona.Name }

// Decide implements BrainDecider.
func (b *RuleBrain) Decide(view GameView) Decision {
	p := b.Persona.Brain
	strength := estimateStrength(view)
	if p.Randomness > 0 {
		strength = clamp01(strength + (b.rng.Float64()-0.5)*p.Randomness*0.2)
	}
	return decide(view, strength, p)
}

// decide maps a strength in [0,1] to an action.
func decide(view GameView, strength float64, p PersonalityProfile) Decision {
	if len(view.LegalActions) == 0 {
		return Decision{Action: holdem.Fold{}, Strength: strength, Reason: "no legal actions"}
	}
	aggressive := strength > p.AggressiveThreshold && view.RaisesThisStreet < view.MaxRaises

	if view.ToCall > 0 {
		if strength < p.FoldThreshold && view.ToCall > view.BigBlind*p.bigBet() && view.Can(holdem.ActionFold) {
			return Decision{Action: holdem.Fold{}, Strength: strength, Reason: "weak hand facing a big bet"}
		}
		if aggressive && view.Can(holdem.ActionRaise) {
			to := sizeTotal(view, strength, orOne(p.RaiseMultiplier))
			return Decision{Action: holdem.Raise{To: to}, Strength: strength, Reason: fmt.Sprintf("strength %.2f", strength)}
		}
		return Decision{Action: holdem.Call{}, Strength: strength, Reason: "call"}
	}

	if aggressive {
		to := sizeTotal(view, strength, orOne(p.OpenMultiplier))
		switch {
		case view.Can(holdem.ActionBet):
			return Decision{Action: holdem.Bet{To: to}, Strength: strength, Reason: fmt.Sprintf("strength %.2f", strength)}
		case view.Can(holdem.ActionRaise):
			return Decision{Action: holdem.Raise{To: to}, Strength: strength, Reason: fmt.Sprintf("strength %.2f", strength)}
		}
	}
	return Decision{Action: holdem.Check{}, Strength: strength, Reason: "check"}
}

// sizeTotal sizes between 0.5x and 1.2x the pot after calling, on top of the
// current bet, kept inside the legal range.
func sizeTotal(view GameView, strength, multiplier float64) int64 {
	factor := 0.5 + 0.7*clamp01(strength-0.5)
	base := int64(math.Floor(float64(view.PotAfterCall())*factor)) + view.BetToMatch
	to := int64(math.Floor(float64(base) * multiplier))
	if to < view.MinTotal {
		to = view.MinTotal
	}
	if view.MaxTotal > 0 && to > view.MaxTotal {
		to = view.MaxTotal
	}
	return to
}

// estimateStrength returns a 0.0 to 1.0 heuristic.
func estimateStrength(view GameView) float64 {
	if len(view.HoleCards) < 2 {
		return 0.3
	}
	if view.Street == holdem.StreetPreflop || len(view.Community) < 3 {
		return preflopStrength(view.HoleCards[0], view.HoleCards[1])
	}
	all := make(card.CardList, 0, 7)
	all = append(all, view.HoleCards...)
	all = append(all, view.Community...)
	best := holdem.EvalBest(all)
	if best == nil {
		return 0.5
	}
	return categoryStrength(best.Score.Category())
}

var categoryStrengths = map[holdem.HandCategory]float64{
	holdem.HandStraightFlush: 0.99,
	holdem.HandFourOfKind:    0.97,
	holdem.HandFullHouse:     0.95,
	holdem.HandFlush:         0.85,
	holdem.HandStraight:      0.8,
	holdem.HandThreeOfKind:   0.6,
	holdem.HandTwoPair:       0.5,
	holdem.HandOnePair:       0.35,
	holdem.HandHighCard:      0.2,
}

func categoryStrength(c holdem.HandCategory) float64 {
	if s, ok := categoryStrengths[c]; ok {
		return s
	}
	return 0.5
}

// preflopStrength is a coarse starting-hand matrix: pairs scale with rank,
// then broadways, suited connectors and gappers.
func preflopStrength(c1, c2 card.Card) float64 {
	v1, v2 := c1.Value(), c2.Value()
	high, low := max(v1, v2), min(v1, v2)
	suited := c1.Suit() == c2.Suit()
	gap := high - low

	score := 0.25
	switch {
	case v1 == v2:
		score = 0.6 + float64(high-6)*0.04
	case high >= 13 && low >= 11:
		score = 0.55
	case suited && gap <= 2 && high >= 10:
		score = 0.5
	case suited && gap <= 3:
		score = 0.45
	case high >= 13 && low >= 9:
		score = 0.45
	}
	if suited {
		score += 0.03
	}
	if high >= 14 {
		score += 0.02
	}
	return math.Max(0.1, math.Min(0.9, score))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func contains(actions []holdem.ActionType, target holdem.ActionType) bool {
	for _, a := range actions {
		if a == target {
			return true
		}
	}
	return false
}
