package holdem

import (
	"fmt"
	"sort"

	"headsup-holdem/card"
)

// HandScore is [category, t1..t5]. Scores compare lexicographically; unused
// tiebreak slots are zero.
//
// Tiebreak slots per category:
//   - straight flush, straight: [high]
//   - four of a kind: [quad, kicker]
//   - full house: [trips, pair]
//   - flush, high card: [v1..v5]
//   - three of a kind: [trips, k1, k2]
//   - two pair: [high pair, low pair, kicker]
//   - one pair: [pair, k1, k2, k3]
type HandScore [6]uint8

func (s HandScore) Category() HandCategory { return HandCategory(s[0]) }

// Compare returns -1, 0 or 1.
func (s HandScore) Compare(o HandScore) int {
	for i := range s {
		switch {
		case s[i] > o[i]:
			return 1
		case s[i] < o[i]:
			return -1
		}
	}
	return 0
}

func (s HandScore) Beats(o HandScore) bool { return s.Compare(o) > 0 }

// String describes the hand, e.g. "Full House (Ks over 2s)".
func (s HandScore) String() string {
	switch s.Category() {
	case HandStraightFlush:
		if s[1] == 14 {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush (%s high)", valueLabel(s[1]))
	case HandFourOfKind:
		return fmt.Sprintf("Four of a Kind (%ss)", valueLabel(s[1]))
	case HandFullHouse:
		return fmt.Sprintf("Full House (%ss over %ss)", valueLabel(s[1]), valueLabel(s[2]))
	case HandFlush:
		return fmt.Sprintf("Flush (%s high)", valueLabel(s[1]))
	case HandStraight:
		return fmt.Sprintf("Straight (%s high)", valueLabel(s[1]))
	case HandThreeOfKind:
		return fmt.Sprintf("Three of a Kind (%ss)", valueLabel(s[1]))
	case HandTwoPair:
		return fmt.Sprintf("Two Pair (%ss and %ss)", valueLabel(s[1]), valueLabel(s[2]))
	case HandOnePair:
		return fmt.Sprintf("One Pair (%ss)", valueLabel(s[1]))
	case HandHighCard:
		return fmt.Sprintf("High Card (%s)", valueLabel(s[1]))
	}
	return "Hand"
}

func valueLabel(v uint8) string {
	switch v {
	case 14:
		return "A"
	case 13:
		return "K"
	case 12:
		return "Q"
	case 11:
		return "J"
	}
	return fmt.Sprintf("%d", v)
}

type BestHand struct {
	Score     HandScore
	BestIndex [5]int // Best 5 cards indices in the evaluated cards.
}

// BestFive returns the chosen five cards out of the evaluated set.
func (b *BestHand) BestFive(cards card.CardList) []card.Card {
	out := make([]card.Card, 0, 5)
	for _, i := range b.BestIndex {
		out = append(out, cards[i])
	}
	return out
}

// EvalBestOf7 evaluates the best 5-card hand from exactly 7 cards.
func EvalBestOf7(cards card.CardList) *BestHand {
	if len(cards) != 7 {
		return nil
	}
	return evalBestOfN(cards)
}

// EvalBest evaluates the best 5-card hand from 5, 6 or 7 cards.
func EvalBest(cards card.CardList) *BestHand {
	if len(cards) < 5 || len(cards) > 7 {
		return nil
	}
	return evalBestOfN(cards)
}

func evalBestOfN(cards card.CardList) *BestHand {
	n := len(cards)
	var best *BestHand
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						score := Eval5(cards[a], cards[b], cards[c], cards[d], cards[e])
						if best == nil || score.Beats(best.Score) {
							best = &BestHand{Score: score, BestIndex: [5]int{a, b, c, d, e}}
						}
					}
				}
			}
		}
	}
	return best
}

type rankGroup struct {
	count int
	value int
}

// Eval5 scores exactly five cards.
func Eval5(a, b, c, d, e card.Card) HandScore {
	cards := [5]card.Card{a, b, c, d, e}

	var counts [15]int
	flush := true
	for _, cc := range cards {
		counts[cc.Value()]++
		if cc.Suit() != cards[0].Suit() {
			flush = false
		}
	}

	// values descending, and groups ordered by (count desc, value desc)
	values := make([]int, 0, 5)
	groups := make([]rankGroup, 0, 5)
	for v := 14; v >= 2; v-- {
		for i := 0; i < counts[v]; i++ {
			values = append(values, v)
		}
		if counts[v] > 0 {
			groups = append(groups, rankGroup{count: counts[v], value: v})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })

	straightHigh := highestStraight(&counts)

	switch {
	case flush && straightHigh > 0:
		return score(HandStraightFlush, straightHigh)
	case groups[0].count == 4:
		return score(HandFourOfKind, groups[0].value, groups[1].value)
	case groups[0].count == 3 && groups[1].count == 2:
		return score(HandFullHouse, groups[0].value, groups[1].value)
	case flush:
		return score(HandFlush, values...)
	case straightHigh > 0:
		return score(HandStraight, straightHigh)
	case groups[0].count == 3:
		return score(HandThreeOfKind, groups[0].value, groups[1].value, groups[2].value)
	case groups[0].count == 2 && groups[1].count == 2:
		return score(HandTwoPair, groups[0].value, groups[1].value, groups[2].value)
	case groups[0].count == 2:
		return score(HandOnePair, groups[0].value, groups[1].value, groups[2].value, groups[3].value)
	}
	return score(HandHighCard, values...)
}

// highestStraight returns the top value of a five-long run, 5 for the wheel,
// or 0.
func highestStraight(counts *[15]int) int {
	for high := 14; high >= 6; high-- {
		run := true
		for v := high; v > high-5; v-- {
			if counts[v] == 0 {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	if counts[14] > 0 && counts[2] > 0 && counts[3] > 0 && counts[4] > 0 && counts[5] > 0 {
		return 5
	}
	return 0
}

func score(cat HandCategory, tiebreaks ...int) HandScore {
	var s HandScore
	s[0] = uint8(cat)
	for i, v := range tiebreaks {
		s[i+1] = uint8(v)
	}
	return s
}
