package card

import (
	"math/rand"
	"strings"
)

type CardList []Card

// NewDeck returns the 52 distinct cards, suit by suit, ace first.
func NewDeck() CardList {
	out := make(CardList, 0, 52)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			out = append(out, New(s, r))
		}
	}
	return out
}

func (ds *CardList) Init(cards []Card) {
	*ds = make([]Card, len(cards))
	copy(*ds, cards)
}

// Count 获取总牌数
func (ds CardList) Count() int {
	return len(ds)
}

// Shuffle applies a Fisher-Yates permutation driven by rng.
func (ds CardList) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

func (ds *CardList) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

// Deal removes and returns the top card.
func (ds *CardList) Deal() (Card, bool) {
	if len(*ds) == 0 {
		return CardInvalid, false
	}
	c := (*ds)[0]
	*ds = (*ds)[1:]
	return c, true
}

func (ds *CardList) PopCards(size int) ([]Card, bool) {
	if size > ds.Count() {
		return nil, false
	}
	cards := make([]Card, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards, true
}

func (ds CardList) Contains(c Card) bool {
	for _, cc := range ds {
		if cc == c {
			return true
		}
	}
	return false
}

// Duplicate reports the first card that appears twice, if any.
func (ds CardList) Duplicate() (Card, bool) {
	var seen [256]bool
	for _, c := range ds {
		if seen[c] {
			return c, true
		}
		seen[c] = true
	}
	return CardInvalid, false
}

func (ds CardList) Clone() CardList {
	if ds == nil {
		return nil
	}
	out := make(CardList, len(ds))
	copy(out, ds)
	return out
}

func (ds CardList) String() string {
	parts := make([]string, len(ds))
	for i, c := range ds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Codes returns the two-letter code of each card.
func (ds CardList) Codes() []string {
	out := make([]string, len(ds))
	for i, c := range ds {
		out[i] = c.Code()
	}
	return out
}
