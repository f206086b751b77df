package card

type Suit byte

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// Suits lists the four suits in encoding order.
var Suits = [...]Suit{Spade, Heart, Club, Diamond}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	}
	return "?"
}

// Letter is the single-letter code used in card strings ("As", "Td").
func (s Suit) Letter() byte {
	switch s {
	case Spade:
		return 's'
	case Heart:
		return 'h'
	case Club:
		return 'c'
	case Diamond:
		return 'd'
	}
	return '?'
}

func (s Suit) valid() bool { return s <= Diamond }
