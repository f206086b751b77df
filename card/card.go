package card

import (
	"fmt"
	"strings"
)

// Card 牌枚举
//
// 编码规则:
// - 高4位: 花色 (0:Spade, 1:Heart, 2:Club, 3:Diamond)
// - 低4位: 点数 (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K)
type Card byte

const (
	CardInvalid Card = 0
	CardRear    Card = 0xFF
)

// Rank is the face rank, A=1 .. K=13.
type Rank byte

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const rankLetters = "?A23456789TJQK"

func (r Rank) Letter() byte {
	if r < Ace || r > King {
		return '?'
	}
	return rankLetters[r]
}

// Value 返回用于比较大小的点数, A 视为 14.
func (r Rank) Value() int {
	if r == Ace {
		return 14
	}
	return int(r)
}

// New builds a card from suit and rank. Out-of-range input yields CardInvalid.
func New(s Suit, r Rank) Card {
	if !s.valid() || r < Ace || r > King {
		return CardInvalid
	}
	return Card(byte(s)<<4 | byte(r))
}

func (c Card) Valid() bool {
	return c != CardInvalid && c != CardRear && c.Suit().valid() && c.Rank() >= Ace && c.Rank() <= King
}

// Rank 获取牌面值 1-13 (A=1, K=13)
func (c Card) Rank() Rank {
	if c == CardInvalid || c == CardRear {
		return 0
	}
	return Rank(c & 0x0F)
}

func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == Ace
}

// Value is the comparison value 2..14 with the ace high.
func (c Card) Value() int {
	return c.Rank().Value()
}

// String renders the card for humans, e.g. "A♠", "10♥".
func (c Card) String() string {
	switch c {
	case CardInvalid:
		return "Invalid"
	case CardRear:
		return "Rear"
	}
	if c.Rank() == Ten {
		return "10" + c.Suit().String()
	}
	return string(c.Rank().Letter()) + c.Suit().String()
}

// Code renders the two-letter form accepted by Parse, e.g. "As", "Td".
func (c Card) Code() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{c.Rank().Letter(), c.Suit().Letter()})
}

// Parse 将字符串 (如 "As", "Td", "10h") 转换为 Card
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return CardInvalid, fmt.Errorf("invalid card string: %q", s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 's', 'S':
		suit = Spade
	case 'h', 'H':
		suit = Heart
	case 'c', 'C':
		suit = Club
	case 'd', 'D':
		suit = Diamond
	default:
		return CardInvalid, fmt.Errorf("invalid suit in %q", s)
	}

	rankStr := strings.ToUpper(s[:len(s)-1])
	if rankStr == "10" {
		rankStr = "T"
	}
	if len(rankStr) != 1 {
		return CardInvalid, fmt.Errorf("invalid rank in %q", s)
	}
	idx := strings.IndexByte(rankLetters, rankStr[0])
	if idx < int(Ace) {
		return CardInvalid, fmt.Errorf("invalid rank in %q", s)
	}
	return New(suit, Rank(idx)), nil
}

// MustParse is Parse for literals in tests and tables; it panics on bad input.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses a whitespace separated list such as "As Kd 2c".
func ParseList(s string) (CardList, error) {
	fields := strings.Fields(s)
	out := make(CardList, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func MustParseList(s string) CardList {
	cl, err := ParseList(s)
	if err != nil {
		panic(err)
	}
	return cl
}
