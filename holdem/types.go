package holdem

import "fmt"

// Seat identifies one of the two participants.
type Seat byte

const (
	SeatNone     Seat = 0
	SeatPlayer   Seat = 1
	SeatOpponent Seat = 2
)

// Seats lists both seats in index order.
var Seats = [...]Seat{SeatPlayer, SeatOpponent}

func (s Seat) Other() Seat {
	switch s {
	case SeatPlayer:
		return SeatOpponent
	case SeatOpponent:
		return SeatPlayer
	}
	return SeatNone
}

func (s Seat) Valid() bool { return s == SeatPlayer || s == SeatOpponent }

func (s Seat) index() int { return int(s) - 1 }

func (s Seat) String() string {
	switch s {
	case SeatPlayer:
		return "player"
	case SeatOpponent:
		return "opponent"
	}
	return "none"
}

// ParseSeat accepts the String form of a seat.
func ParseSeat(s string) (Seat, error) {
	switch s {
	case "player":
		return SeatPlayer, nil
	case "opponent":
		return SeatOpponent, nil
	}
	return SeatNone, fmt.Errorf("unknown seat %q", s)
}

// Street 游戏阶段
type Street byte

const (
	StreetPreflop  Street = 1
	StreetFlop     Street = 2
	StreetTurn     Street = 3
	StreetRiver    Street = 4
	StreetShowdown Street = 5
)

var StreetDictionary = map[Street]string{
	StreetPreflop:  "preflop",
	StreetFlop:     "flop",
	StreetTurn:     "turn",
	StreetRiver:    "river",
	StreetShowdown: "showdown",
}

func (s Street) String() string {
	if name, ok := StreetDictionary[s]; ok {
		return name
	}
	return "none"
}

func ParseStreet(s string) (Street, error) {
	for st, name := range StreetDictionary {
		if name == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown street %q", s)
}

// boardSize is the number of community cards visible once the street is dealt.
func (s Street) boardSize() int {
	switch s {
	case StreetFlop:
		return 3
	case StreetTurn:
		return 4
	case StreetRiver, StreetShowdown:
		return 5
	}
	return 0
}

// ActionType 动作类型：0-NONE 1-CHECK 2-BET 3-CALL 4-RAISE 5-FOLD
type ActionType byte

const (
	ActionNone  ActionType = 0
	ActionCheck ActionType = 1
	ActionBet   ActionType = 2
	ActionCall  ActionType = 3
	ActionRaise ActionType = 4
	ActionFold  ActionType = 5
	// ActionBlind marks the forced blind post in LastAction.
	ActionBlind ActionType = 6
)

var ActionTypeDictionary = map[ActionType]string{
	ActionNone:  "none",
	ActionCheck: "check",
	ActionBet:   "bet",
	ActionCall:  "call",
	ActionRaise: "raise",
	ActionFold:  "fold",
	ActionBlind: "blind",
}

func (a ActionType) String() string {
	if name, ok := ActionTypeDictionary[a]; ok {
		return name
	}
	return "unknown"
}

func ParseActionType(s string) (ActionType, error) {
	for at, name := range ActionTypeDictionary {
		if name == s && at != ActionNone && at != ActionBlind {
			return at, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// HandCategory 牌型, larger is stronger.
type HandCategory uint8

const (
	HandHighCard HandCategory = iota + 1
	HandOnePair
	HandTwoPair
	HandThreeOfKind
	HandStraight
	HandFlush
	HandFullHouse
	HandFourOfKind
	HandStraightFlush
)

var HandCategoryDictionary = map[HandCategory]string{
	HandHighCard:      "High Card",
	HandOnePair:       "One Pair",
	HandTwoPair:       "Two Pair",
	HandThreeOfKind:   "Three of a Kind",
	HandStraight:      "Straight",
	HandFlush:         "Flush",
	HandFullHouse:     "Full House",
	HandFourOfKind:    "Four of a Kind",
	HandStraightFlush: "Straight Flush",
}

func (c HandCategory) String() string {
	if name, ok := HandCategoryDictionary[c]; ok {
		return name
	}
	return "Hand"
}

// OddChipRule decides who receives the indivisible chip of a split pot.
type OddChipRule byte

const (
	// OddChipOpponent always pays the odd chip to the opponent seat.
	OddChipOpponent OddChipRule = iota
	OddChipPlayer
	OddChipButton
	OddChipNonButton
)

func (r OddChipRule) seat(button Seat) Seat {
	switch r {
	case OddChipPlayer:
		return SeatPlayer
	case OddChipButton:
		return button
	case OddChipNonButton:
		return button.Other()
	}
	return SeatOpponent
}
