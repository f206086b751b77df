package holdem

import (
	"fmt"

	"headsup-holdem/card"
)

type Config struct {
	// Blinds
	SmallBlind int64
	BigBlind   int64

	// StartingStack is given to both seats on session creation and reset.
	StartingStack int64

	// MaxRaisesPerStreet caps bets plus raises on a single street.
	MaxRaisesPerStreet int

	// InitialButton holds the button on the first hand and after ResetSession.
	// SeatNone means SeatOpponent.
	InitialButton Seat

	// OddChip assigns the indivisible chip of a split pot.
	OddChip OddChipRule

	// RNG seed (0 => time-based)
	Seed int64

	// DeckOverride, when set, replaces the shuffle on every hand. It must be
	// a permutation of the 52 cards.
	DeckOverride []card.Card
}

// DefaultConfig is the 5/10 table with 1000 chip stacks and three raises per street.
func DefaultConfig() Config {
	return Config{
		SmallBlind:         5,
		BigBlind:           10,
		StartingStack:      1000,
		MaxRaisesPerStreet: 3,
		InitialButton:      SeatOpponent,
		OddChip:            OddChipOpponent,
	}
}

func (c Config) withDefaults() Config {
	if c.InitialButton == SeatNone {
		c.InitialButton = SeatOpponent
	}
	return c
}

func (c Config) validate() error {
	if c.SmallBlind < 0 || c.BigBlind <= 0 || c.SmallBlind > c.BigBlind {
		return fmt.Errorf("invalid blinds: sb=%d bb=%d", c.SmallBlind, c.BigBlind)
	}
	if c.StartingStack <= 0 {
		return fmt.Errorf("StartingStack must be > 0")
	}
	if c.MaxRaisesPerStreet <= 0 {
		return fmt.Errorf("MaxRaisesPerStreet must be > 0")
	}
	if !c.InitialButton.Valid() {
		return fmt.Errorf("invalid InitialButton %d", c.InitialButton)
	}
	if c.OddChip > OddChipNonButton {
		return fmt.Errorf("invalid OddChip rule %d", c.OddChip)
	}
	if c.DeckOverride != nil {
		deck := card.CardList(c.DeckOverride)
		if deck.Count() != 52 {
			return fmt.Errorf("DeckOverride must hold 52 cards, got %d", deck.Count())
		}
		if dup, ok := deck.Duplicate(); ok {
			return fmt.Errorf("DeckOverride has duplicate card %v", dup)
		}
		for _, cc := range deck {
			if !cc.Valid() {
				return fmt.Errorf("DeckOverride has invalid card %#x", byte(cc))
			}
		}
	}
	return nil
}
