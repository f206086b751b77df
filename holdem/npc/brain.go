package npc

import (
	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

// GameView is a read-only projection of the hand visible to the NPC seat.
type GameView struct {
	Seat      holdem.Seat
	Street    holdem.Street
	Button    bool
	HoleCards []card.Card
	Community []card.Card

	Pot        int64
	BetToMatch int64
	ToCall     int64
	MyBet      int64
	MyStack    int64
	OppStack   int64
	BigBlind   int64

	// MinTotal/MaxTotal bound a bet or raise street total.
	MinTotal int64
	MaxTotal int64

	RaisesThisStreet int
	MaxRaises        int
	LegalActions     []holdem.ActionType
}

// NewGameView combines the seat's own snapshot with its legal actions.
func NewGameView(snap holdem.Snapshot, legal holdem.Legal) GameView {
	me := snap.Seat(legal.Seat)
	opp := snap.Seat(legal.Seat.Other())
	return GameView{
		Seat:             legal.Seat,
		Street:           snap.Street,
		Button:           snap.Button == legal.Seat,
		HoleCards:        me.HandCards,
		Community:        snap.CommunityCards,
		Pot:              snap.Pot,
		BetToMatch:       snap.BetToMatch,
		ToCall:           legal.ToCall,
		MyBet:            me.Bet,
		MyStack:          me.Stack,
		OppStack:         opp.Stack,
		BigBlind:         snap.BigBlind,
		MinTotal:         legal.MinTotal,
		MaxTotal:         legal.MaxTotal,
		RaisesThisStreet: snap.RaisesThisStreet,
		MaxRaises:        snap.MaxRaises,
		LegalActions:     legal.Actions,
	}
}

// PotAfterCall is the pot once the seat has matched the current bet.
func (v GameView) PotAfterCall() int64 { return v.Pot + v.ToCall }

func (v GameView) Can(t holdem.ActionType) bool { return contains(v.LegalActions, t) }

// Decision is what a BrainDecider returns. Bet and raise totals are street
// totals; the engine clamps them to the stack.
type Decision struct {
	Action   holdem.Action
	Strength float64
	Reason   string
}

// BrainDecider is the core interface all NPC types implement.
type BrainDecider interface {
	// Decide is called when it's the NPC's turn.
	Decide(view GameView) Decision
	// Name returns a human-readable identifier for debugging.
	Name() string
}
