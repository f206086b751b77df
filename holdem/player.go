package holdem

import "headsup-holdem/card"

// Player is the per-seat state. The stack survives across hands; every other
// field belongs to the current hand.
type Player struct {
	Seat Seat

	stack     int64
	bet       int64 // contribution on the current street
	committed int64 // contribution over the whole hand

	acted      bool
	lastAction ActionType

	handCards card.CardList
}

func (p *Player) Stack() int64     { return p.stack }
func (p *Player) Bet() int64       { return p.bet }
func (p *Player) Committed() int64 { return p.committed }
func (p *Player) AllIn() bool      { return p.stack == 0 && p.committed > 0 }

func (p *Player) HandCards() card.CardList { return p.handCards }

func (p *Player) ResetForNewHand() {
	p.bet = 0
	p.committed = 0
	p.acted = false
	p.lastAction = ActionNone
	p.handCards = make(card.CardList, 0, 2)
}

func (p *Player) resetForStreet() {
	p.bet = 0
	p.acted = false
}

func (p *Player) AddHandCard(cards ...card.Card) {
	p.handCards.Add(cards...)
}

// placeBet moves up to amount from the stack into the street bet and returns
// what was actually paid.
func (p *Player) placeBet(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	if amount > p.stack {
		amount = p.stack
	}
	p.stack -= amount
	p.bet += amount
	p.committed += amount
	return amount
}

// refund returns uncalled chips from the hand contribution to the stack.
func (p *Player) refund(amount int64) {
	p.stack += amount
	p.committed -= amount
	if p.bet >= amount {
		p.bet -= amount
	} else {
		p.bet = 0
	}
}

func (p *Player) addStack(amount int64) {
	p.stack += amount
}

// allInTotal is the largest street total the seat can reach.
func (p *Player) allInTotal() int64 { return p.bet + p.stack }
