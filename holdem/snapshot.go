package holdem

import "headsup-holdem/card"

type SeatSnapshot struct {
	Seat       Seat
	Stack      int64
	Bet        int64 // street contribution
	Committed  int64 // hand contribution
	ToCall     int64
	Acted      bool
	AllIn      bool
	LastAction ActionType
	// HandCards is empty unless the viewer owns the seat or the hand is over.
	HandCards []card.Card
	// MadeHand describes the best hand from the visible cards once the flop is out.
	MadeHand string
}

type Snapshot struct {
	HandNo   uint32
	HandID   string
	Epoch    uint64
	Street   Street
	HandOver bool

	Button Seat
	ToAct  Seat

	SmallBlind       int64
	BigBlind         int64
	Pot              int64
	BetToMatch       int64
	LastBetSize      int64
	MinRaiseTo       int64
	RaisesThisStreet int
	MaxRaises        int

	CommunityCards []card.Card
	Seats          [2]SeatSnapshot

	Result *SettlementResult
}

func (s Snapshot) Seat(seat Seat) SeatSnapshot { return s.Seats[seat.index()] }

// TotalChips counts every chip at the table: both stacks plus the pot.
func (s Snapshot) TotalChips() int64 {
	return s.Pot + s.Seats[0].Stack + s.Seats[1].Stack
}

// Snapshot is the public view: hole cards stay hidden until the hand is over.
func (g *Session) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked(SeatNone)
}

// ViewFor is the view of one seat: its own hole cards are visible.
func (g *Session) ViewFor(seat Seat) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked(seat)
}

func (g *Session) snapshotLocked(viewer Seat) Snapshot {
	s := Snapshot{
		HandNo:           g.handNo,
		HandID:           g.handID,
		Epoch:            g.epoch,
		Street:           g.street,
		HandOver:         g.over,
		Button:           g.button,
		ToAct:            g.toAct,
		SmallBlind:       g.cfg.SmallBlind,
		BigBlind:         g.cfg.BigBlind,
		Pot:              g.pot,
		BetToMatch:       g.betToMatch,
		LastBetSize:      g.lastBetSize,
		RaisesThisStreet: g.raises,
		MaxRaises:        g.cfg.MaxRaisesPerStreet,
		CommunityCards:   append([]card.Card{}, g.board...),
	}
	// Zero whenever LegalActions offers no bet or raise.
	if !g.over && g.canAggressLocked(g.toAct) {
		s.MinRaiseTo = g.minTotalLocked()
	}

	for _, seat := range Seats {
		p := g.player(seat)
		ss := SeatSnapshot{
			Seat:       seat,
			Stack:      p.stack,
			Bet:        p.bet,
			Committed:  p.committed,
			ToCall:     g.amountToCallLocked(seat),
			Acted:      p.acted,
			AllIn:      p.AllIn(),
			LastAction: p.lastAction,
		}
		if g.over || seat == viewer {
			ss.HandCards = append([]card.Card{}, p.handCards...)
			if len(ss.HandCards) == 2 && len(g.board) >= 3 {
				all := append(card.CardList{}, p.handCards...)
				all = append(all, g.board...)
				if best := EvalBest(all); best != nil {
					ss.MadeHand = best.Score.String()
				}
			}
		}
		s.Seats[seat.index()] = ss
	}

	if g.lastSettlement != nil {
		r := *g.lastSettlement
		r.Winners = append([]Seat{}, r.Winners...)
		s.Result = &r
	}
	return s
}
