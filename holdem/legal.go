package holdem

// Legal describes what a seat may do right now. Totals are street totals.
type Legal struct {
	Seat    Seat
	Actions []ActionType
	ToCall  int64
	// MinTotal is the smallest bet or raise total; when the seat cannot
	// reach the normal minimum it equals MaxTotal (all-in only).
	MinTotal int64
	MaxTotal int64
}

func (l Legal) Can(t ActionType) bool {
	for _, a := range l.Actions {
		if a == t {
			return true
		}
	}
	return false
}

// LegalActions reports the legal actions for seat, which must be the seat to act.
func (g *Session) LegalActions(seat Seat) (Legal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalLocked(seat)
}

func (g *Session) legalLocked(seat Seat) (Legal, error) {
	if g.over {
		return Legal{Seat: seat}, ErrHandAlreadyOver
	}
	if seat != g.toAct {
		return Legal{Seat: seat}, ErrNotYourTurn
	}

	p := g.player(seat)
	l := Legal{
		Seat:   seat,
		ToCall: g.amountToCallLocked(seat),
	}
	l.Actions = append(l.Actions, ActionFold)
	if l.ToCall == 0 {
		l.Actions = append(l.Actions, ActionCheck)
	} else {
		l.Actions = append(l.Actions, ActionCall)
	}

	if g.canAggressLocked(seat) {
		if g.betToMatch == 0 {
			l.Actions = append(l.Actions, ActionBet)
		} else {
			l.Actions = append(l.Actions, ActionRaise)
		}
		l.MaxTotal = p.allInTotal()
		l.MinTotal = min(g.minTotalLocked(), l.MaxTotal)
	}
	return l, nil
}

// canAggressLocked: the cap is open, the other seat can still respond, and
// seat can go past the current bet.
func (g *Session) canAggressLocked(seat Seat) bool {
	if g.raises >= g.cfg.MaxRaisesPerStreet {
		return false
	}
	if g.player(seat.Other()).stack == 0 {
		return false
	}
	return g.player(seat).allInTotal() > g.betToMatch
}

// minTotalLocked is the smallest legal bet or raise total ignoring stack size.
func (g *Session) minTotalLocked() int64 {
	if g.betToMatch == 0 {
		return max(g.cfg.BigBlind, g.lastBetSize)
	}
	return g.betToMatch + max(g.cfg.BigBlind, g.lastBetSize)
}

// validateLocked checks a after turn order has been verified. For bets and
// raises it returns the street total to apply, clamped to the seat's stack.
func (g *Session) validateLocked(seat Seat, a Action) (int64, error) {
	p := g.player(seat)
	toCall := g.amountToCallLocked(seat)

	switch a.(type) {
	case Fold:
		return 0, nil

	case Check:
		if toCall > 0 {
			return 0, actionErr(seat, a.Type(), ErrIllegalCheck)
		}
		return 0, nil

	case Call:
		if toCall == 0 {
			return 0, actionErr(seat, a.Type(), ErrIllegalCall)
		}
		return 0, nil

	case Bet, Raise:
		belowMin := ErrBelowMinimumRaise
		if a.Type() == ActionBet {
			if g.betToMatch > 0 {
				return 0, actionErr(seat, a.Type(), ErrIllegalBet)
			}
			belowMin = ErrBelowMinimumBet
		} else if g.betToMatch == 0 {
			return 0, actionErr(seat, a.Type(), ErrIllegalRaise)
		}
		if g.player(seat.Other()).stack == 0 {
			return 0, actionErr(seat, a.Type(), ErrIllegalRaise)
		}
		if g.raises >= g.cfg.MaxRaisesPerStreet {
			return 0, actionErr(seat, a.Type(), ErrRaiseCapReached)
		}

		allIn := p.allInTotal()
		total := min(a.Total(), allIn)
		minTotal := g.minTotalLocked()
		if total >= minTotal {
			return total, nil
		}
		// Short all-in: allowed as long as it goes past the current bet.
		if total == allIn && total > g.betToMatch {
			return total, nil
		}
		return 0, &ActionError{Seat: seat, Action: a.Type(), Min: minTotal, Err: belowMin}
	}
	return 0, actionErr(seat, actionType(a), ErrInvalidState("unknown action"))
}
