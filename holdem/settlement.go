package holdem

import (
	"headsup-holdem/card"
)

type SettleReason byte

const (
	SettleFold     SettleReason = 1
	SettleShowdown SettleReason = 2
)

func (r SettleReason) String() string {
	switch r {
	case SettleFold:
		return "fold"
	case SettleShowdown:
		return "showdown"
	}
	return "none"
}

type ShowdownSeatResult struct {
	Seat          Seat
	HandCards     []card.Card // 2 张手牌
	BestFiveCards []card.Card // 5 张最佳牌, empty when the hand ended on a fold
	AllCards      []card.Card // 7 张（手牌+公共牌）
	Score         HandScore
	Description   string
	IsWinner      bool
	WinAmount     int64
}

type SettlementResult struct {
	HandID  string
	Reason  SettleReason
	Pot     int64 // amount distributed, after the uncalled refund
	Winners []Seat
	Seats   [2]ShowdownSeatResult

	// OddChipSeat received the indivisible chip of a split pot.
	OddChipSeat Seat
	// ExcessSeat got ExcessAmount back because the other seat never matched it.
	ExcessSeat   Seat
	ExcessAmount int64
}

func (r *SettlementResult) Seat(s Seat) ShowdownSeatResult { return r.Seats[s.index()] }

func (r *SettlementResult) Split() bool { return len(r.Winners) == 2 }

func (r *SettlementResult) Won(s Seat) bool {
	for _, w := range r.Winners {
		if w == s {
			return true
		}
	}
	return false
}

func (g *Session) settleFoldLocked(winner Seat) error {
	excessSeat, excess := g.refundUncalled()

	out := &SettlementResult{
		HandID:       g.handID,
		Reason:       SettleFold,
		Pot:          g.pot,
		Winners:      []Seat{winner},
		ExcessSeat:   excessSeat,
		ExcessAmount: excess,
	}
	for _, s := range Seats {
		out.Seats[s.index()] = ShowdownSeatResult{
			Seat:      s,
			HandCards: g.player(s).handCards.Clone(),
		}
	}
	w := &out.Seats[winner.index()]
	w.IsWinner = true
	w.WinAmount = g.pot
	g.player(winner).addStack(g.pot)

	g.finishLocked(out)
	return nil
}

// settleShowdownLocked needs the board filled to 5 cards.
func (g *Session) settleShowdownLocked() error {
	if len(g.board) != 5 {
		return ErrInvalidState("need 5 community cards to settle")
	}
	excessSeat, excess := g.refundUncalled()

	out := &SettlementResult{
		HandID:       g.handID,
		Reason:       SettleShowdown,
		Pot:          g.pot,
		ExcessSeat:   excessSeat,
		ExcessAmount: excess,
	}
	for _, s := range Seats {
		p := g.player(s)
		all := make(card.CardList, 0, 7)
		all = append(all, p.handCards...)
		all = append(all, g.board...)
		eval := EvalBestOf7(all)
		if eval == nil {
			return ErrInvalidState("need 7 cards to evaluate")
		}
		out.Seats[s.index()] = ShowdownSeatResult{
			Seat:          s,
			HandCards:     p.handCards.Clone(),
			BestFiveCards: eval.BestFive(all),
			AllCards:      all,
			Score:         eval.Score,
			Description:   eval.Score.String(),
		}
	}

	ps := out.Seats[SeatPlayer.index()].Score
	os := out.Seats[SeatOpponent.index()].Score
	switch ps.Compare(os) {
	case 1:
		out.Winners = []Seat{SeatPlayer}
		out.Seats[SeatPlayer.index()].WinAmount = g.pot
	case -1:
		out.Winners = []Seat{SeatOpponent}
		out.Seats[SeatOpponent.index()].WinAmount = g.pot
	default:
		out.Winners = []Seat{SeatPlayer, SeatOpponent}
		half := g.pot / 2
		out.Seats[SeatPlayer.index()].WinAmount = half
		out.Seats[SeatOpponent.index()].WinAmount = half
		if rem := g.pot - 2*half; rem > 0 {
			out.OddChipSeat = g.cfg.OddChip.seat(g.button)
			out.Seats[out.OddChipSeat.index()].WinAmount += rem
		}
	}
	for _, w := range out.Winners {
		r := &out.Seats[w.index()]
		r.IsWinner = true
		g.player(w).addStack(r.WinAmount)
	}

	g.finishLocked(out)
	return nil
}

func (g *Session) finishLocked(out *SettlementResult) {
	g.pot = 0
	g.street = StreetShowdown
	g.over = true
	g.toAct = SeatNone
	g.lastSettlement = out

	g.logger.Debug("hand settled",
		"hand", g.handID,
		"reason", out.Reason,
		"winners", out.Winners,
		"pot", out.Pot,
		"player", g.player(SeatPlayer).stack,
		"opponent", g.player(SeatOpponent).stack,
	)
}
