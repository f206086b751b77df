package holdem

// refundUncalled returns the part of the larger hand contribution that the
// other seat never matched, and takes it back out of the pot.
func (g *Session) refundUncalled() (Seat, int64) {
	p := g.player(SeatPlayer)
	o := g.player(SeatOpponent)

	excess := p.committed - o.committed
	over := p
	if excess < 0 {
		excess = -excess
		over = o
	}
	if excess == 0 {
		return SeatNone, 0
	}
	over.refund(excess)
	g.pot -= excess
	return over.Seat, excess
}
