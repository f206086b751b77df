package replay

import (
	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

// structpb only accepts []any for lists.

func cardsPayload(cs []card.Card) []any {
	return stringsPayload(card.CardList(cs).Codes())
}

func stringsPayload(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func actionNames(actions []holdem.ActionType) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.String())
	}
	return out
}

func seatNames(seats []holdem.Seat) []string {
	out := make([]string, 0, len(seats))
	for _, s := range seats {
		out = append(out, s.String())
	}
	return out
}

func seatsPayload(ns *normalizedSpec) []any {
	out := make([]any, 0, len(ns.seats))
	for _, s := range ns.seats {
		out = append(out, map[string]any{
			"seat":   s.seat.String(),
			"name":   s.name,
			"stack":  s.stack,
			"isHero": s.seat == ns.hero,
		})
	}
	return out
}
