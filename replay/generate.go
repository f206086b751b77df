package replay

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

const defaultTableID = "replay_local"

// GenerateReplayTape plays spec through a fresh Session and records every
// step. The first illegal or out-of-order action stops generation with a
// *ReplayError.
func GenerateReplayTape(spec HandSpec, opts ...holdem.Option) (*ReplayTape, error) {
	ns, err := normalizeSpec(spec)
	if err != nil {
		return nil, err
	}

	game, err := holdem.NewSession(ns.cfg, opts...)
	if err != nil {
		return nil, setupErr("engine_init_failed", "%v", err)
	}
	for _, s := range holdem.Seats {
		if err := game.SetStack(s, ns.seat(s).stack); err != nil {
			return nil, setupErr("seat_init_failed", "%v", err)
		}
		ns.handStartStack[s-holdem.SeatPlayer] = ns.seat(s).stack
	}

	builder := newTapeBuilder(defaultTableID, ns.hero)
	builder.push("snapshot", map[string]any{
		"sb":     ns.cfg.SmallBlind,
		"bb":     ns.cfg.BigBlind,
		"button": ns.cfg.InitialButton.String(),
		"seats":  seatsPayload(&ns),
	})

	if _, err := game.StartHand(); err != nil {
		return nil, setupErr("start_hand_failed", "%v", err)
	}
	afterStart := game.ViewFor(ns.hero)
	builder.push("handStart", map[string]any{
		"button":     afterStart.Button.String(),
		"smallBlind": afterStart.Button.String(),
		"bigBlind":   afterStart.Button.Other().String(),
		"sb":         afterStart.SmallBlind,
		"bb":         afterStart.BigBlind,
		"pot":        afterStart.Pot,
	})
	if hero := afterStart.Seat(ns.hero).HandCards; len(hero) == 2 {
		builder.push("holeCards", map[string]any{
			"seat":  ns.hero.String(),
			"cards": cardsPayload(hero),
		})
	}
	if afterStart.HandOver {
		builder.addStreetTransitions(holdem.Snapshot{}, afterStart)
		builder.addHandEnd(afterStart, ns.handStartStack)
	} else {
		builder.addActionPrompt(game, afterStart.ToAct)
	}

	for stepIdx, action := range ns.actions {
		step := int32(stepIdx)
		before := game.Snapshot()
		if before.HandOver {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "no_action_expected",
				Message:   "hand is already complete; no further actions are allowed",
			}
		}
		if before.Street != action.street {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "street_mismatch",
				Message:   fmt.Sprintf("expected street %s, got %s", before.Street, action.street),
				Expected:  &ExpectedState{Seat: before.ToAct.String(), Street: before.Street.String()},
			}
		}
		if before.ToAct != action.seat {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "out_of_turn",
				Message:   fmt.Sprintf("expected action seat %s, got %s", before.ToAct, action.seat),
				Expected:  expectedStateFor(game, before),
			}
		}
		legal, err := game.LegalActions(action.seat)
		if err != nil || !legal.Can(action.action.Type()) {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "illegal_action",
				Message:   fmt.Sprintf("action %s is not legal for %s", action.action.Type(), action.seat),
				Expected:  expectedStateFor(game, before),
			}
		}

		after, err := game.ApplyAction(action.seat, action.action)
		if err != nil {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "action_apply_failed",
				Message:   err.Error(),
				Expected:  expectedStateFor(game, before),
			}
		}

		builder.addActionResult(before, after, action.seat, action.action)
		builder.addStreetTransitions(before, game.ViewFor(ns.hero))
		if after.HandOver {
			builder.addHandEnd(game.Snapshot(), ns.handStartStack)
			// Any further action is rejected at the top of the loop.
			continue
		}
		builder.addActionPrompt(game, after.ToAct)
	}

	return &ReplayTape{
		TapeVersion: 1,
		TableID:     builder.tableID,
		Hero:        ns.hero.String(),
		Events:      builder.events,
	}, nil
}

func expectedStateFor(g *holdem.Session, snap holdem.Snapshot) *ExpectedState {
	out := &ExpectedState{Seat: snap.ToAct.String(), Street: snap.Street.String()}
	legal, err := g.LegalActions(snap.ToAct)
	if err != nil {
		return out
	}
	out.LegalActions = actionNames(legal.Actions)
	out.MinRaiseTo = legal.MinTotal
	out.CallAmount = legal.ToCall
	return out
}

type tapeBuilder struct {
	tableID string
	hero    holdem.Seat
	seq     uint64
	events  []ReplayEvent
}

func newTapeBuilder(tableID string, hero holdem.Seat) *tapeBuilder {
	return &tapeBuilder{
		tableID: tableID,
		hero:    hero,
		events:  make([]ReplayEvent, 0, 64),
	}
}

func (b *tapeBuilder) addActionPrompt(g *holdem.Session, seat holdem.Seat) {
	legal, err := g.LegalActions(seat)
	if err != nil {
		return
	}
	b.push("actionPrompt", map[string]any{
		"seat":         seat.String(),
		"legalActions": stringsPayload(actionNames(legal.Actions)),
		"callAmount":   legal.ToCall,
		"minRaiseTo":   legal.MinTotal,
		"maxRaiseTo":   legal.MaxTotal,
	})
}

func (b *tapeBuilder) addActionResult(before, after holdem.Snapshot, seat holdem.Seat, a holdem.Action) {
	// Street bets reset when the action closes the street, so derive the
	// total from the chips that left the stack.
	amount := before.Seat(seat).Bet + before.Seat(seat).Stack - stackBeforeRefund(after, seat)
	b.push("actionResult", map[string]any{
		"seat":        seat.String(),
		"action":      a.Type().String(),
		"amountTo":    amount,
		"newStack":    after.Seat(seat).Stack,
		"newPotTotal": after.Pot,
	})
}

// stackBeforeRefund is the seat's stack with any payout of a finished hand undone.
func stackBeforeRefund(snap holdem.Snapshot, seat holdem.Seat) int64 {
	st := snap.Seat(seat).Stack
	if r := snap.Result; r != nil {
		st -= r.Seat(seat).WinAmount
		if r.ExcessSeat == seat {
			st -= r.ExcessAmount
		}
	}
	return st
}

func (b *tapeBuilder) addStreetTransitions(before, after holdem.Snapshot) {
	beforeCount := len(before.CommunityCards)
	board := after.CommunityCards
	streets := []struct {
		street   holdem.Street
		from, to int
	}{
		{holdem.StreetFlop, 0, 3},
		{holdem.StreetTurn, 3, 4},
		{holdem.StreetRiver, 4, 5},
	}
	for _, st := range streets {
		if beforeCount >= st.to || len(board) < st.to {
			continue
		}
		b.push("board", map[string]any{
			"street": st.street.String(),
			"cards":  cardsPayload(board[st.from:st.to]),
		})
		msg := map[string]any{
			"street":         st.street.String(),
			"communityCards": cardsPayload(board[:st.to]),
			"pot":            after.Pot,
		}
		if hero := after.Seat(b.hero).HandCards; len(hero) == 2 {
			all := append(card.CardList{}, hero...)
			all = append(all, board[:st.to]...)
			if best := holdem.EvalBest(all); best != nil {
				msg["myHand"] = best.Score.String()
			}
		}
		b.push("streetChange", msg)
	}
}

func (b *tapeBuilder) addHandEnd(final holdem.Snapshot, handStartStack [2]int64) {
	r := final.Result
	if r == nil {
		return
	}
	if r.Reason == holdem.SettleShowdown {
		seats := make([]any, 0, 2)
		for _, s := range holdem.Seats {
			sr := r.Seat(s)
			seats = append(seats, map[string]any{
				"seat":        s.String(),
				"holeCards":   cardsPayload(sr.HandCards),
				"bestFive":    cardsPayload(sr.BestFiveCards),
				"description": sr.Description,
				"isWinner":    sr.IsWinner,
				"winAmount":   sr.WinAmount,
			})
		}
		b.push("showdown", map[string]any{"seats": seats})
	} else {
		b.push("winByFold", map[string]any{
			"winner": r.Winners[0].String(),
			"pot":    r.Pot,
		})
	}

	deltas := map[string]any{}
	for _, s := range holdem.Seats {
		deltas[s.String()] = final.Seat(s).Stack - handStartStack[s-holdem.SeatPlayer]
	}
	end := map[string]any{
		"stackDeltas": deltas,
		"winners":     stringsPayload(seatNames(r.Winners)),
	}
	if r.ExcessAmount > 0 {
		end["excessRefund"] = map[string]any{"seat": r.ExcessSeat.String(), "amount": r.ExcessAmount}
	}
	b.push("handEnd", end)
}

func (b *tapeBuilder) push(kind string, payload map[string]any) {
	b.seq++
	payload["tableId"] = b.tableID
	payload["serverSeq"] = b.seq
	payload["type"] = kind
	env, err := structpb.NewStruct(payload)
	if err != nil {
		// Only built from the helpers above, so every value is representable.
		panic(fmt.Sprintf("replay payload %s: %v", kind, err))
	}
	bin, err := proto.MarshalOptions{Deterministic: true}.Marshal(env)
	if err != nil {
		panic(fmt.Sprintf("replay envelope %s: %v", kind, err))
	}
	b.events = append(b.events, ReplayEvent{
		Type:        kind,
		Seq:         b.seq,
		Value:       env,
		EnvelopeB64: base64.StdEncoding.EncodeToString(bin),
	})
}
