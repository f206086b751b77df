package npc

import (
	"errors"
	"testing"
	"time"

	"headsup-holdem/holdem"
)

type fixedBrain struct{ action holdem.Action }

func (b fixedBrain) Decide(GameView) Decision { return Decision{Action: b.action, Reason: "fixed"} }
func (fixedBrain) Name() string               { return "fixed" }

func newDriverSession(t *testing.T) *holdem.Session {
	t.Helper()
	cfg := holdem.DefaultConfig()
	cfg.Seed = 1
	g, err := holdem.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.StartHand(); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDriver_StepAppliesDecision(t *testing.T) {
	g := newDriverSession(t)
	d := NewDriver(g, holdem.SeatOpponent, fixedBrain{holdem.Raise{To: 30}})

	dec, snap, err := d.Step()
	if err != nil {
		t.Fatalf("Step err: %v", err)
	}
	if dec.Action != (holdem.Raise{To: 30}) || snap.BetToMatch != 30 || snap.ToAct != holdem.SeatPlayer {
		t.Fatalf("unexpected result %v / %+v", dec.Action, snap)
	}
	if _, _, err := d.Step(); !errors.Is(err, holdem.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
}

func TestDriver_RejectedProposalFallsBackToCall(t *testing.T) {
	g := newDriverSession(t)
	d := NewDriver(g, holdem.SeatOpponent, fixedBrain{holdem.Raise{To: 11}})

	dec, snap, err := d.Step()
	if err != nil {
		t.Fatalf("Step err: %v", err)
	}
	if dec.Action != (holdem.Call{}) || snap.Seat(holdem.SeatOpponent).Bet != 10 {
		t.Fatalf("expected fallback call, got %v", dec.Action)
	}
}

func TestDriver_ScheduleApplies(t *testing.T) {
	g := newDriverSession(t)
	d := NewDriver(g, holdem.SeatOpponent, fixedBrain{holdem.Call{}}, WithThinkDelay(time.Millisecond))

	done := make(chan error, 1)
	d.Schedule(func(_ Decision, _ holdem.Snapshot, err error) { done <- err })
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("scheduled step err: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduled step never ran")
	}
	if g.Snapshot().ToAct != holdem.SeatPlayer {
		t.Fatalf("scheduled call was not applied")
	}
}

func TestDriver_ResetSupersedesScheduledDecision(t *testing.T) {
	g := newDriverSession(t)
	d := NewDriver(g, holdem.SeatOpponent, fixedBrain{holdem.Fold{}}, WithThinkDelay(20*time.Millisecond))

	done := make(chan error, 1)
	d.Schedule(func(_ Decision, _ holdem.Snapshot, err error) { done <- err })
	g.ResetSession()
	if _, err := g.StartHand(); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, holdem.ErrStaleAction) {
			t.Fatalf("expected ErrStaleAction, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduled step never ran")
	}
	if snap := g.Snapshot(); snap.HandOver {
		t.Fatalf("stale fold must not end the new hand")
	}
}

func TestDriver_Cancel(t *testing.T) {
	g := newDriverSession(t)
	d := NewDriver(g, holdem.SeatOpponent, fixedBrain{holdem.Fold{}}, WithThinkDelay(time.Hour))

	if d.Cancel() {
		t.Fatalf("nothing scheduled yet")
	}
	d.Schedule(nil)
	if !d.Cancel() {
		t.Fatalf("expected pending schedule to be stopped")
	}
	if g.Snapshot().HandOver {
		t.Fatalf("cancelled decision was applied")
	}
}

// Two brains playing each other never break chip conservation.
func TestDriver_SelfPlay(t *testing.T) {
	cfg := holdem.DefaultConfig()
	cfg.Seed = 7
	g, err := holdem.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	reg := DefaultRegistry()
	drivers := map[holdem.Seat]*Driver{
		holdem.SeatPlayer:   NewDriver(g, holdem.SeatPlayer, NewBrain(reg.Get("hard"), 1)),
		holdem.SeatOpponent: NewDriver(g, holdem.SeatOpponent, NewBrain(reg.Get("grinder"), 2)),
	}

	for hand := 0; hand < 40; hand++ {
		if _, err := g.StartHand(); errors.Is(err, holdem.ErrNotEnoughChips) {
			g.ResetSession()
			continue
		} else if err != nil {
			t.Fatal(err)
		}
		for steps := 0; !g.Snapshot().HandOver; steps++ {
			if steps > 50 {
				t.Fatalf("hand %d did not finish", hand)
			}
			snap := g.Snapshot()
			if _, _, err := drivers[snap.ToAct].Step(); err != nil {
				t.Fatalf("hand %d: %v", hand, err)
			}
		}
		if total := g.Snapshot().TotalChips(); total != 2000 {
			t.Fatalf("hand %d: chips %d", hand, total)
		}
	}
}
