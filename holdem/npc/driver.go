package npc

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"headsup-holdem/holdem"
)

// Driver plays one session seat with a brain.
type Driver struct {
	session *holdem.Session
	seat    holdem.Seat
	brain   BrainDecider
	logger  *log.Logger

	ThinkDelay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

type DriverOption func(*Driver)

func WithLogger(l *log.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

func WithThinkDelay(delay time.Duration) DriverOption {
	return func(d *Driver) { d.ThinkDelay = delay }
}

func NewDriver(session *holdem.Session, seat holdem.Seat, brain BrainDecider, opts ...DriverOption) *Driver {
	d := &Driver{
		session:    session,
		seat:       seat,
		brain:      brain,
		logger:     log.New(io.Discard),
		ThinkDelay: time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithPrefix("npc").With("brain", brain.Name())
	return d
}

func (d *Driver) Seat() holdem.Seat { return d.seat }

func (d *Driver) Brain() BrainDecider { return d.brain }

// Step decides and applies one action for the seat right now.
func (d *Driver) Step() (Decision, holdem.Snapshot, error) {
	return d.stepAt(d.session.Epoch())
}

// Schedule runs Step after ThinkDelay on a timer goroutine. The decision is
// bound to the epoch current at scheduling time, so a new hand or a reset in
// the meantime turns it into ErrStaleAction. A pending schedule is replaced.
func (d *Driver) Schedule(done func(Decision, holdem.Snapshot, error)) {
	epoch := d.session.Epoch()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.ThinkDelay, func() {
		dec, snap, err := d.stepAt(epoch)
		if err != nil && errors.Is(err, holdem.ErrStaleAction) {
			d.logger.Debug("dropped stale decision", "epoch", epoch)
		}
		if done != nil {
			done(dec, snap, err)
		}
	})
}

// Cancel stops a pending Schedule. It reports whether one was stopped.
func (d *Driver) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

func (d *Driver) stepAt(epoch uint64) (Decision, holdem.Snapshot, error) {
	snap := d.session.ViewFor(d.seat)
	if snap.Epoch != epoch {
		return Decision{}, snap, &holdem.ActionError{Seat: d.seat, Err: holdem.ErrStaleAction}
	}
	legal, err := d.session.LegalActions(d.seat)
	if err != nil {
		return Decision{}, snap, err
	}

	dec := d.brain.Decide(NewGameView(snap, legal))
	if dec.Action == nil {
		dec.Action = fallback(legal)
	}
	out, err := d.session.ApplyActionAt(epoch, d.seat, dec.Action)
	if err == nil {
		d.logger.Info("act", "hand", snap.HandID, "street", snap.Street, "action", dec.Action, "reason", dec.Reason)
		return dec, out, nil
	}
	if errors.Is(err, holdem.ErrStaleAction) {
		return dec, snap, err
	}

	d.logger.Warn("proposal rejected, falling back", "action", dec.Action, "err", err)
	dec = Decision{Action: fallback(legal), Strength: dec.Strength, Reason: "fallback: " + err.Error()}
	out, err = d.session.ApplyActionAt(epoch, d.seat, dec.Action)
	if err != nil {
		return dec, snap, err
	}
	d.logger.Info("act", "hand", snap.HandID, "street", snap.Street, "action", dec.Action, "reason", dec.Reason)
	return dec, out, nil
}

// fallback is the safest legal passive action.
func fallback(legal holdem.Legal) holdem.Action {
	switch {
	case legal.Can(holdem.ActionCheck):
		return holdem.Check{}
	case legal.Can(holdem.ActionCall):
		return holdem.Call{}
	}
	return holdem.Fold{}
}
