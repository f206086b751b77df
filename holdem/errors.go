package holdem

import (
	"errors"
	"fmt"
)

var (
	ErrHandAlreadyOver   = errors.New("hand already over")
	ErrNotYourTurn       = errors.New("action out of turn")
	ErrIllegalCheck      = errors.New("cannot check facing a bet")
	ErrIllegalCall       = errors.New("nothing to call")
	ErrIllegalBet        = errors.New("cannot bet facing a bet")
	ErrIllegalRaise      = errors.New("nothing to raise")
	ErrBelowMinimumBet   = errors.New("bet below minimum")
	ErrBelowMinimumRaise = errors.New("raise below minimum")
	ErrRaiseCapReached   = errors.New("raise cap reached for this street")
	ErrStaleAction       = errors.New("action belongs to a superseded hand")

	ErrHandInProgress = errors.New("hand in progress")
	ErrNotEnoughChips = errors.New("a seat has no chips left")
)

// ActionError reports a rejected action. Min carries the smallest legal
// street total for sizing errors.
type ActionError struct {
	Seat   Seat
	Action ActionType
	Min    int64
	Err    error
}

func (e *ActionError) Error() string {
	if e.Min > 0 {
		return fmt.Sprintf("%s %s: %v (minimum total %d)", e.Seat, e.Action, e.Err, e.Min)
	}
	return fmt.Sprintf("%s %s: %v", e.Seat, e.Action, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

func actionErr(seat Seat, a ActionType, err error) error {
	return &ActionError{Seat: seat, Action: a, Err: err}
}

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }
