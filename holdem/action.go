package holdem

import "fmt"

// Action is one move a seat can submit. The set is closed: Fold, Check,
// Call, Bet and Raise are the only implementations.
type Action interface {
	Type() ActionType
	// Total is the street contribution the seat asks for; zero unless Bet/Raise.
	Total() int64
	isAction()
}

type Fold struct{}

type Check struct{}

type Call struct{}

// Bet opens the betting on a street to an absolute street total.
type Bet struct{ To int64 }

// Raise lifts the current bet to an absolute street total.
type Raise struct{ To int64 }

func (Fold) Type() ActionType  { return ActionFold }
func (Check) Type() ActionType { return ActionCheck }
func (Call) Type() ActionType  { return ActionCall }
func (Bet) Type() ActionType   { return ActionBet }
func (Raise) Type() ActionType { return ActionRaise }

func (Fold) Total() int64    { return 0 }
func (Check) Total() int64   { return 0 }
func (Call) Total() int64    { return 0 }
func (a Bet) Total() int64   { return a.To }
func (a Raise) Total() int64 { return a.To }

func (Fold) isAction()  {}
func (Check) isAction() {}
func (Call) isAction()  {}
func (Bet) isAction()   {}
func (Raise) isAction() {}

func (a Bet) String() string   { return fmt.Sprintf("bet %d", a.To) }
func (a Raise) String() string { return fmt.Sprintf("raise to %d", a.To) }
func (Fold) String() string    { return "fold" }
func (Check) String() string   { return "check" }
func (Call) String() string    { return "call" }

// NewAction builds an Action from its type tag and a street total.
// The total is ignored for fold, check and call.
func NewAction(t ActionType, total int64) (Action, error) {
	switch t {
	case ActionFold:
		return Fold{}, nil
	case ActionCheck:
		return Check{}, nil
	case ActionCall:
		return Call{}, nil
	case ActionBet:
		return Bet{To: total}, nil
	case ActionRaise:
		return Raise{To: total}, nil
	}
	return nil, fmt.Errorf("unsupported action type %s", t)
}
