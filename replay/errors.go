package replay

import (
	"fmt"
)

type ReplayError struct {
	StepIndex int32          `json:"step_index"`
	Reason    string         `json:"reason"`
	Message   string         `json:"message"`
	Expected  *ExpectedState `json:"expected,omitempty"`
}

type ExpectedState struct {
	Seat         string   `json:"seat"`
	LegalActions []string `json:"legal_actions,omitempty"`
	MinRaiseTo   int64    `json:"min_raise_to,omitempty"`
	CallAmount   int64    `json:"call_amount,omitempty"`
	Street       string   `json:"street,omitempty"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}

func setupErr(reason, format string, args ...any) *ReplayError {
	return &ReplayError{StepIndex: -1, Reason: reason, Message: fmt.Sprintf(format, args...)}
}
