package npc

import (
	"fmt"

	"headsup-holdem/holdem"
)

// MatchGoal is the win condition of a run against one persona.
type MatchGoal struct {
	Type   string `json:"type"`   // "win_bb", "survive", "win_pots", "bust"
	Target int    `json:"target"` // e.g. 50 BB, 30 hands, 10 pots
}

func (g MatchGoal) String() string {
	switch g.Type {
	case "win_bb":
		return fmt.Sprintf("win %d big blinds", g.Target)
	case "survive":
		return fmt.Sprintf("survive %d hands without losing chips", g.Target)
	case "win_pots":
		return fmt.Sprintf("win %d pots", g.Target)
	case "bust":
		return "bust the opponent"
	}
	return "play"
}

// MatchProgress tracks a run for the human seat.
type MatchProgress struct {
	Goal         MatchGoal
	HandsPlayed  int
	PotWins      int
	StartStack   int64
	CurrentStack int64
	OppStack     int64
}

func NewMatchProgress(goal MatchGoal, startStack int64) *MatchProgress {
	return &MatchProgress{Goal: goal, StartStack: startStack, CurrentStack: startStack, OppStack: startStack}
}

// Record folds a settled hand into the progress.
func (s *MatchProgress) Record(snap holdem.Snapshot) {
	if !snap.HandOver || snap.Result == nil {
		return
	}
	s.HandsPlayed++
	if snap.Result.Won(holdem.SeatPlayer) && !snap.Result.Split() {
		s.PotWins++
	}
	s.CurrentStack = snap.Seat(holdem.SeatPlayer).Stack
	s.OppStack = snap.Seat(holdem.SeatOpponent).Stack
}

// Complete checks if the goal has been met.
func (s *MatchProgress) Complete(bigBlind int64) bool {
	switch s.Goal.Type {
	case "win_bb":
		return s.CurrentStack-s.StartStack >= int64(s.Goal.Target)*bigBlind
	case "survive":
		return s.HandsPlayed >= s.Goal.Target && s.CurrentStack >= s.StartStack
	case "win_pots":
		return s.PotWins >= s.Goal.Target
	case "bust":
		return s.OppStack == 0
	default:
		return false
	}
}

// Failed reports that the human seat is out of chips.
func (s *MatchProgress) Failed() bool { return s.HandsPlayed > 0 && s.CurrentStack == 0 }
