package npc

// PersonalityProfile defines the tunable thresholds shared by every brain.
type PersonalityProfile struct {
	AggressiveThreshold float64 `json:"aggressiveThreshold"` // bet/raise above this strength
	FoldThreshold       float64 `json:"foldThreshold"`       // fold below this when facing a big bet
	BigBetBlinds        int64   `json:"bigBetBlinds"`        // "big bet" = more than this many big blinds to call
	RaiseMultiplier     float64 `json:"raiseMultiplier"`     // scales raise totals
	OpenMultiplier      float64 `json:"openMultiplier"`      // scales opening bet totals
	Randomness          float64 `json:"randomness"`          // 0.0 to 1.0: strength noise
}

const (
	BrainKindRule   = "rule"
	BrainKindEquity = "equity"
)

// NPCPersona defines a named opponent.
type NPCPersona struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Tagline    string             `json:"tagline"`
	Difficulty int                `json:"difficulty"` // 1=easy, 2=normal, 3=hard
	Kind       string             `json:"kind"`       // "rule" (default) or "equity"
	Samples    int                `json:"samples"`    // Monte-Carlo runs for "equity"
	Brain      PersonalityProfile `json:"brain"`
}

func (p PersonalityProfile) bigBet() int64 {
	if p.BigBetBlinds <= 0 {
		return 6
	}
	return p.BigBetBlinds
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
