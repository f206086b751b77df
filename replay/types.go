package replay

import "google.golang.org/protobuf/types/known/structpb"

// HandSpec describes one heads-up hand to replay: table, stacks, known
// cards and the action sequence.
type HandSpec struct {
	Table   TableSpec    `json:"table"`
	Button  string       `json:"button,omitempty"` // "player" or "opponent" (default)
	Seats   []SeatSpec   `json:"seats,omitempty"`
	Board   *BoardSpec   `json:"board,omitempty"`
	Deck    []string     `json:"deck,omitempty"`
	Actions []ActionSpec `json:"actions"`
	RNG     *RNGSpec     `json:"rng,omitempty"`
}

type TableSpec struct {
	SB            int64 `json:"sb"`
	BB            int64 `json:"bb"`
	StartingStack int64 `json:"starting_stack,omitempty"`
	MaxRaises     int   `json:"max_raises,omitempty"`
}

type SeatSpec struct {
	Seat   string   `json:"seat"`
	Name   string   `json:"name,omitempty"`
	Stack  int64    `json:"stack"`
	IsHero bool     `json:"is_hero,omitempty"`
	Hole   []string `json:"hole,omitempty"`
}

type BoardSpec struct {
	Flop  []string `json:"flop,omitempty"`
	Turn  *string  `json:"turn,omitempty"`
	River *string  `json:"river,omitempty"`
}

type ActionSpec struct {
	Street   string `json:"street"`
	Seat     string `json:"seat"`
	Type     string `json:"type"`
	AmountTo int64  `json:"amount_to,omitempty"`
}

type RNGSpec struct {
	Seed int64 `json:"seed"`
}

type ReplayTape struct {
	TapeVersion int           `json:"tape_version"`
	TableID     string        `json:"table_id"`
	Hero        string        `json:"hero"`
	Events      []ReplayEvent `json:"events"`
}

type ReplayEvent struct {
	Type        string           `json:"type"`
	Seq         uint64           `json:"seq"`
	Value       *structpb.Struct `json:"value,omitempty"`
	EnvelopeB64 string           `json:"envelope_b64,omitempty"`
}
