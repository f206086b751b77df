package holdem

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"headsup-holdem/card"
)

// Session owns both stacks across hands and the state of the hand in play.
// Every mutation goes through StartHand, ApplyAction, ResetSession or SetStack.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger

	mu sync.Mutex

	players [2]Player

	// session
	handNo      uint32
	handID      string
	epoch       uint64
	button      Seat
	forceButton bool

	// hand state
	street      Street
	pot         int64
	stockCards  card.CardList
	board       card.CardList
	burned      card.CardList
	betToMatch  int64
	lastBetSize int64
	raises      int
	toAct       Seat
	over        bool

	lastSettlement *SettlementResult
}

type Option func(*Session)

// WithLogger routes session diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Session) {
		if l != nil {
			g.logger = l.WithPrefix("session")
		}
	}
}

func NewSession(cfg Config, opts ...Option) (*Session, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Session{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
		logger:      log.New(io.Discard),
		button:      cfg.InitialButton,
		forceButton: true,
		over:        true,
	}
	for _, s := range Seats {
		g.players[s.index()] = Player{Seat: s, stack: cfg.StartingStack}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Session) Config() Config { return g.cfg }

func (g *Session) player(s Seat) *Player { return &g.players[s.index()] }

// Epoch changes whenever a hand is dealt or the session is reset.
func (g *Session) Epoch() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.epoch
}

// StartHand rotates (or forces) the button, shuffles, deals hole cards and
// posts blinds. It returns the seat to act, or SeatNone when the blinds
// already put a seat all-in and the hand ran out to showdown.
func (g *Session) StartHand() (Seat, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.over {
		return SeatNone, ErrHandInProgress
	}
	for i := range g.players {
		if g.players[i].stack <= 0 {
			return SeatNone, ErrNotEnoughChips
		}
	}

	g.epoch++
	g.handNo++
	g.handID = uuid.NewString()

	if g.forceButton {
		g.button = g.cfg.InitialButton
		g.forceButton = false
	} else {
		g.button = g.button.Other()
	}

	for i := range g.players {
		g.players[i].ResetForNewHand()
	}
	g.street = StreetPreflop
	g.pot = 0
	g.board = make(card.CardList, 0, 5)
	g.burned = make(card.CardList, 0, 3)
	g.raises = 0
	g.over = false
	g.lastSettlement = nil

	g.shuffle()
	if err := g.dealHoleCards(); err != nil {
		return SeatNone, err
	}
	g.postBlinds()
	g.toAct = g.button

	g.logger.Debug("hand started", "hand", g.handID, "no", g.handNo, "button", g.button)

	if g.runOutReadyLocked() {
		if err := g.runOutLocked(); err != nil {
			return SeatNone, err
		}
	}
	return g.toAct, nil
}

// ResetSession restores both starting stacks, abandons any hand in play and
// forces the initial button for the next hand.
func (g *Session) ResetSession() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.epoch++
	for i := range g.players {
		g.players[i].ResetForNewHand()
		g.players[i].stack = g.cfg.StartingStack
	}
	g.street = 0
	g.pot = 0
	g.stockCards = nil
	g.board = nil
	g.burned = nil
	g.betToMatch = 0
	g.lastBetSize = 0
	g.raises = 0
	g.toAct = SeatNone
	g.over = true
	g.forceButton = true
	g.lastSettlement = nil

	g.logger.Debug("session reset", "epoch", g.epoch)
}

// SetStack overrides a seat's stack between hands.
func (g *Session) SetStack(seat Seat, stack int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !seat.Valid() {
		return fmt.Errorf("invalid seat %d", seat)
	}
	if stack < 0 {
		return fmt.Errorf("stack must be >= 0")
	}
	if !g.over {
		return ErrHandInProgress
	}
	g.player(seat).stack = stack
	return nil
}

// ApplyAction validates and applies one action for seat. On error nothing changes.
func (g *Session) ApplyAction(seat Seat, a Action) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.applyLocked(seat, a); err != nil {
		return Snapshot{}, err
	}
	return g.snapshotLocked(seat), nil
}

// ApplyActionAt is ApplyAction for a decision taken while epoch was current.
// It fails with ErrStaleAction once a new hand or a reset has superseded it.
func (g *Session) ApplyActionAt(epoch uint64, seat Seat, a Action) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if epoch != g.epoch {
		return Snapshot{}, actionErr(seat, actionType(a), ErrStaleAction)
	}
	if err := g.applyLocked(seat, a); err != nil {
		return Snapshot{}, err
	}
	return g.snapshotLocked(seat), nil
}

func (g *Session) applyLocked(seat Seat, a Action) error {
	if a == nil {
		return actionErr(seat, ActionNone, ErrInvalidState("nil action"))
	}
	if g.over {
		return actionErr(seat, a.Type(), ErrHandAlreadyOver)
	}
	if seat != g.toAct {
		return actionErr(seat, a.Type(), ErrNotYourTurn)
	}

	total, err := g.validateLocked(seat, a)
	if err != nil {
		return err
	}

	p := g.player(seat)
	other := g.player(seat.Other())
	p.lastAction = a.Type()

	g.logger.Debug("action", "hand", g.handID, "street", g.street, "seat", seat, "action", a.Type(), "total", total)

	switch a.(type) {
	case Fold:
		return g.settleFoldLocked(seat.Other())

	case Check:
		p.acted = true
		return g.afterPassiveLocked(seat)

	case Call:
		g.pot += p.placeBet(g.amountToCallLocked(seat))
		p.acted = true
		return g.afterPassiveLocked(seat)

	case Bet, Raise:
		prev := g.betToMatch
		g.pot += p.placeBet(total - p.bet)
		g.betToMatch = p.bet
		g.lastBetSize = max(g.cfg.BigBlind, g.betToMatch-prev)
		g.raises++
		p.acted = true
		other.acted = false
		g.toAct = other.Seat
		return nil
	}
	return ErrInvalidState(fmt.Sprintf("unhandled action %T", a))
}

// afterPassiveLocked runs after a check or call: run out, close the street, or pass the turn.
func (g *Session) afterPassiveLocked(actor Seat) error {
	if g.runOutReadyLocked() {
		return g.runOutLocked()
	}
	if g.player(SeatPlayer).acted && g.player(SeatOpponent).acted &&
		g.amountToCallLocked(SeatPlayer)+g.amountToCallLocked(SeatOpponent) == 0 {
		return g.nextStreetLocked()
	}
	g.toAct = actor.Other()
	return nil
}

// runOutReadyLocked: a seat is out of chips and nobody with chips still owes a call.
func (g *Session) runOutReadyLocked() bool {
	someoneAllIn := false
	for _, s := range Seats {
		p := g.player(s)
		if p.stack == 0 {
			someoneAllIn = true
			continue
		}
		if g.amountToCallLocked(s) > 0 {
			return false
		}
	}
	return someoneAllIn
}

func (g *Session) nextStreetLocked() error {
	if g.street == StreetRiver {
		return g.settleShowdownLocked()
	}
	for i := range g.players {
		g.players[i].resetForStreet()
	}
	g.betToMatch = 0
	g.lastBetSize = g.cfg.BigBlind
	g.raises = 0
	g.street++
	if err := g.dealCommunityCardsLocked(); err != nil {
		return err
	}
	// Heads-up: the non-button seat opens every postflop street.
	g.toAct = g.button.Other()
	return nil
}

// runOutLocked deals the remaining board without betting and settles.
func (g *Session) runOutLocked() error {
	for g.street < StreetRiver {
		g.street++
		if err := g.dealCommunityCardsLocked(); err != nil {
			return err
		}
	}
	g.logger.Debug("board run out", "hand", g.handID, "board", g.board.String())
	return g.settleShowdownLocked()
}

func (g *Session) shuffle() {
	if g.cfg.DeckOverride != nil {
		g.stockCards.Init(g.cfg.DeckOverride)
		return
	}
	g.stockCards = card.NewDeck()
	g.stockCards.Shuffle(g.rng)
}

// dealHoleCards deals one card at a time, button first.
func (g *Session) dealHoleCards() error {
	for i := 0; i < 2; i++ {
		for _, s := range [2]Seat{g.button, g.button.Other()} {
			c, ok := g.stockCards.Deal()
			if !ok {
				return ErrInvalidState("deck underflow")
			}
			g.player(s).AddHandCard(c)
		}
	}
	return nil
}

// dealCommunityCardsLocked burns one card and fills the board up to the current street.
func (g *Session) dealCommunityCardsLocked() error {
	burn, ok := g.stockCards.Deal()
	if !ok {
		return ErrInvalidState("deck underflow")
	}
	g.burned = append(g.burned, burn)
	need := g.street.boardSize() - len(g.board)
	if need <= 0 {
		return nil
	}
	cards, ok := g.stockCards.PopCards(need)
	if !ok {
		return ErrInvalidState("deck underflow")
	}
	g.board = append(g.board, cards...)
	return nil
}

// postBlinds: heads-up the button posts the small blind.
func (g *Session) postBlinds() {
	sb := g.player(g.button)
	bb := g.player(g.button.Other())
	g.pot += sb.placeBet(g.cfg.SmallBlind)
	g.pot += bb.placeBet(g.cfg.BigBlind)
	sb.lastAction = ActionBlind
	bb.lastAction = ActionBlind

	g.betToMatch = max(sb.bet, bb.bet)
	g.lastBetSize = g.cfg.BigBlind
	g.raises = 0
}

func (g *Session) amountToCallLocked(s Seat) int64 {
	return max(0, g.betToMatch-g.player(s).bet)
}

func actionType(a Action) ActionType {
	if a == nil {
		return ActionNone
	}
	return a.Type()
}
