// Package engine holds the rules of a Tài Xỉu table. An Engine owns one
// session and is not safe for concurrent use; hosts serialise calls.
package engine

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/dice"
	"github.com/KirkDiggler/taixiu/internal/models"
)

// Engine applies player intents to a session
type Engine struct {
	session  *models.Session
	roller   dice.Roller
	clock    clock.Clock
	messages MessagePicker
}

// New creates an engine for cfg.Session, or for a fresh session when none is
// given
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	e := &Engine{
		session:  cfg.Session,
		roller:   cfg.Roller,
		clock:    cfg.Clock,
		messages: cfg.Messages,
	}

	if e.session == nil {
		now := cfg.Clock.Now()
		e.session = &models.Session{
			ID:           cfg.SessionID,
			Balance:      StartingBalance,
			BetAmount:    DefaultBet,
			Dice:         models.Dice{1, 1, 1},
			History:      []models.Round{},
			Notification: cfg.Messages.Pick(models.MessageGreeting),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	return e, nil
}

// Snapshot returns a copy of the session for rendering
func (e *Engine) Snapshot() *models.Session {
	return e.session.Clone()
}

// LoanEligible reports whether RequestLoan would be accepted
func (e *Engine) LoanEligible() bool {
	return e.session.LoanEligible()
}

// SelectSide picks the side the next roll is bet on
func (e *Engine) SelectSide(side models.Side) error {
	if e.session.IsRolling {
		return ErrRollInProgress
	}
	if !side.Valid() {
		return ErrInvalidSide
	}

	e.session.SelectedSide = side
	e.touch()
	return nil
}

// SetBetAmount sets the stake. Negative amounts are clamped to zero; the
// balance is only checked when the roll starts.
func (e *Engine) SetBetAmount(amount int) error {
	if e.session.IsRolling {
		return ErrRollInProgress
	}

	e.session.BetAmount = max(amount, 0)
	e.touch()
	return nil
}

// SetBetAmountText sets the stake from free-form input. Anything that does
// not start with a number counts as zero.
func (e *Engine) SetBetAmountText(text string) error {
	return e.SetBetAmount(ParseAmount(text))
}

// QuickSetBet applies a preset stake. Amounts above the balance are refused
// unless they equal the balance exactly.
func (e *Engine) QuickSetBet(amount int) error {
	if e.session.IsRolling {
		return ErrRollInProgress
	}

	// The equality escape is intentional: it is what lets ALL-IN through.
	if amount > e.session.Balance && amount != e.session.Balance {
		return e.reject(ErrQuickBetRejected)
	}

	e.session.BetAmount = max(amount, 0)
	e.touch()
	return nil
}

// AllIn stakes the whole balance
func (e *Engine) AllIn() error {
	return e.QuickSetBet(e.session.Balance)
}

// StartRoll takes the stake and enters the rolling state. The host must call
// ResolveRoll exactly once afterwards.
func (e *Engine) StartRoll() (*RollStarted, error) {
	s := e.session
	if s.IsRolling {
		return nil, ErrRollInProgress
	}
	if s.Balance < s.BetAmount {
		return nil, e.reject(ErrInsufficientFunds)
	}
	if s.SelectedSide.IsNone() {
		return nil, e.reject(ErrNoSideSelected)
	}

	// House rules: the stake is gone whatever the dice say.
	s.Balance -= s.BetAmount
	s.IsRolling = true
	s.Notification = e.messages.Pick(models.MessageRolling)
	e.touch()

	return &RollStarted{
		Side:    s.SelectedSide,
		Stake:   s.BetAmount,
		Balance: s.Balance,
		Message: s.Notification,
	}, nil
}

// DrawDice throws three fresh dice. It does not touch the session.
func (e *Engine) DrawDice() models.Dice {
	return dice.RollThree(e.roller)
}

// Shake replaces the displayed dice with random faces while rolling. It
// never affects balance or history.
func (e *Engine) Shake() (models.Dice, error) {
	if !e.session.IsRolling {
		return models.Dice{}, ErrNotRolling
	}

	e.session.Dice = e.DrawDice()
	return e.session.Dice, nil
}

// ResolveRoll settles the running roll with the final dice
func (e *Engine) ResolveRoll(final models.Dice) (*RoundResult, error) {
	s := e.session
	if !s.IsRolling {
		return nil, ErrNotRolling
	}
	if !final.Valid() {
		return nil, ErrInvalidDie
	}

	round := models.NewRound(e.nextRoundID(), final)
	side := s.SelectedSide
	stake := s.BetAmount

	var category models.MessageCategory
	won := false
	switch {
	case round.Outcome == models.OutcomeTriple:
		category = models.MessageTriple
	case round.Outcome.Matches(side):
		won = true
		category = models.MessageWin
	default:
		category = models.MessageLose
	}

	payout := 0
	if won {
		payout = stake * PayoutMultiplier
		s.Balance += payout
	}

	history := make([]models.Round, 0, HistoryCap)
	history = append(history, round)
	history = append(history, s.History...)
	if len(history) > HistoryCap {
		history = history[:HistoryCap]
	}
	s.History = history

	s.LastRoundID = round.ID
	s.Dice = final
	s.Notification = e.messages.Pick(category)
	s.SelectedSide = models.SideNone
	s.IsRolling = false
	e.touch()

	return &RoundResult{
		Round:   round,
		Side:    side,
		Stake:   stake,
		Won:     won,
		Payout:  payout,
		Balance: s.Balance,
		Message: s.Notification,
	}, nil
}

// RequestLoan credits the fixed grant to a broke, idle player
func (e *Engine) RequestLoan() (*LoanGranted, error) {
	if e.session.IsRolling {
		return nil, ErrRollInProgress
	}
	if !e.session.LoanEligible() {
		return nil, ErrLoanNotEligible
	}

	e.session.Balance += LoanGrant
	e.session.Notification = e.messages.Pick(models.MessagePoor)
	e.touch()

	return &LoanGranted{
		Amount:  LoanGrant,
		Balance: e.session.Balance,
		Message: e.session.Notification,
	}, nil
}

func (e *Engine) reject(reason EngineError) *Rejection {
	e.session.Notification = e.messages.Pick(reason.Category())
	e.touch()

	return &Rejection{
		Reason:  reason,
		Message: e.session.Notification,
	}
}

func (e *Engine) nextRoundID() int64 {
	id := e.clock.Now().UnixMilli()
	if id <= e.session.LastRoundID {
		id = e.session.LastRoundID + 1
	}
	return id
}

func (e *Engine) touch() {
	e.session.UpdatedAt = e.clock.Now()
}

// ParseAmount reads the leading integer of text. Non-numeric input and
// negative numbers give zero; numbers too large for an int saturate.
func ParseAmount(text string) int {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	negative := false
	if text != "" && (text[0] == '-' || text[0] == '+') {
		negative = text[0] == '-'
		text = text[1:]
	}

	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	amount, err := strconv.Atoi(text[:end])
	if err != nil {
		return math.MaxInt
	}
	return amount
}
