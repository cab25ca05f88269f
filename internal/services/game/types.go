package game

import (
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/common/uuid"
	"github.com/KirkDiggler/taixiu/internal/dice"
	"github.com/KirkDiggler/taixiu/internal/engine"
	"github.com/KirkDiggler/taixiu/internal/models"
	sessionRepo "github.com/KirkDiggler/taixiu/internal/repositories/session"
	"github.com/rs/zerolog"
)

const (
	// DefaultRollDuration is how long the dice tumble before landing
	DefaultRollDuration = 2500 * time.Millisecond

	// DefaultTickInterval is the pace of cosmetic shakes while rolling
	DefaultTickInterval = 100 * time.Millisecond

	// backgroundTimeout bounds store calls made by the scheduler
	backgroundTimeout = 5 * time.Second

	// resolveRetryBase and resolveRetryMax bound the backoff between
	// attempts to store a resolution
	resolveRetryBase = 50 * time.Millisecond
	resolveRetryMax  = 2 * time.Second

	// shutdownResolveAttempts is how often a failing resolution is retried
	// once Close has been called. The roll resumes on the next load.
	shutdownResolveAttempts = 3
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Messages      engine.MessagePicker

	// Logger defaults to a disabled logger
	Logger *zerolog.Logger

	// RollDuration defaults to DefaultRollDuration
	RollDuration time.Duration

	// TickInterval defaults to DefaultTickInterval. A negative value turns
	// cosmetic shakes off.
	TickInterval time.Duration
}

// StartSessionInput contains parameters for opening a session
type StartSessionInput struct {
	// PlayerName is only used for logging
	PlayerName string
}

// StartSessionOutput contains the opened session
type StartSessionOutput struct {
	SessionID string
	Session   *models.Session
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains a read snapshot of a session
type GetSessionOutput struct {
	Session *models.Session

	// LoanEligible tells presentation layers to offer the loan
	LoanEligible bool
}

// EndSessionInput contains parameters for closing a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput contains the final state of a closed session
type EndSessionOutput struct {
	Session *models.Session
}

// SelectSideInput contains parameters for choosing a side
type SelectSideInput struct {
	SessionID string
	Side      models.Side
}

// SelectSideOutput contains the session after choosing a side
type SelectSideOutput struct {
	Session *models.Session
}

// SetBetAmountInput contains parameters for setting the stake
type SetBetAmountInput struct {
	SessionID string

	// Amount is used when Text is empty
	Amount int

	// Text is free-form input; non-numeric text counts as zero
	Text string
}

// SetBetAmountOutput contains the session after setting the stake
type SetBetAmountOutput struct {
	Session *models.Session
}

// QuickBetInput contains parameters for a preset stake
type QuickBetInput struct {
	SessionID string
	Amount    int
}

// QuickBetOutput contains the session after a preset stake
type QuickBetOutput struct {
	Session *models.Session
}

// AllInInput contains parameters for staking the whole balance
type AllInInput struct {
	SessionID string
}

// AllInOutput contains the session after staking the whole balance
type AllInOutput struct {
	Session *models.Session
}

// RollInput contains parameters for starting a roll
type RollInput struct {
	SessionID string
}

// RollOutput contains the started roll. The result arrives later through
// RollResolvedEvent and GetSession.
type RollOutput struct {
	Started *engine.RollStarted
	Session *models.Session

	// ResolvesAt is when the dice are scheduled to land
	ResolvesAt time.Time
}

// RequestLoanInput contains parameters for requesting a loan
type RequestLoanInput struct {
	SessionID string
}

// RequestLoanOutput contains the granted loan
type RequestLoanOutput struct {
	Loan    *engine.LoanGranted
	Session *models.Session
}

// RollTickEvent carries the dice shown during one cosmetic shake
type RollTickEvent struct {
	SessionID string
	Dice      models.Dice
}

// RollResolvedEvent carries a finished round
type RollResolvedEvent struct {
	SessionID string
	Result    *engine.RoundResult
	Session   *models.Session
}
