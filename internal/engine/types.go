package engine

import (
	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/dice"
	"github.com/KirkDiggler/taixiu/internal/models"
)

// Table rules. None of these are tunable.
const (
	StartingBalance  = 5000
	DefaultBet       = 1000
	LoanGrant        = 500
	PayoutMultiplier = 2
	HistoryCap       = 10
)

// QuickBetPresets returns the preset stakes offered next to the bet input
func QuickBetPresets() []int {
	return []int{100, 500, 1000, 5000}
}

// MessagePicker chooses the feedback line for a category
type MessagePicker interface {
	Pick(category models.MessageCategory) string
}

// Config holds the dependencies of an engine
type Config struct {
	Roller   dice.Roller
	Clock    clock.Clock
	Messages MessagePicker

	// Session resumes an existing session. A fresh one is opened when nil.
	Session *models.Session

	// SessionID names a freshly opened session
	SessionID string
}

// RollStarted describes a roll that has taken the stake
type RollStarted struct {
	Side    models.Side
	Stake   int
	Balance int
	Message string
}

// RoundResult describes a resolved roll
type RoundResult struct {
	Round   models.Round
	Side    models.Side
	Stake   int
	Won     bool
	Payout  int
	Balance int
	Message string
}

// LoanGranted describes a loan credited to an empty balance
type LoanGranted struct {
	Amount  int
	Balance int
	Message string
}
