package engine

import "github.com/KirkDiggler/taixiu/internal/models"

// EngineError is the error type for rule violations and setup problems
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Category returns the feedback table for rule rejections shown to the
// player, or an empty category for everything else.
func (e EngineError) Category() models.MessageCategory {
	switch e {
	case ErrInsufficientFunds:
		return models.MessageInsufficientFunds
	case ErrNoSideSelected:
		return models.MessageNoSideSelected
	case ErrQuickBetRejected:
		return models.MessageQuickBetRejected
	default:
		return ""
	}
}

const (
	ErrInsufficientFunds EngineError = "bet exceeds balance"
	ErrNoSideSelected    EngineError = "no side selected"
	ErrQuickBetRejected  EngineError = "quick bet exceeds balance"
	ErrRollInProgress    EngineError = "roll in progress"
	ErrNotRolling        EngineError = "no roll in progress"
	ErrInvalidSide       EngineError = "invalid side"
	ErrInvalidDie        EngineError = "die face out of range"
	ErrLoanNotEligible   EngineError = "loan requires an empty balance and an idle table"
	ErrNilConfig         EngineError = "config cannot be nil"
	ErrNilRoller         EngineError = "dice roller cannot be nil"
	ErrNilClock          EngineError = "clock cannot be nil"
	ErrNilMessages       EngineError = "message picker cannot be nil"
)

// Rejection is returned when the player asks for something the rules do
// not allow. It carries the feedback line that was shown.
type Rejection struct {
	Reason  EngineError
	Message string
}

// Error implements the error interface
func (r *Rejection) Error() string {
	return string(r.Reason)
}

// Unwrap lets errors.Is match the reason
func (r *Rejection) Unwrap() error {
	return r.Reason
}
