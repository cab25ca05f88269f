package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/taixiu/internal/services/game Service

import "context"

// Service hosts Tài Xỉu sessions
type Service interface {
	// StartSession opens a fresh table for one player
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetSession returns a read snapshot of a session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// EndSession closes a table that is not rolling
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// SelectSide picks Tài or Xỉu for the next roll
	SelectSide(ctx context.Context, input *SelectSideInput) (*SelectSideOutput, error)

	// SetBetAmount sets the stake from a number or free-form text
	SetBetAmount(ctx context.Context, input *SetBetAmountInput) (*SetBetAmountOutput, error)

	// QuickBet applies one of the preset stakes
	QuickBet(ctx context.Context, input *QuickBetInput) (*QuickBetOutput, error)

	// AllIn stakes the whole balance
	AllIn(ctx context.Context, input *AllInInput) (*AllInOutput, error)

	// Roll takes the stake and schedules the dice to land
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// RequestLoan credits the emergency grant to a broke player
	RequestLoan(ctx context.Context, input *RequestLoanInput) (*RequestLoanOutput, error)

	// AddListener registers a receiver for roll events
	AddListener(listener Listener)
}

// Listener receives the events of scheduled rolls. Calls happen on the
// scheduler goroutine and should return quickly.
type Listener interface {
	// OnRollTick is called for every cosmetic shake while rolling
	OnRollTick(ctx context.Context, event *RollTickEvent)

	// OnRollResolved is called once the dice have landed
	OnRollResolved(ctx context.Context, event *RollResolvedEvent)
}
