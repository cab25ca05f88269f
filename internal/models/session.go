package models

import (
	"time"
)

// Session is the complete state of one player's table
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// Balance is the player's virtual currency (Lá Mít), never negative
	Balance int

	// SelectedSide is the side the next roll is bet on, SideNone if unset
	SelectedSide Side

	// BetAmount is the stake for the next roll, never negative
	BetAmount int

	// IsRolling is true between a successful roll start and its resolution
	IsRolling bool

	// Dice are the faces currently on display
	Dice Dice

	// History holds the most recent rounds, newest first
	History []Round

	// Notification is the last feedback line shown to the player
	Notification string

	// LastRoundID is the id of the most recently created round
	LastRoundID int64

	// CreatedAt is when the session was opened
	CreatedAt time.Time

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// LoanEligible reports whether the player is broke and idle
func (s *Session) LoanEligible() bool {
	return s.Balance == 0 && !s.IsRolling
}

// Clone returns a deep copy safe to hand to readers
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	if s.History != nil {
		clone.History = make([]Round, len(s.History))
		copy(clone.History, s.History)
	}
	return &clone
}
