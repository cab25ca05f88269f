package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  GameError = "session not found"
	ErrNilInput         GameError = "input cannot be nil"
	ErrMissingSessionID GameError = "session ID is required"
	ErrServiceClosed    GameError = "service is shutting down"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilMessages      GameError = "message picker cannot be nil"
)
