package session

import (
	"errors"
	"time"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// DefaultTTL bounds how long an untouched session is kept
const DefaultTTL = 24 * time.Hour

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string
}
