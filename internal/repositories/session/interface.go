package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/taixiu/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// Repository defines the interface for live session storage
type Repository interface {
	// SaveSession stores a session and refreshes its expiry
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
