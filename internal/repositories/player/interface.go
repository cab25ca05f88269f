package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/taixiu/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// Repository defines the interface for player seating
type Repository interface {
	// SavePlayer persists a player and the table they sit at
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// DeletePlayer removes a player from their table
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error
}
