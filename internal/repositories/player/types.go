package player

import (
	"errors"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// DeletePlayerInput contains parameters for removing a player
type DeletePlayerInput struct {
	PlayerID string
}
