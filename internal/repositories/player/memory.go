package player

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// memoryRepository keeps seats in process memory
type memoryRepository struct {
	mu      sync.RWMutex
	players map[string]models.Player
}

// NewMemory creates an in-process player repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		players: make(map[string]models.Player),
	}
}

// SavePlayer stores a copy of the player
func (r *memoryRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	if input.Player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.players[input.Player.ID] = *input.Player
	return nil
}

// GetPlayer returns a copy of the stored player
func (r *memoryRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[input.PlayerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return &player, nil
}

// DeletePlayer forgets a player
func (r *memoryRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.players, input.PlayerID)
	return nil
}
