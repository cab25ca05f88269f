package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/KirkDiggler/taixiu/internal/repositories/player"
	"github.com/KirkDiggler/taixiu/internal/services/game"
)

// seats maps Discord users to their game sessions
type seats struct {
	players player.Repository
	clock   clock.Clock
}

// SessionFor returns the session a user sits at, or game.ErrSessionNotFound
func (s *seats) SessionFor(ctx context.Context, userID string) (string, error) {
	p, err := s.players.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: userID})
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return "", game.ErrSessionNotFound
		}
		return "", err
	}
	return p.SessionID, nil
}

// Sit records the session a user plays at
func (s *seats) Sit(ctx context.Context, userID, name, sessionID string) error {
	return s.players.SavePlayer(ctx, &player.SavePlayerInput{
		Player: &models.Player{
			ID:        userID,
			Name:      name,
			SessionID: sessionID,
			UpdatedAt: s.clock.Now(),
		},
	})
}

// Leave frees a user's seat
func (s *seats) Leave(ctx context.Context, userID string) error {
	return s.players.DeletePlayer(ctx, &player.DeletePlayerInput{PlayerID: userID})
}
