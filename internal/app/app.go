// Package app wires the game stack shared by the commands
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/common/uuid"
	"github.com/KirkDiggler/taixiu/internal/config"
	"github.com/KirkDiggler/taixiu/internal/dice"
	playerRepo "github.com/KirkDiggler/taixiu/internal/repositories/player"
	sessionRepo "github.com/KirkDiggler/taixiu/internal/repositories/session"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/KirkDiggler/taixiu/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const connectTimeout = 5 * time.Second

// GameService is the game service together with its shutdown hook
type GameService interface {
	game.Service
	Close() error
}

// App holds the constructed services
type App struct {
	Game     GameService
	Messages messaging.Service

	// Players maps chat users to their sessions
	Players playerRepo.Repository

	redisClient *redis.Client
	logger      zerolog.Logger
}

// New builds the session store, messaging and game services from cfg
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{logger: logger}

	repo, err := a.sessionRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	players, err := a.playerRepository(cfg)
	if err != nil {
		a.closeRedis()
		return nil, err
	}

	messages, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		a.closeRedis()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	gameSvc, err := game.New(&game.Config{
		SessionRepo:   repo,
		DiceRoller:    dice.New(&dice.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Messages:      messages,
		Logger:        &logger,
	})
	if err != nil {
		a.closeRedis()
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	a.Game = gameSvc
	a.Messages = messages
	a.Players = players
	return a, nil
}

// Close waits for rolls in flight and releases the store
func (a *App) Close() error {
	if err := a.Game.Close(); err != nil {
		return err
	}
	return a.closeRedis()
}

func (a *App) sessionRepository(ctx context.Context, cfg *config.Config) (sessionRepo.Repository, error) {
	if cfg.RedisAddr == "" {
		a.logger.Warn().Msg("REDIS_ADDR not set, sessions are kept in memory")
		return sessionRepo.NewMemory(), nil
	}

	a.redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := a.redisClient.Ping(ctx).Err(); err != nil {
		a.closeRedis()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: a.redisClient,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		a.closeRedis()
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	a.logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.SessionTTL).Msg("using redis session store")
	return repo, nil
}

func (a *App) playerRepository(cfg *config.Config) (playerRepo.Repository, error) {
	if a.redisClient == nil {
		return playerRepo.NewMemory(), nil
	}

	repo, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: a.redisClient,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	return repo, nil
}

func (a *App) closeRedis() error {
	if a.redisClient == nil {
		return nil
	}
	err := a.redisClient.Close()
	a.redisClient = nil
	return err
}
