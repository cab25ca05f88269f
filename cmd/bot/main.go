package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/taixiu/internal/app"
	"github.com/KirkDiggler/taixiu/internal/config"
	"github.com/KirkDiggler/taixiu/internal/handlers/discord"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger(cfg, os.Stderr)

	if cfg.DiscordToken == "" {
		logger.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	services, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build services")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   services.Game,
		Messages:      services.Messages,
		PlayerRepo:    services.Players,
		Logger:        &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Let running rolls land before the connection goes away
	if err := services.Close(); err != nil {
		logger.Error().Err(err).Msg("error stopping services")
	}
	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}

	logger.Info().Msg("bot has been shut down")
}
