package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// TaixiuCommand handles the /taixiu command
type TaixiuCommand struct {
	BaseCommand
	gameService game.Service
	seats       *seats
	tables      *tables
	logger      zerolog.Logger
}

// NewTaixiuCommand creates a new taixiu command handler
func NewTaixiuCommand(gameService game.Service, seats *seats, tables *tables, logger zerolog.Logger) *TaixiuCommand {
	return &TaixiuCommand{
		BaseCommand: BaseCommand{
			Name:        "taixiu",
			Description: "Tài Xỉu dice table",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "play",
					Description: "Sit down at your table",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bet",
					Description: "Set your stake",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "amount",
							Description: "Stake in Lá Mít",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show your table",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "quit",
					Description: "Leave your table",
				},
			},
		},
		gameService: gameService,
		seats:       seats,
		tables:      tables,
		logger:      logger,
	}
}

// Handle processes a Discord interaction for the taixiu command
func (c *TaixiuCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	ctx := context.Background()
	subcommand := data.Options[0]

	switch subcommand.Name {
	case "play":
		return c.handlePlay(ctx, s, i, user)
	case "bet":
		amount := ""
		if len(subcommand.Options) > 0 {
			amount = subcommand.Options[0].StringValue()
		}
		return c.handleBet(ctx, s, i, user.ID, amount)
	case "status":
		return c.handleStatus(ctx, s, i, user.ID)
	case "quit":
		return c.handleQuit(ctx, s, i, user.ID)
	default:
		return fmt.Errorf("unknown subcommand %q", subcommand.Name)
	}
}

// handlePlay reopens the caller's table or starts a new one
func (c *TaixiuCommand) handlePlay(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, user *discordgo.User) error {
	sessionID, err := c.seats.SessionFor(ctx, user.ID)
	switch {
	case err == nil:
		existing, err := c.gameService.GetSession(ctx, &game.GetSessionInput{
			SessionID: sessionID,
		})
		if err == nil {
			c.tables.Track(sessionID, i.Interaction)
			return RespondWithTable(s, i, existing.Session, existing.LoanEligible)
		}
		if !errors.Is(err, game.ErrSessionNotFound) {
			c.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to get session")
			return RespondWithEphemeralMessage(s, i, errorText(err))
		}
		// Expired from the store; open a fresh table
	case !errors.Is(err, game.ErrSessionNotFound):
		c.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to find seat")
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	output, err := c.gameService.StartSession(ctx, &game.StartSessionInput{
		PlayerName: user.Username,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to start session")
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	if err := c.seats.Sit(ctx, user.ID, user.Username, output.SessionID); err != nil {
		c.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to save seat")
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	c.tables.Track(output.SessionID, i.Interaction)
	return RespondWithTable(s, i, output.Session, false)
}

// handleBet sets the stake from the typed amount
func (c *TaixiuCommand) handleBet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, amount string) error {
	sessionID, err := c.seats.SessionFor(ctx, userID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	output, err := c.gameService.SetBetAmount(ctx, &game.SetBetAmountInput{
		SessionID: sessionID,
		Text:      amount,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	c.tables.Track(sessionID, i.Interaction)
	return RespondWithTable(s, i, output.Session, output.Session.LoanEligible())
}

// handleStatus shows the caller's table
func (c *TaixiuCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	sessionID, err := c.seats.SessionFor(ctx, userID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	output, err := c.gameService.GetSession(ctx, &game.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	c.tables.Track(sessionID, i.Interaction)
	return RespondWithTable(s, i, output.Session, output.LoanEligible)
}

// handleQuit closes the caller's table
func (c *TaixiuCommand) handleQuit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	sessionID, err := c.seats.SessionFor(ctx, userID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	output, err := c.gameService.EndSession(ctx, &game.EndSessionInput{
		SessionID: sessionID,
	})
	if err != nil && !errors.Is(err, game.ErrSessionNotFound) {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	c.tables.Forget(sessionID)
	if err := c.seats.Leave(ctx, userID); err != nil {
		c.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to free seat")
	}

	if output == nil {
		return RespondWithEphemeralMessage(s, i, "Bàn đã đóng.")
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Bàn đã đóng. Số dư cuối: %s Lá Mít.", formatAmount(output.Session.Balance)))
}
