package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/engine"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/KirkDiggler/taixiu/internal/repositories/player"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// loanOfferDelay lets the losing result sink in before the loan is offered
const loanOfferDelay = time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	messages    engine.MessagePicker
	seats       *seats
	tables      *tables
	logger      zerolog.Logger
	config      *Config

	pending sync.WaitGroup
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Messages supplies the loan offer text
	Messages engine.MessagePicker

	// PlayerRepo remembers which session each user plays at
	PlayerRepo player.Repository

	// Clock defaults to the system clock
	Clock clock.Clock

	// Logger defaults to a disabled logger
	Logger *zerolog.Logger
}

// New creates a new Discord bot and subscribes it to roll events
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("message picker cannot be nil")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		messages:    cfg.Messages,
		seats:       &seats{players: cfg.PlayerRepo, clock: clk},
		tables:      newTables(clk),
		logger:      logger.With().Str("component", "discord").Logger(),
		config:      cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)
	cfg.GameService.AddListener(bot)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewTaixiuCommand(b.gameService, b.seats, b.tables, b.logger)); err != nil {
		return fmt.Errorf("failed to register taixiu command: %w", err)
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	b.pending.Wait()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		} else {
			b.logger.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// An empty guild ID registers the command globally
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("failed to handle command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("failed to handle component")
		}
	}
}

// handleComponentInteraction handles the table buttons
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	ctx := context.Background()
	sessionID, err := b.seats.SessionFor(ctx, user.ID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	action, arg := parseCustomID(i.MessageComponentData().CustomID)

	switch action {
	case ButtonSide:
		side, ok := models.ParseSide(arg)
		if !ok {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown side: %s", arg))
		}
		_, err = b.gameService.SelectSide(ctx, &game.SelectSideInput{SessionID: sessionID, Side: side})
	case ButtonQuickBet:
		amount, convErr := strconv.Atoi(arg)
		if convErr != nil {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown amount: %s", arg))
		}
		_, err = b.gameService.QuickBet(ctx, &game.QuickBetInput{SessionID: sessionID, Amount: amount})
	case ButtonAllIn:
		_, err = b.gameService.AllIn(ctx, &game.AllInInput{SessionID: sessionID})
	case ButtonRoll:
		_, err = b.gameService.Roll(ctx, &game.RollInput{SessionID: sessionID})
	case ButtonLoan:
		_, err = b.gameService.RequestLoan(ctx, &game.RequestLoanInput{SessionID: sessionID})
	case ButtonRefresh:
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", action))
	}

	// Rule rejections are shown through the notification on the table
	var rejection *engine.Rejection
	if err != nil && !errors.As(err, &rejection) {
		if errors.Is(err, game.ErrSessionNotFound) {
			b.tables.Forget(sessionID)
			if leaveErr := b.seats.Leave(ctx, user.ID); leaveErr != nil {
				b.logger.Warn().Err(leaveErr).Str("user_id", user.ID).Msg("failed to free seat")
			}
		}
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	output, err := b.gameService.GetSession(ctx, &game.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, errorText(err))
	}

	// The newest interaction owns the message edited when the dice land
	b.tables.Track(sessionID, i.Interaction)
	return UpdateTable(s, i, output.Session, output.LoanEligible)
}

// OnRollTick is a no-op: Discord rate limits edits, so only the landed dice
// are drawn
func (b *Bot) OnRollTick(ctx context.Context, event *game.RollTickEvent) {}

// OnRollResolved redraws the table with the landed dice
func (b *Bot) OnRollResolved(ctx context.Context, event *game.RollResolvedEvent) {
	interaction, ok := b.tables.Interaction(event.SessionID)
	if !ok {
		return
	}

	embeds := []*discordgo.MessageEmbed{renderResultEmbed(event)}
	components := renderComponents(event.Session, false)
	_, err := b.session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		// The token is dead or the message is gone; a new command tracks again
		b.tables.Forget(event.SessionID)
		b.logger.Warn().Err(err).Str("session_id", event.SessionID).Msg("failed to edit table")
		return
	}

	if event.Session.LoanEligible() {
		b.pending.Add(1)
		time.AfterFunc(loanOfferDelay, func() {
			defer b.pending.Done()
			b.offerLoan(interaction, event)
		})
	}
}

// offerLoan adds the loan offer under a broke player's table
func (b *Bot) offerLoan(interaction *discordgo.Interaction, event *game.RollResolvedEvent) {
	embeds := []*discordgo.MessageEmbed{
		renderResultEmbed(event),
		renderLoanEmbed(b.messages.Pick(models.MessageLoanOffer)),
	}
	components := renderComponents(event.Session, true)

	_, err := b.session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("session_id", event.SessionID).Msg("failed to offer loan")
	}
}
