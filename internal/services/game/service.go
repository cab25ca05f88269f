package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/common/uuid"
	"github.com/KirkDiggler/taixiu/internal/dice"
	"github.com/KirkDiggler/taixiu/internal/engine"
	sessionRepo "github.com/KirkDiggler/taixiu/internal/repositories/session"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	messages      engine.MessagePicker
	logger        zerolog.Logger

	rollDuration time.Duration
	tickInterval time.Duration

	// locks serialises work on one session
	locksMu sync.Mutex
	locks   map[string]*sessionLock

	mu       sync.Mutex
	closed   bool
	inFlight sync.WaitGroup
	// rolling holds the sessions whose roll this process drives
	rolling   map[string]struct{}
	listeners []Listener
}

// sessionLock is dropped from the table once nobody holds or waits on it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	rollDuration := cfg.RollDuration
	if rollDuration <= 0 {
		rollDuration = DefaultRollDuration
	}

	tickInterval := cfg.TickInterval
	if tickInterval == 0 {
		tickInterval = DefaultTickInterval
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		messages:      cfg.Messages,
		logger:        logger.With().Str("component", "game").Logger(),
		rollDuration:  rollDuration,
		tickInterval:  tickInterval,
		locks:         make(map[string]*sessionLock),
		rolling:       make(map[string]struct{}),
	}, nil
}

// AddListener registers a receiver for roll events
func (s *service) AddListener(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// Close stops accepting rolls and waits for the ones in flight to land
func (s *service) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.inFlight.Wait()
	return nil
}

// StartSession opens a fresh table for one player
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sessionID := s.uuidGenerator.NewUUID()

	eng, err := engine.New(&engine.Config{
		Roller:    s.diceRoller,
		Clock:     s.clock,
		Messages:  s.messages,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("player", input.PlayerName).
		Msg("session started")

	return &StartSessionOutput{
		SessionID: sessionID,
		Session:   eng.Snapshot(),
	}, nil
}

// GetSession returns a read snapshot of a session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	eng, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session:      eng.Snapshot(),
		LoanEligible: eng.LoanEligible(),
	}, nil
}

// EndSession closes a table that is not rolling
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	unlock := s.lock(input.SessionID)
	defer unlock()

	eng, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// A started roll cannot be abandoned; its stake is already gone.
	snapshot := eng.Snapshot()
	if snapshot.IsRolling {
		return nil, engine.ErrRollInProgress
	}

	err = s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	s.logger.Info().
		Str("session_id", input.SessionID).
		Int("balance", snapshot.Balance).
		Int("rounds", len(snapshot.History)).
		Msg("session ended")

	return &EndSessionOutput{
		Session: snapshot,
	}, nil
}

// SelectSide picks Tài or Xỉu for the next roll
func (s *service) SelectSide(ctx context.Context, input *SelectSideInput) (*SelectSideOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	eng, err := s.apply(ctx, input.SessionID, func(eng *engine.Engine) error {
		return eng.SelectSide(input.Side)
	})
	if err != nil {
		return nil, err
	}

	return &SelectSideOutput{Session: eng.Snapshot()}, nil
}

// SetBetAmount sets the stake from a number or free-form text
func (s *service) SetBetAmount(ctx context.Context, input *SetBetAmountInput) (*SetBetAmountOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	eng, err := s.apply(ctx, input.SessionID, func(eng *engine.Engine) error {
		if input.Text != "" {
			return eng.SetBetAmountText(input.Text)
		}
		return eng.SetBetAmount(input.Amount)
	})
	if err != nil {
		return nil, err
	}

	return &SetBetAmountOutput{Session: eng.Snapshot()}, nil
}

// QuickBet applies one of the preset stakes
func (s *service) QuickBet(ctx context.Context, input *QuickBetInput) (*QuickBetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	eng, err := s.apply(ctx, input.SessionID, func(eng *engine.Engine) error {
		return eng.QuickSetBet(input.Amount)
	})
	if err != nil {
		return nil, err
	}

	return &QuickBetOutput{Session: eng.Snapshot()}, nil
}

// AllIn stakes the whole balance
func (s *service) AllIn(ctx context.Context, input *AllInInput) (*AllInOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	eng, err := s.apply(ctx, input.SessionID, func(eng *engine.Engine) error {
		return eng.AllIn()
	})
	if err != nil {
		return nil, err
	}

	return &AllInOutput{Session: eng.Snapshot()}, nil
}

// Roll takes the stake and schedules the dice to land
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.isClosed() {
		return nil, ErrServiceClosed
	}

	var started *engine.RollStarted
	eng, err := s.apply(ctx, input.SessionID, func(eng *engine.Engine) error {
		var err error
		started, err = eng.StartRoll()
		if err != nil {
			return err
		}
		// Claimed under the session lock so a concurrent load cannot
		// schedule the same roll twice
		if !s.claimRoll(input.SessionID) {
			return ErrServiceClosed
		}
		return nil
	})
	if err != nil {
		if started != nil && !errors.Is(err, ErrServiceClosed) {
			s.abandonRoll(input.SessionID)
		}
		return nil, err
	}

	resolvesAt := s.clock.Now().Add(s.rollDuration)
	go s.runRoll(input.SessionID)

	s.logger.Debug().
		Str("session_id", input.SessionID).
		Str("side", string(started.Side)).
		Int("stake", started.Stake).
		Msg("roll started")

	return &RollOutput{
		Started:    started,
		Session:    eng.Snapshot(),
		ResolvesAt: resolvesAt,
	}, nil
}

// RequestLoan credits the emergency grant to a broke player
func (s *service) RequestLoan(ctx context.Context, input *RequestLoanInput) (*RequestLoanOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var loan *engine.LoanGranted
	eng, err := s.apply(ctx, input.SessionID, func(eng *engine.Engine) error {
		var err error
		loan, err = eng.RequestLoan()
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", input.SessionID).
		Int("amount", loan.Amount).
		Msg("loan granted")

	return &RequestLoanOutput{
		Loan:    loan,
		Session: eng.Snapshot(),
	}, nil
}

// apply runs op on the session under its lock and stores the result. Rule
// rejections still store the session because they change the notification.
func (s *service) apply(ctx context.Context, sessionID string, op func(*engine.Engine) error) (*engine.Engine, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	eng, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	opErr := op(eng)
	var rejection *engine.Rejection
	if opErr != nil && !errors.As(opErr, &rejection) {
		return nil, opErr
	}

	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}

	if opErr != nil {
		s.logger.Debug().
			Str("session_id", sessionID).
			Str("reason", string(rejection.Reason)).
			Msg("intent rejected")
		return nil, opErr
	}

	return eng, nil
}

func (s *service) lock(sessionID string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.locksMu.Unlock()
	}
}

func (s *service) load(ctx context.Context, sessionID string) (*engine.Engine, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	eng, err := engine.New(&engine.Config{
		Roller:   s.diceRoller,
		Clock:    s.clock,
		Messages: s.messages,
		Session:  session,
	})
	if err != nil {
		return nil, err
	}

	// A stored roll nobody here is driving was left by a failed resolution
	// or a previous process; it still has to land
	if session.IsRolling && s.claimRoll(sessionID) {
		s.logger.Info().Str("session_id", sessionID).Msg("resuming stranded roll")
		go s.runRoll(sessionID)
	}

	return eng, nil
}

func (s *service) save(ctx context.Context, eng *engine.Engine) error {
	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: eng.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *service) mapStoreError(err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

func (s *service) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// claimRoll registers a roll this process will drive. It reports false when
// the roll is already driven here or the service is closed.
func (s *service) claimRoll(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.rolling[sessionID]; ok {
		return false
	}
	s.rolling[sessionID] = struct{}{}
	s.inFlight.Add(1)
	return true
}

// releaseRoll forgets a roll without finishing its in-flight slot
func (s *service) releaseRoll(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rolling, sessionID)
}

// abandonRoll undoes a claim whose roll was never stored
func (s *service) abandonRoll(sessionID string) {
	s.releaseRoll(sessionID)
	s.inFlight.Done()
}

func (s *service) snapshotListeners() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Listener(nil), s.listeners...)
}
