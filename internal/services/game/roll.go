package game

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/taixiu/internal/engine"
)

// runRoll drives one roll: cosmetic shakes on every tick, then exactly one
// resolution when the roll duration has elapsed. There is no cancellation.
// The caller must have claimed the roll.
func (s *service) runRoll(sessionID string) {
	defer s.inFlight.Done()

	var ticks <-chan time.Time
	if s.tickInterval > 0 {
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	landed := time.NewTimer(s.rollDuration)
	defer landed.Stop()

	for {
		select {
		case <-ticks:
			s.shake(sessionID)
		case <-landed.C:
			s.land(sessionID)
			return
		}
	}
}

func (s *service) shake(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
	defer cancel()

	unlock := s.lock(sessionID)
	eng, err := s.load(ctx, sessionID)
	if err != nil {
		unlock()
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to load session for shake")
		return
	}

	shown, err := eng.Shake()
	if err == nil {
		err = s.save(ctx, eng)
	}
	unlock()
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to shake dice")
		return
	}

	event := &RollTickEvent{
		SessionID: sessionID,
		Dice:      shown,
	}
	for _, listener := range s.snapshotListeners() {
		listener.OnRollTick(ctx, event)
	}
}

// land retries the resolution until it is stored
func (s *service) land(sessionID string) {
	backoff := resolveRetryBase
	for attempt := 1; ; attempt++ {
		err := s.resolve(sessionID)
		if err == nil {
			return
		}

		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, engine.ErrNotRolling) {
			s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("roll dropped")
			s.releaseRoll(sessionID)
			return
		}

		if s.isClosed() && attempt >= shutdownResolveAttempts {
			s.logger.Error().
				Err(err).
				Str("session_id", sessionID).
				Int("attempts", attempt).
				Msg("roll left unresolved at shutdown")
			s.releaseRoll(sessionID)
			return
		}

		s.logger.Warn().
			Err(err).
			Str("session_id", sessionID).
			Int("attempt", attempt).
			Dur("retry_in", backoff).
			Msg("failed to resolve roll")
		time.Sleep(backoff)
		backoff = min(backoff*2, resolveRetryMax)
	}
}

// resolve draws the dice and stores the landed round. The roll is released
// under the session lock so the next Roll can claim it at once.
func (s *service) resolve(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
	defer cancel()

	unlock := s.lock(sessionID)
	eng, err := s.load(ctx, sessionID)
	if err != nil {
		unlock()
		return err
	}

	result, err := eng.ResolveRoll(eng.DrawDice())
	if err == nil {
		err = s.save(ctx, eng)
	}
	if err != nil {
		unlock()
		return err
	}
	s.releaseRoll(sessionID)
	unlock()

	s.logger.Info().
		Str("session_id", sessionID).
		Int64("round_id", result.Round.ID).
		Ints("dice", []int{int(result.Round.Dice[0]), int(result.Round.Dice[1]), int(result.Round.Dice[2])}).
		Str("outcome", string(result.Round.Outcome)).
		Bool("won", result.Won).
		Int("balance", result.Balance).
		Msg("round resolved")

	event := &RollResolvedEvent{
		SessionID: sessionID,
		Result:    result,
		Session:   eng.Snapshot(),
	}
	for _, listener := range s.snapshotListeners() {
		listener.OnRollResolved(ctx, event)
	}
	return nil
}
