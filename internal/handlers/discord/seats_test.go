package discord

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/taixiu/internal/common/clock/mocks"
	"github.com/KirkDiggler/taixiu/internal/repositories/player"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := clockMocks.NewMockClock(ctrl)
	now := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(now).AnyTimes()

	ctx := context.Background()
	repo := player.NewMemory()
	s := &seats{players: repo, clock: mockClock}

	_, err := s.SessionFor(ctx, "user-1")
	assert.Equal(t, game.ErrSessionNotFound, err)

	require.NoError(t, s.Sit(ctx, "user-1", "An", "session-1"))

	sessionID, err := s.SessionFor(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	stored, err := repo.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "An", stored.Name)
	assert.Equal(t, now, stored.UpdatedAt)

	require.NoError(t, s.Leave(ctx, "user-1"))
	_, err = s.SessionFor(ctx, "user-1")
	assert.Equal(t, game.ErrSessionNotFound, err)
}

func TestTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := clockMocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()
	tbls := newTables(mockClock)

	_, ok := tbls.Interaction("session-1")
	assert.False(t, ok)

	first := &discordgo.Interaction{ID: "first"}
	second := &discordgo.Interaction{ID: "second"}
	tbls.Track("session-1", first)
	tbls.Track("session-1", second)

	got, ok := tbls.Interaction("session-1")
	require.True(t, ok)
	assert.Equal(t, "second", got.ID)

	tbls.Forget("session-1")
	_, ok = tbls.Interaction("session-1")
	assert.False(t, ok)
}

func TestTablesExpireInteractions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := clockMocks.NewMockClock(ctrl)
	now := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	tbls := newTables(mockClock)
	tbls.Track("session-1", &discordgo.Interaction{ID: "stale"})

	now = now.Add(interactionTTL - time.Second)
	_, ok := tbls.Interaction("session-1")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = tbls.Interaction("session-1")
	assert.False(t, ok)
	assert.Zero(t, tbls.count())

	tbls.Track("session-2", &discordgo.Interaction{ID: "old"})
	now = now.Add(interactionTTL)
	tbls.Track("session-3", &discordgo.Interaction{ID: "new"})

	assert.Equal(t, 1, tbls.count())
	got, ok := tbls.Interaction("session-3")
	require.True(t, ok)
	assert.Equal(t, "new", got.ID)
}
