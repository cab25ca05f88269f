package app

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/taixiu/internal/config"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemory(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, &config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	output, err := a.Game.StartSession(ctx, &game.StartSessionInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, output.SessionID)
	assert.NotEmpty(t, a.Messages.Pick(models.MessageLoanOffer))
	assert.NotNil(t, a.Players)
}

func TestNewRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	a, err := New(ctx, &config.Config{RedisAddr: mr.Addr(), SessionTTL: time.Hour}, zerolog.Nop())
	require.NoError(t, err)

	output, err := a.Game.StartSession(ctx, &game.StartSessionInput{})
	require.NoError(t, err)
	assert.True(t, mr.Exists("taixiu:session:"+output.SessionID))
	assert.Equal(t, time.Hour, mr.TTL("taixiu:session:"+output.SessionID))

	require.NoError(t, a.Close())
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), &config.Config{RedisAddr: addr}, zerolog.Nop())
	assert.Error(t, err)
}
