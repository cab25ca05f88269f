package discord

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/taixiu/internal/engine"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *models.Session {
	return &models.Session{
		ID:           "session-1",
		Balance:      12500,
		BetAmount:    1000,
		SelectedSide: models.SideHigh,
		Dice:         models.Dice{2, 5, 6},
		Notification: "Chó ngáp phải ruồi!",
		History: []models.Round{
			models.NewRound(3, models.Dice{2, 5, 6}),
			models.NewRound(2, models.Dice{1, 1, 1}),
			models.NewRound(1, models.Dice{1, 2, 3}),
		},
	}
}

func buttons(t *testing.T, components []discordgo.MessageComponent) []discordgo.Button {
	t.Helper()

	var result []discordgo.Button
	for _, component := range components {
		row, ok := component.(discordgo.ActionsRow)
		require.True(t, ok)
		assert.LessOrEqual(t, len(row.Components), 5)
		for _, c := range row.Components {
			button, ok := c.(discordgo.Button)
			require.True(t, ok)
			result = append(result, button)
		}
	}
	return result
}

func TestFormatAmount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		500:     "500",
		5000:    "5,000",
		123456:  "123,456",
		1000000: "1,000,000",
		-2500:   "-2,500",
	}
	for amount, want := range tests {
		assert.Equal(t, want, formatAmount(amount), "amount %d", amount)
	}
}

func TestParseCustomID(t *testing.T) {
	action, arg := parseCustomID(customID(ButtonQuickBet, "500"))
	assert.Equal(t, ButtonQuickBet, action)
	assert.Equal(t, "500", arg)

	action, arg = parseCustomID(ButtonRoll)
	assert.Equal(t, ButtonRoll, action)
	assert.Empty(t, arg)
}

func TestRenderHistory(t *testing.T) {
	assert.Equal(t, "`T` `B` `X`", renderHistory(testSession().History))
	assert.Contains(t, renderHistory(nil), "Chưa có lịch sử")
}

func TestRenderDice(t *testing.T) {
	assert.Equal(t, "⚁ ⚄ ⚅  Tổng: **13**", renderDice(models.Dice{2, 5, 6}))
}

func TestRenderSessionEmbed(t *testing.T) {
	embed := renderSessionEmbed(testSession())

	assert.Equal(t, "\"Chó ngáp phải ruồi!\"", embed.Description)
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "12,500 Lá Mít", embed.Fields[0].Value)
	assert.Equal(t, "1,000", embed.Fields[1].Value)
	assert.Equal(t, "TÀI (Đang cược: 1,000)", embed.Fields[2].Value)
	assert.Contains(t, embed.Fields[3].Value, "**13**")
}

func TestRenderSessionEmbedRolling(t *testing.T) {
	session := testSession()
	session.IsRolling = true

	embed := renderSessionEmbed(session)
	assert.Equal(t, colorRolling, embed.Color)
	assert.Contains(t, embed.Fields[3].Value, "Đang Xóc Lọ")
}

func TestRenderResultEmbed(t *testing.T) {
	session := testSession()
	event := &game.RollResolvedEvent{
		SessionID: session.ID,
		Session:   session,
		Result: &engine.RoundResult{
			Round: models.NewRound(3, models.Dice{2, 5, 6}),
			Won:   true,
		},
	}

	embed := renderResultEmbed(event)
	assert.Equal(t, colorWin, embed.Color)
	assert.Contains(t, embed.Fields[3].Value, "TÀI")

	event.Result.Won = false
	assert.Equal(t, colorLose, renderResultEmbed(event).Color)
}

func TestRenderComponents(t *testing.T) {
	session := testSession()

	all := buttons(t, renderComponents(session, false))
	require.Len(t, all, 2+len(engine.QuickBetPresets())+1+2)
	assert.Equal(t, discordgo.DangerButton, all[0].Style)
	assert.Equal(t, discordgo.SecondaryButton, all[1].Style)
	for _, button := range all {
		assert.NotEqual(t, ButtonLoan, button.CustomID)
		assert.False(t, button.Disabled)
	}

	withLoan := buttons(t, renderComponents(session, true))
	assert.Equal(t, ButtonLoan, withLoan[len(withLoan)-1].CustomID)
}

func TestRenderComponentsRolling(t *testing.T) {
	session := testSession()
	session.IsRolling = true

	for _, button := range buttons(t, renderComponents(session, false)) {
		if button.CustomID == ButtonRefresh {
			assert.False(t, button.Disabled)
			continue
		}
		assert.True(t, button.Disabled, button.CustomID)
	}
}

func TestErrorText(t *testing.T) {
	rejection := &engine.Rejection{Reason: engine.ErrNoSideSelected, Message: "Chọn Tài hoặc Xỉu đi má, ngắm hoài!"}
	assert.Equal(t, rejection.Message, errorText(rejection))
	assert.Contains(t, errorText(game.ErrSessionNotFound), "/taixiu play")
	assert.Contains(t, errorText(engine.ErrRollInProgress), "Đang lắc")
	assert.Contains(t, errorText(errors.New("boom")), "Có lỗi")
}
