package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/taixiu/internal/engine"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/KirkDiggler/taixiu/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

const (
	colorIdle    = 0xeab308
	colorRolling = 0x64748b
	colorWin     = 0x22c55e
	colorLose    = 0xef4444
)

// Custom IDs for the table controls. Arguments follow the colon.
const (
	ButtonSide     = "taixiu_side"
	ButtonQuickBet = "taixiu_quick"
	ButtonAllIn    = "taixiu_allin"
	ButtonRoll     = "taixiu_roll"
	ButtonLoan     = "taixiu_loan"
	ButtonRefresh  = "taixiu_refresh"
)

var dieFaces = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// customID joins a button action and its argument
func customID(action, arg string) string {
	if arg == "" {
		return action
	}
	return action + ":" + arg
}

// parseCustomID splits a custom ID into action and argument
func parseCustomID(id string) (action, arg string) {
	action, arg, _ = strings.Cut(id, ":")
	return action, arg
}

// formatAmount groups digits by thousands
func formatAmount(amount int) string {
	digits := strconv.Itoa(amount)
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// renderDice shows the faces and their sum
func renderDice(d models.Dice) string {
	faces := make([]string, 0, len(d))
	for _, face := range d {
		if !face.Valid() {
			faces = append(faces, "?")
			continue
		}
		faces = append(faces, dieFaces[face-1])
	}
	return fmt.Sprintf("%s  Tổng: **%d**", strings.Join(faces, " "), d.Sum())
}

// renderHistory lists badges newest first
func renderHistory(history []models.Round) string {
	if len(history) == 0 {
		return "Chưa có lịch sử (Mới mở sòng)"
	}

	badges := make([]string, 0, len(history))
	for _, round := range history {
		badges = append(badges, "`"+round.Outcome.Badge()+"`")
	}
	return strings.Join(badges, " ")
}

// renderSide shows the chosen side with its stake
func renderSide(session *models.Session) string {
	if session.SelectedSide.IsNone() {
		return "Chưa chọn"
	}
	return fmt.Sprintf("%s (Đang cược: %s)", session.SelectedSide.Label(), formatAmount(session.BetAmount))
}

// renderSessionEmbed builds the table view
func renderSessionEmbed(session *models.Session) *discordgo.MessageEmbed {
	color := colorIdle
	dice := renderDice(session.Dice)
	if session.IsRolling {
		color = colorRolling
		dice = "🎲 Đang Xóc Lọ..."
	}

	return &discordgo.MessageEmbed{
		Title:       "TÀI XỈU CỰC MẶN",
		Description: fmt.Sprintf("\"%s\"", session.Notification),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Số dư",
				Value:  formatAmount(session.Balance) + " Lá Mít",
				Inline: true,
			},
			{
				Name:   "Mức cược",
				Value:  formatAmount(session.BetAmount),
				Inline: true,
			},
			{
				Name:   "Cửa",
				Value:  renderSide(session),
				Inline: true,
			},
			{
				Name:  "Xúc xắc",
				Value: dice,
			},
			{
				Name:  "Lịch sử",
				Value: renderHistory(session.History),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Game chỉ mang tính chất troll, không khuyến khích cờ bạc thật.",
		},
	}
}

// renderResultEmbed builds the table view after the dice have landed
func renderResultEmbed(event *game.RollResolvedEvent) *discordgo.MessageEmbed {
	embed := renderSessionEmbed(event.Session)
	embed.Color = colorLose
	if event.Result.Won {
		embed.Color = colorWin
	}

	round := event.Result.Round
	embed.Fields[3].Value = fmt.Sprintf("%s → %s", renderDice(round.Dice), round.Outcome.Label())
	return embed
}

// renderLoanEmbed builds the loan offer shown to a broke player
func renderLoanEmbed(offer string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "HẾT TIỀN RỒI À?",
		Description: fmt.Sprintf("\"%s\"", offer),
		Color:       colorLose,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "*Bấm vào đây đồng nghĩa với việc bạn thừa nhận mình 'gà'.",
		},
	}
}

// renderComponents builds the control rows. Everything is disabled while the
// dice are rolling.
func renderComponents(session *models.Session, loanEligible bool) []discordgo.MessageComponent {
	rolling := session.IsRolling

	sideStyle := func(side models.Side, selected discordgo.ButtonStyle) discordgo.ButtonStyle {
		if session.SelectedSide == side {
			return selected
		}
		return discordgo.SecondaryButton
	}

	sides := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    models.SideHigh.Label(),
				Style:    sideStyle(models.SideHigh, discordgo.DangerButton),
				CustomID: customID(ButtonSide, string(models.SideHigh)),
				Disabled: rolling,
			},
			discordgo.Button{
				Label:    models.SideLow.Label(),
				Style:    sideStyle(models.SideLow, discordgo.PrimaryButton),
				CustomID: customID(ButtonSide, string(models.SideLow)),
				Disabled: rolling,
			},
		},
	}

	quick := make([]discordgo.MessageComponent, 0, len(engine.QuickBetPresets())+1)
	for _, amount := range engine.QuickBetPresets() {
		quick = append(quick, discordgo.Button{
			Label:    "+" + strconv.Itoa(amount),
			Style:    discordgo.SecondaryButton,
			CustomID: customID(ButtonQuickBet, strconv.Itoa(amount)),
			Disabled: rolling,
		})
	}
	quick = append(quick, discordgo.Button{
		Label:    "ALL-IN",
		Style:    discordgo.DangerButton,
		CustomID: ButtonAllIn,
		Disabled: rolling,
	})

	rollLabel := "LẮC NGAY CON ƠI"
	if rolling {
		rollLabel = "Đang Xóc Lọ..."
	}
	actions := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    rollLabel,
			Style:    discordgo.SuccessButton,
			CustomID: ButtonRoll,
			Disabled: rolling,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		},
		discordgo.Button{
			Label:    "Làm mới",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonRefresh,
		},
	}
	if loanEligible {
		actions = append(actions, discordgo.Button{
			Label:    fmt.Sprintf("Vay nóng bát họ (%d Lá Mít)", engine.LoanGrant),
			Style:    discordgo.DangerButton,
			CustomID: ButtonLoan,
			Emoji: &discordgo.ComponentEmoji{
				Name: "💸",
			},
		})
	}

	return []discordgo.MessageComponent{
		sides,
		discordgo.ActionsRow{Components: quick},
		discordgo.ActionsRow{Components: actions},
	}
}

// errorText turns a service error into a line for the player
func errorText(err error) string {
	var rejection *engine.Rejection
	switch {
	case errors.As(err, &rejection):
		return rejection.Message
	case errors.Is(err, engine.ErrRollInProgress):
		return "Đang lắc, chờ tí đã!"
	case errors.Is(err, engine.ErrLoanNotEligible):
		return "Còn tiền thì vay gì nữa?"
	case errors.Is(err, game.ErrSessionNotFound):
		return "Chưa vào sòng. Gõ `/taixiu play` để bắt đầu."
	case errors.Is(err, game.ErrServiceClosed):
		return "Sòng đang đóng cửa, quay lại sau nhé."
	default:
		return "Có lỗi xảy ra, thử lại sau."
	}
}
