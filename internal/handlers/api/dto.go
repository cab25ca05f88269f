package api

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/taixiu/internal/engine"
	"github.com/KirkDiggler/taixiu/internal/models"
)

type StartSessionRequest struct {
	PlayerName string `json:"player_name"`
}

type SelectSideRequest struct {
	Side string `json:"side"` // "high"/"low" or "tai"/"xiu"
}

// SetBetRequest sets the stake from a number or, when Text is present, from
// free-form input
type SetBetRequest struct {
	Amount BetAmount `json:"amount"`
	Text   string    `json:"text,omitempty"`
}

// BetAmount takes a JSON number or an integer string and sanitises it the
// way typed input is: leading digits count, anything else is 0
type BetAmount int

func (a *BetAmount) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		text = string(data)
	}
	*a = BetAmount(engine.ParseAmount(text))
	return nil
}

type QuickBetRequest struct {
	Amount int `json:"amount"`
}

type RoundResponse struct {
	ID      int64  `json:"id"`
	Dice    [3]int `json:"dice"`
	Sum     int    `json:"sum"`
	Outcome string `json:"outcome"`
	Badge   string `json:"badge"`
}

type SessionResponse struct {
	ID           string          `json:"id"`
	Balance      int             `json:"balance"`
	BetAmount    int             `json:"bet_amount"`
	SelectedSide string          `json:"selected_side"`
	IsRolling    bool            `json:"is_rolling"`
	Dice         [3]int          `json:"dice"`
	Sum          int             `json:"sum"`
	History      []RoundResponse `json:"history"`
	Notification string          `json:"notification"`
	LoanEligible bool            `json:"loan_eligible"`
}

type RollResponse struct {
	Side       string          `json:"side"`
	Stake      int             `json:"stake"`
	ResolvesAt time.Time       `json:"resolves_at"`
	Session    SessionResponse `json:"session"`
}

type LoanResponse struct {
	Amount  int             `json:"amount"`
	Session SessionResponse `json:"session"`
}

type ErrorResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

func toDice(d models.Dice) [3]int {
	return [3]int{int(d[0]), int(d[1]), int(d[2])}
}

func toSessionResponse(session *models.Session) SessionResponse {
	history := make([]RoundResponse, 0, len(session.History))
	for _, round := range session.History {
		history = append(history, RoundResponse{
			ID:      round.ID,
			Dice:    toDice(round.Dice),
			Sum:     round.Sum,
			Outcome: string(round.Outcome),
			Badge:   round.Outcome.Badge(),
		})
	}

	return SessionResponse{
		ID:           session.ID,
		Balance:      session.Balance,
		BetAmount:    session.BetAmount,
		SelectedSide: string(session.SelectedSide),
		IsRolling:    session.IsRolling,
		Dice:         toDice(session.Dice),
		Sum:          session.Dice.Sum(),
		History:      history,
		Notification: session.Notification,
		LoanEligible: session.LoanEligible(),
	}
}
