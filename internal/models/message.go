package models

// MessageCategory selects the table a feedback line is drawn from
type MessageCategory string

const (
	MessageGreeting          MessageCategory = "greeting"
	MessageRolling           MessageCategory = "rolling"
	MessageWin               MessageCategory = "win"
	MessageLose              MessageCategory = "lose"
	MessageTriple            MessageCategory = "triple"
	MessagePoor              MessageCategory = "poor"
	MessageInsufficientFunds MessageCategory = "insufficient_funds"
	MessageNoSideSelected    MessageCategory = "no_side_selected"
	MessageQuickBetRejected  MessageCategory = "quick_bet_rejected"
)

// MessageLoanOffer is shown by presentation layers when offering a loan
const MessageLoanOffer MessageCategory = "loan_offer"
