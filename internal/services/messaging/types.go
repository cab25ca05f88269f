package messaging

import "github.com/KirkDiggler/taixiu/internal/models"

// Pools maps a category to the lines it is drawn from
type Pools map[models.MessageCategory][]string

// Config contains configuration for the messaging service
type Config struct {
	// Pools replaces the default table for every category it names
	Pools Pools

	// Seed makes selection repeatable (optional)
	Seed int64
}

// GetMessageInput contains parameters for getting a message
type GetMessageInput struct {
	Category models.MessageCategory
}

// GetMessageOutput contains the chosen message
type GetMessageOutput struct {
	Category models.MessageCategory
	Message  string
}

// MessagingError is the error type for the messaging service
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilInput        MessagingError = "input cannot be nil"
	ErrUnknownCategory MessagingError = "no messages for category"
	ErrEmptyPool       MessagingError = "message pool cannot be empty"
)
