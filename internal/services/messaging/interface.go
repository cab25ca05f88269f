package messaging

import (
	"context"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// Service hands out flavor text
type Service interface {
	// Pick returns a random line from the table for category
	Pick(category models.MessageCategory) string

	// GetMessage returns a random line and fails on unknown categories
	GetMessage(ctx context.Context, input *GetMessageInput) (*GetMessageOutput, error)
}
