package messaging

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/taixiu/internal/models"
)

// service implements the Service interface
type service struct {
	pools Pools

	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	pools := DefaultPools()
	seed := time.Now().UnixNano()

	if cfg != nil {
		for category, lines := range cfg.Pools {
			if len(lines) == 0 {
				return nil, ErrEmptyPool
			}
			pools[category] = append([]string(nil), lines...)
		}
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
	}

	return &service{
		pools: pools,
		rand:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Pick returns a random line for category, or an empty string when the
// category has no table
func (s *service) Pick(category models.MessageCategory) string {
	lines := s.pools[category]
	if len(lines) == 0 {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return lines[s.rand.Intn(len(lines))]
}

// GetMessage returns a random line for the requested category
func (s *service) GetMessage(ctx context.Context, input *GetMessageInput) (*GetMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(s.pools[input.Category]) == 0 {
		return nil, ErrUnknownCategory
	}

	return &GetMessageOutput{
		Category: input.Category,
		Message:  s.Pick(input.Category),
	}, nil
}
