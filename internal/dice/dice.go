package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/taixiu/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/taixiu/internal/dice Roller

// Roller is the source of die rolls
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// RandomRoller provides dice rolling functionality. It is safe for
// concurrent use.
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = newSeed()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = int(models.MaxFace) // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// RollFace rolls one six-sided die
func RollFace(r Roller) models.DieFace {
	return models.DieFace(r.Roll(int(models.MaxFace)))
}

// RollThree rolls the three dice of a round
func RollThree(r Roller) models.Dice {
	return models.Dice{RollFace(r), RollFace(r), RollFace(r)}
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
