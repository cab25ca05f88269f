package discord

import (
	"sync"
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/bwmarrin/discordgo"
)

// interactionTTL is how long Discord accepts edits through an interaction
// token
const interactionTTL = 15 * time.Minute

// tables remembers which interaction shows each session, so the table can be
// redrawn when the dice land. Interaction tokens do not survive a restart and
// neither does this map.
type tables struct {
	mu           sync.Mutex
	clock        clock.Clock
	interactions map[string]trackedInteraction
}

type trackedInteraction struct {
	interaction *discordgo.Interaction
	trackedAt   time.Time
}

func newTables(clk clock.Clock) *tables {
	return &tables{
		clock:        clk,
		interactions: make(map[string]trackedInteraction),
	}
}

// Track records the newest interaction showing a session and drops the ones
// whose tokens have expired
func (t *tables) Track(sessionID string, interaction *discordgo.Interaction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	for id, tracked := range t.interactions {
		if now.Sub(tracked.trackedAt) >= interactionTTL {
			delete(t.interactions, id)
		}
	}

	t.interactions[sessionID] = trackedInteraction{
		interaction: interaction,
		trackedAt:   now,
	}
}

// Interaction returns the interaction showing a session while its token is
// still usable
func (t *tables) Interaction(sessionID string) (*discordgo.Interaction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracked, ok := t.interactions[sessionID]
	if !ok {
		return nil, false
	}
	if t.clock.Now().Sub(tracked.trackedAt) >= interactionTTL {
		delete(t.interactions, sessionID)
		return nil, false
	}
	return tracked.interaction, true
}

// Forget drops a closed session or one whose message can no longer be edited
func (t *tables) Forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.interactions, sessionID)
}

func (t *tables) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.interactions)
}
