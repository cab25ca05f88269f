package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/taixiu/internal/common/uuid UUID

// UUID generates session identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random (v4) uuids
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Valid reports whether id parses as a uuid. Handlers use it to reject
// garbage before touching the store.
func Valid(id string) bool {
	return uuid.Validate(id) == nil
}
