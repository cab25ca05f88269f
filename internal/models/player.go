package models

import "time"

// Player is a chat user seated at a table
type Player struct {
	ID        string
	Name      string
	SessionID string
	UpdatedAt time.Time
}
