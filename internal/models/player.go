// internal/models/player.go
package models

import "time"

// UnknownPlayerName is the reserved name of the shared anonymous player.
// Participants submitted without a player id all resolve to this single row,
// which is excluded from leaderboards and exempt from the duplicate-player
// check during match validation.
const UnknownPlayerName = "Unknown"

// Player is a unique person across all games.
type Player struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// Game is a configuration entity for something that can be played. Its
// RatingStrategy selects which rating engine processes its matches.
type Game struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	RatingStrategy string    `json:"rating_strategy"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
