// internal/models/match.go
package models

import "time"

// Match is a single played instance of a game. A match and all of its
// participants (and their rating updates) are created atomically or not at
// all; matches are events, so resubmitting the same payload records a second
// match rather than upserting the first.
type Match struct {
	ID           int64          `json:"id"`
	GameID       int64          `json:"game_id"`
	PlayedAt     time.Time      `json:"played_at"`
	Metadata     map[string]any `json:"match_metadata"`
	Participants []*Participant `json:"participants"`
}

// Participant links a player to a match. PlayerID is always resolved (never
// zero) by the time a participant is persisted; anonymous submissions point
// at the shared Unknown player. RatingBefore snapshots the player's profile
// state as it was when the match was accepted, and RatingChange records what
// the rating engine did to it.
type Participant struct {
	ID           int64        `json:"id"`
	MatchID      int64        `json:"match_id"`
	PlayerID     int64        `json:"player_id"`
	TeamID       int          `json:"team_id"`
	Outcome      Outcome      `json:"outcome"`
	RatingBefore *RatingState `json:"rating_info_before,omitempty"`
	RatingChange *RatingDelta `json:"rating_info_change,omitempty"`

	Player *Player `json:"player,omitempty"`
}
