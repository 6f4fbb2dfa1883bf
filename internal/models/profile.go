// internal/models/profile.go
package models

// RatingProfile holds one player's rating state and stat counters for one
// game. At most one profile exists per (player, game) pair; it is created
// lazily when the player first appears in a match for that game.
type RatingProfile struct {
	ID       int64          `json:"id"`
	PlayerID int64          `json:"player_id"`
	GameID   int64          `json:"game_id"`
	Rating   RatingState    `json:"rating_info"`
	Stats    map[string]int `json:"stats"`
}

// BumpStat increments a counter in the profile's stats bag.
func (p *RatingProfile) BumpStat(key string) {
	if p.Stats == nil {
		p.Stats = map[string]int{}
	}
	p.Stats[key]++
}

// LeaderboardEntry is one row of a game's leaderboard read path.
type LeaderboardEntry struct {
	PlayerID   int64          `json:"player_id"`
	PlayerName string         `json:"player_name"`
	Rating     RatingState    `json:"rating_info"`
	Stats      map[string]int `json:"stats"`
}
