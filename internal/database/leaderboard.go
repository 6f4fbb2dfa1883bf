// internal/database/leaderboard.go
package database

import (
	"context"
	"fmt"

	"github.com/KayKv10/RankForge/internal/models"
)

// Leaderboard returns a game's profiles joined with player names, best
// rating first. The shared anonymous player is excluded: its profile is
// bookkeeping, not a real standing.
func (db *DB) Leaderboard(ctx context.Context, gameID int64) ([]models.LeaderboardEntry, error) {
	q := `
	SELECT p.id, p.name, gp.rating_info, gp.stats
	FROM game_profiles gp
	JOIN players p ON p.id = gp.player_id
	WHERE gp.game_id = $1 AND NOT p.is_anonymous
	ORDER BY ((gp.rating_info->>'rating')::numeric) DESC, p.id
	`
	rows, err := db.Pool.Query(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard for game %d: %w", gameID, err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Rating, &e.Stats); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
