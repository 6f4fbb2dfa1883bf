// internal/database/match.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

// FindMatch implements store.Store: it loads a committed match with its
// participants and their player rows, or (nil, nil) when absent.
func (db *DB) FindMatch(ctx context.Context, id int64) (*models.Match, error) {
	q := `SELECT id, game_id, played_at, match_metadata FROM matches WHERE id = $1`
	var m models.Match
	err := db.Pool.QueryRow(ctx, q, id).Scan(&m.ID, &m.GameID, &m.PlayedAt, &m.Metadata)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding match %d: %w", id, err)
	}

	parts, err := db.matchParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Participants = parts
	return &m, nil
}

// GetMatch is FindMatch with not-found promoted to an error, for handlers.
func (db *DB) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	m, err := db.FindMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.MatchNotFound(id)
	}
	return m, nil
}

func (db *DB) ListMatches(ctx context.Context) ([]*models.Match, error) {
	q := `SELECT id, game_id, played_at, match_metadata FROM matches ORDER BY id`
	rows, err := db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.GameID, &m.PlayedAt, &m.Metadata); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, m := range matches {
		parts, err := db.matchParticipants(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		m.Participants = parts
	}
	return matches, nil
}

func (db *DB) DeleteMatch(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting match %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.MatchNotFound(id)
	}
	return nil
}

func (db *DB) matchParticipants(ctx context.Context, matchID int64) ([]*models.Participant, error) {
	q := `
	SELECT mp.id, mp.match_id, mp.player_id, mp.team_id, mp.outcome,
	       mp.rating_info_before, mp.rating_info_change,
	       p.id, p.name, p.is_anonymous, p.created_at
	FROM match_participants mp
	JOIN players p ON p.id = mp.player_id
	WHERE mp.match_id = $1
	ORDER BY mp.id
	`
	rows, err := db.Pool.Query(ctx, q, matchID)
	if err != nil {
		return nil, fmt.Errorf("loading participants for match %d: %w", matchID, err)
	}
	defer rows.Close()

	var parts []*models.Participant
	for rows.Next() {
		var pt models.Participant
		var pl models.Player
		err := rows.Scan(
			&pt.ID, &pt.MatchID, &pt.PlayerID, &pt.TeamID, &pt.Outcome,
			&pt.RatingBefore, &pt.RatingChange,
			&pl.ID, &pl.Name, &pl.IsAnonymous, &pl.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		pt.Player = &pl
		parts = append(parts, &pt)
	}
	return parts, rows.Err()
}
