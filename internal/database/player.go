// internal/database/player.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

func (db *DB) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	p := &models.Player{Name: name}
	q := `INSERT INTO players (name) VALUES ($1) RETURNING id, is_anonymous, created_at`
	err := db.Pool.QueryRow(ctx, q, name).Scan(&p.ID, &p.IsAnonymous, &p.CreatedAt)
	if err != nil {
		return nil, uniqueViolation(err, fmt.Sprintf("player name %q already exists", name))
	}
	return p, nil
}

func (db *DB) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	q := `SELECT id, name, is_anonymous, created_at FROM players WHERE id = $1`
	var p models.Player
	err := db.Pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.IsAnonymous, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.PlayerNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting player %d: %w", id, err)
	}
	return &p, nil
}

func (db *DB) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	q := `SELECT id, name, is_anonymous, created_at FROM players ORDER BY id`
	rows, err := db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.IsAnonymous, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}
	return players, rows.Err()
}

func (db *DB) RenamePlayer(ctx context.Context, id int64, name string) (*models.Player, error) {
	q := `UPDATE players SET name = $1 WHERE id = $2 RETURNING id, name, is_anonymous, created_at`
	var p models.Player
	err := db.Pool.QueryRow(ctx, q, name, id).Scan(&p.ID, &p.Name, &p.IsAnonymous, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.PlayerNotFound(id)
	}
	if err != nil {
		return nil, uniqueViolation(err, fmt.Sprintf("player name %q already exists", name))
	}
	return &p, nil
}

// DeletePlayer removes a player; profiles cascade, match participations do
// not (matches are history and keep their rows).
func (db *DB) DeletePlayer(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting player %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.PlayerNotFound(id)
	}
	return nil
}
