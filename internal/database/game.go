// internal/database/game.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

func (db *DB) CreateGame(ctx context.Context, name, strategy string, description *string) (*models.Game, error) {
	g := &models.Game{Name: name, RatingStrategy: strategy, Description: description}
	q := `INSERT INTO games (name, rating_strategy, description) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := db.Pool.QueryRow(ctx, q, name, strategy, description).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, uniqueViolation(err, fmt.Sprintf("game name %q already exists", name))
	}
	return g, nil
}

func (db *DB) GetGame(ctx context.Context, id int64) (*models.Game, error) {
	q := `SELECT id, name, rating_strategy, description, created_at FROM games WHERE id = $1`
	var g models.Game
	err := db.Pool.QueryRow(ctx, q, id).Scan(&g.ID, &g.Name, &g.RatingStrategy, &g.Description, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.GameNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting game %d: %w", id, err)
	}
	return &g, nil
}

func (db *DB) ListGames(ctx context.Context) ([]*models.Game, error) {
	q := `SELECT id, name, rating_strategy, description, created_at FROM games ORDER BY id`
	rows, err := db.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.RatingStrategy, &g.Description, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, &g)
	}
	return games, rows.Err()
}

func (db *DB) UpdateGame(ctx context.Context, g *models.Game) (*models.Game, error) {
	q := `UPDATE games SET name = $1, rating_strategy = $2, description = $3
	      WHERE id = $4
	      RETURNING id, name, rating_strategy, description, created_at`
	var out models.Game
	err := db.Pool.QueryRow(ctx, q, g.Name, g.RatingStrategy, g.Description, g.ID).
		Scan(&out.ID, &out.Name, &out.RatingStrategy, &out.Description, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.GameNotFound(g.ID)
	}
	if err != nil {
		return nil, uniqueViolation(err, fmt.Sprintf("game name %q already exists", g.Name))
	}
	return &out, nil
}

func (db *DB) DeleteGame(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting game %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.GameNotFound(id)
	}
	return nil
}
