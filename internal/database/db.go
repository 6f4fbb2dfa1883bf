// internal/database/db.go

// Package database is the Postgres persistence layer, built on pgx. It
// implements the store interfaces consumed by the match pipeline and the
// CRUD/leaderboard queries consumed by the HTTP handlers.
//
// Isolation note: match processing runs one pgx transaction per submission
// at the server's default isolation level (read committed). One match's
// writes are atomic; concurrent matches touching the same profile rely on
// that isolation, no cross-match locking is taken.
package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KayKv10/RankForge/internal/apperr"
)

//go:embed schema.sql
var schemaFS embed.FS

// DB wraps the pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool against dsn and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Close releases the pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate applies the embedded schema. Statements are idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	sqlBytes, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Pool.Exec(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// uniqueViolation converts a Postgres duplicate-key error into the
// conflict-class error the API layer distinguishes from validation errors.
func uniqueViolation(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.Conflict(msg)
	}
	return err
}
