// internal/database/store.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
	"github.com/KayKv10/RankForge/internal/store"
)

// WithinTx implements store.Store: one pgx transaction per callback,
// committed iff the callback returns nil.
func (db *DB) WithinTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return pgx.BeginTxFunc(ctx, db.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(&pgStoreTx{tx: tx})
	})
}

// pgStoreTx adapts a pgx.Tx to the store.Tx interface. Writes flush into the
// transaction immediately and are visible to subsequent reads on the same
// handle, but durable only on commit.
type pgStoreTx struct {
	tx pgx.Tx
}

func (t *pgStoreTx) FindGame(ctx context.Context, id int64) (*models.Game, error) {
	q := `SELECT id, name, rating_strategy, description, created_at FROM games WHERE id = $1`
	var g models.Game
	err := t.tx.QueryRow(ctx, q, id).Scan(&g.ID, &g.Name, &g.RatingStrategy, &g.Description, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding game %d: %w", id, err)
	}
	return &g, nil
}

func (t *pgStoreTx) FindPlayer(ctx context.Context, id int64) (*models.Player, error) {
	q := `SELECT id, name, is_anonymous, created_at FROM players WHERE id = $1`
	var p models.Player
	err := t.tx.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.IsAnonymous, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding player %d: %w", id, err)
	}
	return &p, nil
}

func (t *pgStoreTx) FindPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	q := `SELECT id, name, is_anonymous, created_at FROM players WHERE name = $1`
	var p models.Player
	err := t.tx.QueryRow(ctx, q, name).Scan(&p.ID, &p.Name, &p.IsAnonymous, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding player %q: %w", name, err)
	}
	return &p, nil
}

func (t *pgStoreTx) CreatePlayer(ctx context.Context, p *models.Player) error {
	// ON CONFLICT DO NOTHING instead of letting 23505 surface: a raised
	// unique violation would abort the enclosing transaction and poison
	// every later statement on this handle, so callers could not recover
	// by re-fetching. No row back means the name is taken.
	q := `INSERT INTO players (name, is_anonymous) VALUES ($1, $2)
	      ON CONFLICT (name) DO NOTHING
	      RETURNING id, created_at`
	err := t.tx.QueryRow(ctx, q, p.Name, p.IsAnonymous).Scan(&p.ID, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.Conflict(fmt.Sprintf("player name %q already exists", p.Name))
	}
	if err != nil {
		return fmt.Errorf("creating player %q: %w", p.Name, err)
	}
	return nil
}

func (t *pgStoreTx) FindProfile(ctx context.Context, playerID, gameID int64) (*models.RatingProfile, error) {
	q := `SELECT id, player_id, game_id, rating_info, stats
	      FROM game_profiles WHERE player_id = $1 AND game_id = $2`
	var p models.RatingProfile
	err := t.tx.QueryRow(ctx, q, playerID, gameID).Scan(&p.ID, &p.PlayerID, &p.GameID, &p.Rating, &p.Stats)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding profile (player %d, game %d): %w", playerID, gameID, err)
	}
	return &p, nil
}

func (t *pgStoreTx) GetOrCreateProfile(ctx context.Context, playerID, gameID int64) (*models.RatingProfile, error) {
	// ON CONFLICT DO NOTHING keeps repeated calls within one transaction
	// (and races across transactions) from duplicating the pair.
	q := `INSERT INTO game_profiles (player_id, game_id, rating_info, stats)
	      VALUES ($1, $2, $3, $4)
	      ON CONFLICT (player_id, game_id) DO NOTHING`
	if _, err := t.tx.Exec(ctx, q, playerID, gameID, models.DefaultRatingState(), map[string]int{}); err != nil {
		return nil, fmt.Errorf("creating profile (player %d, game %d): %w", playerID, gameID, err)
	}
	return t.FindProfile(ctx, playerID, gameID)
}

func (t *pgStoreTx) SaveProfile(ctx context.Context, p *models.RatingProfile) error {
	q := `UPDATE game_profiles SET rating_info = $1, stats = $2 WHERE id = $3`
	if _, err := t.tx.Exec(ctx, q, p.Rating, p.Stats, p.ID); err != nil {
		return fmt.Errorf("saving profile %d: %w", p.ID, err)
	}
	return nil
}

func (t *pgStoreTx) InsertMatch(ctx context.Context, m *models.Match) error {
	var playedAt any
	if !m.PlayedAt.IsZero() {
		playedAt = m.PlayedAt
	}
	q := `INSERT INTO matches (game_id, played_at, match_metadata)
	      VALUES ($1, COALESCE($2, now()), $3)
	      RETURNING id, played_at`
	if err := t.tx.QueryRow(ctx, q, m.GameID, playedAt, m.Metadata).Scan(&m.ID, &m.PlayedAt); err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}

	pq := `INSERT INTO match_participants (match_id, player_id, team_id, outcome, rating_info_before, rating_info_change)
	       VALUES ($1, $2, $3, $4, $5, $6)
	       RETURNING id`
	for _, pt := range m.Participants {
		pt.MatchID = m.ID
		err := t.tx.QueryRow(ctx, pq, m.ID, pt.PlayerID, pt.TeamID, pt.Outcome, pt.RatingBefore, pt.RatingChange).Scan(&pt.ID)
		if err != nil {
			return fmt.Errorf("inserting participant (player %d): %w", pt.PlayerID, err)
		}
	}
	return nil
}

func (t *pgStoreTx) SaveParticipant(ctx context.Context, p *models.Participant) error {
	q := `UPDATE match_participants SET rating_info_before = $1, rating_info_change = $2 WHERE id = $3`
	if _, err := t.tx.Exec(ctx, q, p.RatingBefore, p.RatingChange, p.ID); err != nil {
		return fmt.Errorf("saving participant %d: %w", p.ID, err)
	}
	return nil
}
