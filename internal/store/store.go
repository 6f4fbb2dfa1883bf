// internal/store/store.go

// Package store defines the persistence boundary of the match pipeline. The
// orchestrator and the rating engines only ever see these interfaces; the
// pgx-backed implementation lives in internal/database and an in-memory
// implementation (memory.go) backs the tests.
package store

import (
	"context"

	"github.com/KayKv10/RankForge/internal/models"
)

// Tx is the transaction handle threaded through one match submission. All
// writes made through a Tx share one atomic unit: they become visible to
// subsequent reads on the same Tx immediately, but are durable only if the
// WithinTx callback returns nil. Implementations never commit or roll back
// from inside these methods.
type Tx interface {
	// FindGame returns the game or (nil, nil) when absent.
	FindGame(ctx context.Context, id int64) (*models.Game, error)

	// FindPlayer returns the player or (nil, nil) when absent.
	FindPlayer(ctx context.Context, id int64) (*models.Player, error)

	// FindPlayerByName returns the player or (nil, nil) when absent.
	FindPlayerByName(ctx context.Context, name string) (*models.Player, error)

	// CreatePlayer inserts a player and fills in its ID. A name collision
	// yields an apperr conflict; callers racing on a shared row (the Unknown
	// player) treat that as "someone else created it" and re-fetch.
	CreatePlayer(ctx context.Context, p *models.Player) error

	// FindProfile returns the (player, game) rating profile or (nil, nil).
	FindProfile(ctx context.Context, playerID, gameID int64) (*models.RatingProfile, error)

	// GetOrCreateProfile returns the existing profile or creates one seeded
	// with the default rating state. Calling it repeatedly within one Tx for
	// the same pair never creates duplicates.
	GetOrCreateProfile(ctx context.Context, playerID, gameID int64) (*models.RatingProfile, error)

	// SaveProfile persists the profile's current rating state and stats.
	SaveProfile(ctx context.Context, p *models.RatingProfile) error

	// InsertMatch persists the match skeleton and all of its participants,
	// filling in generated ids.
	InsertMatch(ctx context.Context, m *models.Match) error

	// SaveParticipant persists a participant's audit fields.
	SaveParticipant(ctx context.Context, p *models.Participant) error
}

// Store owns transaction boundaries and the read-after-commit path.
type Store interface {
	// WithinTx runs fn inside one transaction. The transaction commits iff
	// fn returns nil; any error rolls back every write made through the Tx.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error

	// FindMatch loads a committed match with its participants and their
	// players, or (nil, nil) when absent.
	FindMatch(ctx context.Context, id int64) (*models.Match, error)
}
