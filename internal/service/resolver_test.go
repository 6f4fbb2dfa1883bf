// internal/service/resolver_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
	"github.com/KayKv10/RankForge/internal/store"
)

// racingUnknownTx simulates a concurrent writer grabbing the Unknown name
// between our lookup and our insert: the first lookup misses, the create
// reports a conflict, and the re-fetch sees the other writer's row. The
// embedded interface is nil; any other method call is a test failure.
type racingUnknownTx struct {
	store.Tx
	unknown models.Player
	creates int
	lookups int
}

func (t *racingUnknownTx) FindPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	t.lookups++
	if t.creates == 0 {
		return nil, nil
	}
	cp := t.unknown
	return &cp, nil
}

func (t *racingUnknownTx) CreatePlayer(ctx context.Context, p *models.Player) error {
	t.creates++
	return apperr.Conflict("player name already exists")
}

func TestEnsureUnknownPlayerRecoversFromLostRace(t *testing.T) {
	tx := &racingUnknownTx{
		unknown: models.Player{ID: 7, Name: models.UnknownPlayerName, IsAnonymous: true},
	}

	got, err := ensureUnknownPlayer(context.Background(), tx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, 1, tx.creates)
	assert.Equal(t, 2, tx.lookups)
}

func TestResolveParticipantsSharesOneUnknown(t *testing.T) {
	mem := store.NewMemory()

	err := mem.WithinTx(context.Background(), func(tx store.Tx) error {
		subs := []ParticipantSubmission{
			{TeamID: 1, Outcome: models.BinaryOutcome(models.ResultWin)},
			{PlayerID: idPtr(42), TeamID: 2, Outcome: models.BinaryOutcome(models.ResultLoss)},
			{TeamID: 3, Outcome: models.BinaryOutcome(models.ResultLoss)},
		}
		parts, unknownID, err := resolveParticipants(context.Background(), tx, subs)
		require.NoError(t, err)
		require.Len(t, parts, 3)
		require.NotZero(t, unknownID)
		assert.Equal(t, unknownID, parts[0].PlayerID)
		assert.Equal(t, int64(42), parts[1].PlayerID)
		assert.Equal(t, unknownID, parts[2].PlayerID)

		unknown, err := tx.FindPlayerByName(context.Background(), models.UnknownPlayerName)
		require.NoError(t, err)
		require.NotNil(t, unknown)
		assert.True(t, unknown.IsAnonymous)
		return nil
	})
	require.NoError(t, err)
}
