// internal/store/memory_test.go
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

func TestMemoryTxRollsBackOnError(t *testing.T) {
	mem := NewMemory()
	boom := errors.New("boom")

	err := mem.WithinTx(context.Background(), func(tx Tx) error {
		if err := tx.CreatePlayer(context.Background(), &models.Player{Name: "alice"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = mem.WithinTx(context.Background(), func(tx Tx) error {
		p, err := tx.FindPlayerByName(context.Background(), "alice")
		require.NoError(t, err)
		assert.Nil(t, p)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryTxCommitsOnSuccess(t *testing.T) {
	mem := NewMemory()

	var created models.Player
	err := mem.WithinTx(context.Background(), func(tx Tx) error {
		p := &models.Player{Name: "bob"}
		if err := tx.CreatePlayer(context.Background(), p); err != nil {
			return err
		}
		created = *p
		return nil
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	err = mem.WithinTx(context.Background(), func(tx Tx) error {
		p, err := tx.FindPlayer(context.Background(), created.ID)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "bob", p.Name)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryCreatePlayerDuplicateName(t *testing.T) {
	mem := NewMemory()
	mem.SeedPlayer("carol")

	err := mem.WithinTx(context.Background(), func(tx Tx) error {
		return tx.CreatePlayer(context.Background(), &models.Player{Name: "carol"})
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestMemoryGetOrCreateProfile(t *testing.T) {
	mem := NewMemory()
	player := mem.SeedPlayer("dina")
	game := mem.SeedGame("chess", "glicko2")

	err := mem.WithinTx(context.Background(), func(tx Tx) error {
		first, err := tx.GetOrCreateProfile(context.Background(), player.ID, game.ID)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultRatingState(), first.Rating)

		second, err := tx.GetOrCreateProfile(context.Background(), player.ID, game.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		return nil
	})
	require.NoError(t, err)

	_, _, profiles := mem.Counts()
	assert.Equal(t, 1, profiles)
}

// Rows handed out by the tx are copies: mutating them without SaveProfile
// must not leak into committed state.
func TestMemoryTxIsolatesReads(t *testing.T) {
	mem := NewMemory()
	player := mem.SeedPlayer("ed")
	game := mem.SeedGame("go", "glicko2")

	err := mem.WithinTx(context.Background(), func(tx Tx) error {
		prof, err := tx.GetOrCreateProfile(context.Background(), player.ID, game.ID)
		require.NoError(t, err)
		prof.Rating.Rating = 9999
		return nil
	})
	require.NoError(t, err)

	prof := mem.Profile(player.ID, game.ID)
	require.NotNil(t, prof)
	assert.Equal(t, 1500.0, prof.Rating.Rating)
}

func TestMemoryFindMatchOrdersParticipants(t *testing.T) {
	mem := NewMemory()
	game := mem.SeedGame("chess", "glicko2")
	a := mem.SeedPlayer("a")
	b := mem.SeedPlayer("b")

	var matchID int64
	err := mem.WithinTx(context.Background(), func(tx Tx) error {
		m := &models.Match{
			GameID:   game.ID,
			Metadata: map[string]any{},
			Participants: []*models.Participant{
				{PlayerID: a.ID, TeamID: 1, Outcome: models.BinaryOutcome(models.ResultWin)},
				{PlayerID: b.ID, TeamID: 2, Outcome: models.BinaryOutcome(models.ResultLoss)},
			},
		}
		if err := tx.InsertMatch(context.Background(), m); err != nil {
			return err
		}
		matchID = m.ID
		return nil
	})
	require.NoError(t, err)

	got, err := mem.FindMatch(context.Background(), matchID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Participants, 2)
	assert.Equal(t, a.ID, got.Participants[0].PlayerID)
	assert.Equal(t, b.ID, got.Participants[1].PlayerID)
	require.NotNil(t, got.Participants[0].Player)
	assert.Equal(t, "a", got.Participants[0].Player.Name)
	assert.False(t, got.PlayedAt.IsZero())

	missing, err := mem.FindMatch(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
