// internal/service/resolver.go
package service

import (
	"context"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
	"github.com/KayKv10/RankForge/internal/store"
)

// resolveParticipants maps submitted participants to concrete participant
// rows. Every participant with an unset player id resolves to the single
// shared Unknown player, created lazily on first use. Resolution runs before
// validation because the Unknown player is exempt from the duplicate-player
// check and may appear several times in one match.
func resolveParticipants(ctx context.Context, tx store.Tx, subs []ParticipantSubmission) ([]*models.Participant, int64, error) {
	var unknownID int64
	parts := make([]*models.Participant, len(subs))
	for i, s := range subs {
		pt := &models.Participant{TeamID: s.TeamID, Outcome: s.Outcome}
		if s.PlayerID != nil {
			pt.PlayerID = *s.PlayerID
		} else {
			if unknownID == 0 {
				unknown, err := ensureUnknownPlayer(ctx, tx)
				if err != nil {
					return nil, 0, err
				}
				unknownID = unknown.ID
			}
			pt.PlayerID = unknownID
		}
		parts[i] = pt
	}
	return parts, unknownID, nil
}

// ensureUnknownPlayer looks up the reserved anonymous player by name and
// creates it if absent. A duplicate-key conflict means another writer just
// created it, so we re-fetch instead of failing.
func ensureUnknownPlayer(ctx context.Context, tx store.Tx) (*models.Player, error) {
	p, err := tx.FindPlayerByName(ctx, models.UnknownPlayerName)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	created := &models.Player{Name: models.UnknownPlayerName, IsAnonymous: true}
	err = tx.CreatePlayer(ctx, created)
	if err == nil {
		return created, nil
	}
	if apperr.KindOf(err) == apperr.KindConflict {
		return tx.FindPlayerByName(ctx, models.UnknownPlayerName)
	}
	return nil, err
}
