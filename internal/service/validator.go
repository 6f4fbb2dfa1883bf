// internal/service/validator.go
package service

import (
	"context"
	"sort"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
	"github.com/KayKv10/RankForge/internal/store"
)

// validateParticipants enforces structural match invariants on the resolved
// participant list, before any match data is written. Check order is part of
// the contract (each short-circuits, so error precedence is deterministic):
//
//  1. every team id is non-negative
//  2. at least 2 participants
//  3. no duplicate players, the shared Unknown player excepted
//  4. at least 2 distinct teams
//  5. every referenced player exists (smallest missing id reported)
func validateParticipants(ctx context.Context, tx store.Tx, parts []*models.Participant, unknownID int64) error {
	for _, p := range parts {
		if p.TeamID < 0 {
			return apperr.InvalidTeamID(p.TeamID)
		}
	}

	if len(parts) < 2 {
		return apperr.InsufficientParticipants(len(parts))
	}

	seen := map[int64]int{}
	for _, p := range parts {
		seen[p.PlayerID]++
	}
	var dups []int64
	for id, n := range seen {
		if n <= 1 || id == unknownID {
			continue
		}
		// Exemption is by identity, not by how the id arrived: a client
		// may submit the Unknown player's id explicitly.
		player, err := tx.FindPlayer(ctx, id)
		if err != nil {
			return err
		}
		if player != nil && player.Name == models.UnknownPlayerName {
			continue
		}
		dups = append(dups, id)
	}
	if len(dups) > 0 {
		sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
		return apperr.DuplicatePlayers(dups)
	}

	teams := map[int]struct{}{}
	for _, p := range parts {
		teams[p.TeamID] = struct{}{}
	}
	if len(teams) < 2 {
		return apperr.InsufficientTeams(len(teams))
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		player, err := tx.FindPlayer(ctx, id)
		if err != nil {
			return err
		}
		if player == nil {
			return apperr.PlayerNotFound(id)
		}
	}
	return nil
}
