// internal/rating/engine.go
package rating

import (
	"context"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
	"github.com/KayKv10/RankForge/internal/store"
)

// StrategyGlicko2 is the rating_strategy value that selects the Glicko-2 engine.
const StrategyGlicko2 = "glicko2"

// Stat counter keys maintained in the profile stats bag.
const (
	StatMatchesPlayed = "matches_played"
	StatWins          = "wins"
	StatLosses        = "losses"
	StatDraws         = "draws"
)

// Engine applies rating updates for one processed match. Implementations
// operate entirely inside the caller's open transaction: they read and write
// through tx and never commit or roll back themselves.
type Engine interface {
	UpdateRatingsForMatch(ctx context.Context, tx store.Tx, match *models.Match) error
}

// ForStrategy selects the engine for a game's configured rating strategy.
// Unrecognized strategies fall back to a counter-only engine so that a
// game with no rating math still accumulates usage stats.
func ForStrategy(strategy string) Engine {
	switch strategy {
	case StrategyGlicko2:
		return glicko2Engine{}
	default:
		return counterEngine{}
	}
}

type glicko2Engine struct{}

// UpdateRatingsForMatch runs the full Glicko-2 update for every participant.
// All profiles are fetched up front so each player's new state is computed
// against every opponent's pre-match snapshot, never a partially-updated
// one; writes happen only after all new states are known.
func (glicko2Engine) UpdateRatingsForMatch(ctx context.Context, tx store.Tx, match *models.Match) error {
	profiles := map[int64]*models.RatingProfile{}
	before := map[int64]models.RatingState{}
	for _, p := range match.Participants {
		if _, ok := profiles[p.PlayerID]; ok {
			continue
		}
		prof, err := tx.FindProfile(ctx, p.PlayerID, match.GameID)
		if err != nil {
			return err
		}
		if prof == nil {
			return apperr.ProfileNotFound(p.PlayerID, match.GameID)
		}
		profiles[p.PlayerID] = prof
		before[p.PlayerID] = prof.Rating
	}

	scores, err := NormalizeScores(match.Participants)
	if err != nil {
		return err
	}

	// The score against every opponent is the same: it reflects the
	// player's overall performance in the match.
	updated := make([]models.RatingState, len(match.Participants))
	for i, p := range match.Participants {
		var results []OpponentResult
		for _, opp := range match.Participants {
			if opp.TeamID == p.TeamID {
				continue
			}
			results = append(results, OpponentResult{Opponent: before[opp.PlayerID], Score: scores[i]})
		}
		updated[i] = RoundForStorage(Rate(before[p.PlayerID], results))
	}

	for i, p := range match.Participants {
		prof := profiles[p.PlayerID]
		pre := before[p.PlayerID]
		prof.Rating = updated[i]
		bumpOutcomeStats(prof, p.Outcome)
		if err := tx.SaveProfile(ctx, prof); err != nil {
			return err
		}
		delta := updated[i].Sub(pre)
		p.RatingChange = &delta
		if err := tx.SaveParticipant(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func bumpOutcomeStats(prof *models.RatingProfile, outcome models.Outcome) {
	prof.BumpStat(StatMatchesPlayed)
	if !outcome.HasResult() {
		return
	}
	switch *outcome.Result {
	case models.ResultWin:
		prof.BumpStat(StatWins)
	case models.ResultLoss:
		prof.BumpStat(StatLosses)
	case models.ResultDraw:
		prof.BumpStat(StatDraws)
	}
}

// counterEngine is the no-op-class engine for games whose strategy has no
// rating math configured. It still maintains the usage counter so profiles
// reflect activity.
type counterEngine struct{}

func (counterEngine) UpdateRatingsForMatch(ctx context.Context, tx store.Tx, match *models.Match) error {
	for _, p := range match.Participants {
		prof, err := tx.GetOrCreateProfile(ctx, p.PlayerID, match.GameID)
		if err != nil {
			return err
		}
		prof.BumpStat(StatMatchesPlayed)
		if err := tx.SaveProfile(ctx, prof); err != nil {
			return err
		}
	}
	return nil
}
