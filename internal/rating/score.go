// internal/rating/score.go
package rating

import (
	"fmt"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

// NormalizeScores converts a match's heterogeneous per-participant outcomes
// into one scalar performance score per participant. The returned slice is
// parallel to participants (keyed by position, not player id, because the
// shared Unknown player may legitimately appear more than once).
//
// Interpretation is match-wide: if any participant carries a binary result,
// the whole match is scored on the binary path; only a match with no result
// fields at all is scored by team rank. Pure, deterministic, no I/O.
func NormalizeScores(participants []*models.Participant) ([]float64, error) {
	teams := map[int]struct{}{}
	for _, p := range participants {
		teams[p.TeamID] = struct{}{}
	}
	if len(teams) < 2 {
		return nil, apperr.NonCompetitiveMatch(len(teams))
	}

	binary := false
	for _, p := range participants {
		if p.Outcome.HasResult() {
			binary = true
			break
		}
	}

	scores := make([]float64, len(participants))
	if binary {
		for i, p := range participants {
			if !p.Outcome.HasResult() {
				// Mixed-shape match: a result anywhere forces binary scoring
				// for everyone; result-less participants count as draws.
				scores[i] = 0.5
				continue
			}
			switch *p.Outcome.Result {
			case models.ResultWin:
				scores[i] = 1.0
			case models.ResultLoss:
				scores[i] = 0.0
			case models.ResultDraw:
				scores[i] = 0.5
			default:
				return nil, apperr.RatingCalculation(
					fmt.Sprintf("unrecognized result %q", *p.Outcome.Result), p.PlayerID)
			}
		}
		return scores, nil
	}

	// Ranked path: score by the participant's team rank. Teammates share a
	// rank, so an 8-player 4-team match normalizes across 4 competitors.
	teamRanks := map[int]int{}
	for _, p := range participants {
		if p.Outcome.HasRank() {
			teamRanks[p.TeamID] = *p.Outcome.Rank
		}
	}
	opponentCount := float64(len(teams) - 1)
	for i, p := range participants {
		rank, ok := teamRanks[p.TeamID]
		if !ok {
			return nil, apperr.RatingCalculation("missing rank in ranked match", p.PlayerID)
		}
		// Affine map sending rank 1 to 1.0 and the worst of team_count
		// sequential ranks to 0.0. Ranks outside [1, team_count] extrapolate
		// linearly past those bounds; they are not clamped.
		scores[i] = (opponentCount - float64(rank-1)) / opponentCount
	}
	return scores, nil
}
