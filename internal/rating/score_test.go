// internal/rating/score_test.go
package rating

import (
	"math"
	"testing"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

func binaryPart(playerID int64, team int, result string) *models.Participant {
	return &models.Participant{PlayerID: playerID, TeamID: team, Outcome: models.BinaryOutcome(result)}
}

func rankedPart(playerID int64, team, rank int) *models.Participant {
	return &models.Participant{PlayerID: playerID, TeamID: team, Outcome: models.RankedOutcome(rank)}
}

func TestNormalizeBinaryWinLoss(t *testing.T) {
	scores, err := NormalizeScores([]*models.Participant{
		binaryPart(1, 1, models.ResultWin),
		binaryPart(2, 2, models.ResultLoss),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores[0] != 1.0 || scores[1] != 0.0 {
		t.Errorf("scores = %v, want [1 0]", scores)
	}
}

func TestNormalizeBinaryDraw(t *testing.T) {
	scores, err := NormalizeScores([]*models.Participant{
		binaryPart(1, 1, models.ResultDraw),
		binaryPart(2, 2, models.ResultDraw),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range scores {
		if s != 0.5 {
			t.Errorf("scores[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestNormalizeBinaryRejectsUnknownResult(t *testing.T) {
	_, err := NormalizeScores([]*models.Participant{
		binaryPart(1, 1, "victory"),
		binaryPart(2, 2, models.ResultLoss),
	})
	if apperr.KindOf(err) != apperr.KindRatingEngine {
		t.Fatalf("expected rating engine error, got %v", err)
	}
}

// A single result field anywhere forces binary interpretation for the whole
// match; rank-bearing siblings without a result score as draws. This mirrors
// long-standing behavior and is load-bearing for callers that mix shapes.
func TestNormalizeMixedShapesBinaryWins(t *testing.T) {
	scores, err := NormalizeScores([]*models.Participant{
		binaryPart(1, 1, models.ResultWin),
		rankedPart(2, 2, 1),
		rankedPart(3, 3, 2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1.0, 0.5, 0.5}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], want[i])
		}
	}
}

func TestNormalizeRankedFourTeams(t *testing.T) {
	scores, err := NormalizeScores([]*models.Participant{
		rankedPart(1, 1, 1),
		rankedPart(2, 2, 2),
		rankedPart(3, 3, 3),
		rankedPart(4, 4, 4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1.0, 2.0 / 3.0, 1.0 / 3.0, 0.0}
	for i := range want {
		if math.Abs(scores[i]-want[i]) > 1e-9 {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], want[i])
		}
	}
}

// Eight players on four teams normalize by team rank: teammates always get
// identical scores and the spread is across 4 competitors, not 8.
func TestNormalizeRankedTeamsShareScores(t *testing.T) {
	var parts []*models.Participant
	id := int64(1)
	for team := 1; team <= 4; team++ {
		parts = append(parts, rankedPart(id, team, team), rankedPart(id+1, team, team))
		id += 2
	}
	scores, err := NormalizeScores(parts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < len(parts); i += 2 {
		if scores[i] != scores[i+1] {
			t.Errorf("teammates diverged: scores[%d]=%v scores[%d]=%v", i, scores[i], i+1, scores[i+1])
		}
	}
	if scores[0] != 1.0 {
		t.Errorf("rank-1 team score = %v, want 1.0", scores[0])
	}
	if scores[len(scores)-1] != 0.0 {
		t.Errorf("worst team score = %v, want 0.0", scores[len(scores)-1])
	}
}

// Ranks outside [1, team_count] extrapolate linearly instead of clamping.
func TestNormalizeRankedExtrapolatesOutOfRange(t *testing.T) {
	scores, err := NormalizeScores([]*models.Participant{
		rankedPart(1, 1, 1),
		rankedPart(2, 2, 2),
		rankedPart(3, 3, 10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(scores[2]-(-3.5)) > 1e-9 {
		t.Errorf("rank 10 of 3 teams = %v, want -3.5", scores[2])
	}
}

func TestNormalizeRankedMissingRankFails(t *testing.T) {
	_, err := NormalizeScores([]*models.Participant{
		rankedPart(1, 1, 1),
		{PlayerID: 2, TeamID: 2},
	})
	if apperr.KindOf(err) != apperr.KindRatingEngine {
		t.Fatalf("expected rating engine error, got %v", err)
	}
}

func TestNormalizeSingleTeamIsNonCompetitive(t *testing.T) {
	_, err := NormalizeScores([]*models.Participant{
		binaryPart(1, 1, models.ResultWin),
		binaryPart(2, 1, models.ResultWin),
	})
	if apperr.KindOf(err) != apperr.KindRatingEngine {
		t.Fatalf("expected non-competitive error, got %v", err)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	parts := []*models.Participant{
		rankedPart(1, 1, 2),
		rankedPart(2, 2, 1),
		rankedPart(3, 3, 3),
	}
	first, err := NormalizeScores(parts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := NormalizeScores(parts)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("scores[%d] differed across runs: %v vs %v", i, first[i], second[i])
		}
	}
}
