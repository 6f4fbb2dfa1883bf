// internal/rating/glicko2_test.go
package rating

import (
	"math"
	"testing"

	"github.com/KayKv10/RankForge/internal/models"
)

func state(r, rd, vol float64) models.RatingState {
	return models.RatingState{Rating: r, Deviation: rd, Volatility: vol}
}

// The worked example from Glickman's paper: a 1500/200 player beats a
// 1400/30 opponent and loses to 1550/100 and 1700/300 opponents.
func paperExample() (models.RatingState, []OpponentResult) {
	player := state(1500, 200, 0.06)
	results := []OpponentResult{
		{Opponent: state(1400, 30, 0.06), Score: 1},
		{Opponent: state(1550, 100, 0.06), Score: 0},
		{Opponent: state(1700, 300, 0.06), Score: 0},
	}
	return player, results
}

func TestRatePaperExample(t *testing.T) {
	player, results := paperExample()
	got := Rate(player, results)

	if math.Abs(got.Rating-1464.05) > 0.01 {
		t.Errorf("rating = %v, want 1464.05", got.Rating)
	}
	if math.Abs(got.Deviation-151.52) > 0.01 {
		t.Errorf("deviation = %v, want 151.52", got.Deviation)
	}
	if math.Abs(got.Volatility-0.059996) > 0.00001 {
		t.Errorf("volatility = %v, want 0.059996", got.Volatility)
	}
}

func TestRateIsDeterministic(t *testing.T) {
	player, results := paperExample()
	first := Rate(player, results)
	second := Rate(player, results)
	if first != second {
		t.Errorf("same inputs produced different outputs: %v vs %v", first, second)
	}
}

func TestRateNoGamesGrowsDeviation(t *testing.T) {
	player := state(1500, 200, 0.06)
	got := Rate(player, nil)

	if got.Rating != player.Rating {
		t.Errorf("rating changed with no games: %v", got.Rating)
	}
	if got.Volatility != player.Volatility {
		t.Errorf("volatility changed with no games: %v", got.Volatility)
	}
	if got.Deviation <= player.Deviation {
		t.Errorf("deviation should grow from inactivity, got %v (was %v)", got.Deviation, player.Deviation)
	}
}

func TestRateSymmetricWinLoss(t *testing.T) {
	fresh := models.DefaultRatingState()
	winner := Rate(fresh, []OpponentResult{{Opponent: fresh, Score: 1}})
	loser := Rate(fresh, []OpponentResult{{Opponent: fresh, Score: 0}})

	if winner.Rating <= 1500 {
		t.Errorf("winner's rating should exceed 1500, got %v", winner.Rating)
	}
	if loser.Rating >= 1500 {
		t.Errorf("loser's rating should be below 1500, got %v", loser.Rating)
	}

	gain := winner.Rating - 1500
	drop := 1500 - loser.Rating
	if math.Abs(gain-drop) > 1e-9 {
		t.Errorf("symmetric start states should move symmetrically: gain %v, drop %v", gain, drop)
	}
}

func TestRateShrinksDeviationAfterPlay(t *testing.T) {
	fresh := models.DefaultRatingState()
	got := Rate(fresh, []OpponentResult{{Opponent: fresh, Score: 1}})
	if got.Deviation >= fresh.Deviation {
		t.Errorf("deviation should shrink after playing, got %v (was %v)", got.Deviation, fresh.Deviation)
	}
}

func TestRateUpsetGainsMore(t *testing.T) {
	fresh := models.DefaultRatingState()
	vsEqual := Rate(fresh, []OpponentResult{{Opponent: state(1500, 350, 0.06), Score: 1}})
	vsStronger := Rate(fresh, []OpponentResult{{Opponent: state(2000, 350, 0.06), Score: 1}})

	if vsStronger.Rating <= vsEqual.Rating {
		t.Errorf("upset should gain more: vs stronger %v, vs equal %v", vsStronger.Rating, vsEqual.Rating)
	}
}

// Extreme inputs must not wedge or NaN the volatility solver.
func TestRateVolatilitySolverExtremes(t *testing.T) {
	cases := []struct {
		name    string
		player  models.RatingState
		results []OpponentResult
	}{
		{
			name:   "huge upset with tiny deviation",
			player: state(1500, 30, 0.06),
			results: []OpponentResult{
				{Opponent: state(2800, 30, 0.06), Score: 1},
			},
		},
		{
			name:   "extreme deviation",
			player: state(1500, 3000, 0.06),
			results: []OpponentResult{
				{Opponent: state(1500, 350, 0.06), Score: 0},
			},
		},
		{
			name:   "long losing streak",
			player: state(2400, 50, 0.06),
			results: []OpponentResult{
				{Opponent: state(1200, 50, 0.06), Score: 0},
				{Opponent: state(1250, 50, 0.06), Score: 0},
				{Opponent: state(1300, 50, 0.06), Score: 0},
				{Opponent: state(1350, 50, 0.06), Score: 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Rate(tc.player, tc.results)
			for _, v := range []float64{got.Rating, got.Deviation, got.Volatility} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("non-finite output: %+v", got)
				}
			}
			if got.Volatility <= 0 {
				t.Errorf("volatility must stay positive, got %v", got.Volatility)
			}
			if got.Deviation <= 0 {
				t.Errorf("deviation must stay positive, got %v", got.Deviation)
			}
		})
	}
}

func TestRoundForStorage(t *testing.T) {
	in := state(1464.0506705, 151.5165241, 0.0599959842)
	got := RoundForStorage(in)

	if got.Rating != 1464.05 {
		t.Errorf("rating rounded to %v, want 1464.05", got.Rating)
	}
	if got.Deviation != 151.52 {
		t.Errorf("deviation rounded to %v, want 151.52", got.Deviation)
	}
	if got.Volatility != 0.059996 {
		t.Errorf("volatility rounded to %v, want 0.059996", got.Volatility)
	}
}
