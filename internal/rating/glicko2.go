// internal/rating/glicko2.go

// Package rating implements the rating computation pipeline: the pure
// Glicko-2 calculator, the match-outcome score normalizer, and the engine
// plugin layer that applies both inside a match-processing transaction.
package rating

import (
	"math"

	"github.com/KayKv10/RankForge/internal/models"
)

const (
	// GlickoScale converts between the public 1500-based scale and Glicko-2's mu/phi.
	GlickoScale = 173.7178
	// Tau is the system constraint on volatility changes. Typical values
	// are between 0.3 and 1.2; smaller means more stable volatility.
	Tau = 0.5
	// Epsilon is the tolerance used in iteration stopping conditions.
	Epsilon = 0.000001

	// maxVolatilityIterations caps the volatility root-finding loop. The
	// solver converges in well under 20 iterations for sane inputs.
	maxVolatilityIterations = 100
)

// OpponentResult pairs one opponent's pre-match rating state with the
// subject's performance score against them, in [0..1] for ordinary outcomes
// (ranked extrapolation may push it outside that range).
type OpponentResult struct {
	Opponent models.RatingState
	Score    float64
}

// Rate computes a player's updated rating state from a set of results
// against opponents, per Glickman's Glicko-2 paper. It is pure: no I/O, no
// clock, and deterministic for fixed inputs. Opponent states must be the
// pre-match snapshots; feeding partially-updated opponents back in breaks
// the consistency the orchestrator guarantees.
//
// With an empty result set the deviation grows from inactivity
// (phi' = sqrt(phi^2 + sigma^2)) and rating and volatility are unchanged.
func Rate(player models.RatingState, results []OpponentResult) models.RatingState {
	mu := (player.Rating - models.DefaultRating) / GlickoScale
	phi := player.Deviation / GlickoScale
	sigma := player.Volatility

	if len(results) == 0 {
		phiPrime := math.Sqrt(phi*phi + sigma*sigma)
		return models.RatingState{
			Rating:     player.Rating,
			Deviation:  phiPrime * GlickoScale,
			Volatility: sigma,
		}
	}

	// Steps 3-4: estimated variance v and improvement sum.
	var vInv, improvement float64
	for _, res := range results {
		muJ := (res.Opponent.Rating - models.DefaultRating) / GlickoScale
		phiJ := res.Opponent.Deviation / GlickoScale
		gJ := g(phiJ)
		eJ := E(mu, muJ, phiJ)
		vInv += gJ * gJ * eJ * (1 - eJ)
		improvement += gJ * (res.Score - eJ)
	}
	var v float64
	if vInv != 0 {
		v = 1 / vInv
	}
	delta := v * improvement

	// Step 5: new volatility via iterative root finding.
	sigmaPrime := solveVolatility(delta, phi, v, sigma)

	// Steps 6-7: new deviation and rating on the internal scale.
	phiStar := math.Sqrt(phi*phi + sigmaPrime*sigmaPrime)
	phiPrime := 1 / math.Sqrt(1/(phiStar*phiStar)+1/v)
	muPrime := mu + phiPrime*phiPrime*improvement

	// Step 8: back to the public scale.
	return models.RatingState{
		Rating:     muPrime*GlickoScale + models.DefaultRating,
		Deviation:  phiPrime * GlickoScale,
		Volatility: sigmaPrime,
	}
}

// solveVolatility finds sigma' as the root of the paper's f(x) using the
// Illinois variant of regula falsi: the stale bracket end's value is halved
// whenever the new point falls on the same side, which guarantees
// convergence. Bracket selection follows the paper: B = ln(delta^2-phi^2-v)
// when that quantity is positive, otherwise step down from a = ln(sigma^2)
// in units of Tau until f turns non-negative.
func solveVolatility(delta, phi, v, sigma float64) float64 {
	a := math.Log(sigma * sigma)
	deltaSq := delta * delta
	phiSq := phi * phi

	fn := func(x float64) float64 {
		return f(x, phiSq, v, deltaSq, a)
	}

	A := a
	var B float64
	if deltaSq > phiSq+v {
		B = math.Log(deltaSq - phiSq - v)
	} else {
		k := 1.0
		for fn(a-k*Tau) < 0 {
			k++
		}
		B = a - k*Tau
	}

	fA := fn(A)
	fB := fn(B)
	for i := 0; i < maxVolatilityIterations && math.Abs(B-A) > Epsilon; i++ {
		C := A + (A-B)*fA/(fB-fA)
		fC := fn(C)
		if fC*fB < 0 {
			A, fA = B, fB
		} else {
			fA /= 2
		}
		B, fB = C, fC
	}
	return math.Exp(A / 2)
}

// g is the G(phi) factor from Glicko2: 1/sqrt(1+3phi^2/pi^2).
func g(phi float64) float64 {
	return 1.0 / math.Sqrt(1.0+3.0*phi*phi/math.Pi/math.Pi)
}

// E is the expected score in Glicko2 space: 1/(1+exp[-g(phij)*(mu-muj)]).
func E(mu, muJ, phiJ float64) float64 {
	return 1.0 / (1.0 + math.Exp(-g(phiJ)*(mu-muJ)))
}

// f is the volatility root-finding function from the paper.
func f(x, phiSq, v, deltaSq, a float64) float64 {
	ex := math.Exp(x)
	num := ex * (deltaSq - phiSq - v - ex)
	den := 2.0 * (phiSq + v + ex) * (phiSq + v + ex)
	return (num / den) - ((x - a) / (Tau * Tau))
}

// RoundForStorage applies the persistence rounding contract: rating and
// deviation to 2 decimals, volatility to 6. The calculator itself stays
// unrounded; callers round once, right before writing.
func RoundForStorage(r models.RatingState) models.RatingState {
	return models.RatingState{
		Rating:     roundTo(r.Rating, 2),
		Deviation:  roundTo(r.Deviation, 2),
		Volatility: roundTo(r.Volatility, 6),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
