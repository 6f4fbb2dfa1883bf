// internal/models/outcome.go
package models

// Recognized values for a binary outcome's result field.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"
)

// Outcome is a participant's result in a match. It is a tagged union of two
// shapes, discriminated by which field is present:
//
//   - binary: {"result": "win"|"loss"|"draw"}
//   - ranked: {"rank": n} with 1 = best placement across the match's teams
//
// A match mixes shapes at its own peril: if any participant carries a
// result, the whole match is scored with binary logic (see rating.NormalizeScores).
type Outcome struct {
	Result *string `json:"result,omitempty"`
	Rank   *int    `json:"rank,omitempty"`
}

// HasResult reports whether the outcome carries a binary result field.
func (o Outcome) HasResult() bool { return o.Result != nil }

// HasRank reports whether the outcome carries a placement rank.
func (o Outcome) HasRank() bool { return o.Rank != nil }

// BinaryOutcome builds a win/loss/draw outcome.
func BinaryOutcome(result string) Outcome {
	return Outcome{Result: &result}
}

// RankedOutcome builds a placement outcome. Rank 1 is best.
func RankedOutcome(rank int) Outcome {
	return Outcome{Rank: &rank}
}
