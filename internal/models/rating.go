// internal/models/rating.go
package models

// Default Glicko-2 seed values for a player's first profile in a game.
const (
	DefaultRating     = 1500.0
	DefaultDeviation  = 350.0
	DefaultVolatility = 0.06
)

// RatingState is a player's skill estimate for one game: the rating itself,
// the rating deviation (confidence width) and the volatility. It is a value
// type; rating updates derive a new RatingState rather than mutating one.
type RatingState struct {
	Rating     float64 `json:"rating"`
	Deviation  float64 `json:"rd"`
	Volatility float64 `json:"vol"`
}

// DefaultRatingState returns the seed state for an unrated player.
func DefaultRatingState() RatingState {
	return RatingState{
		Rating:     DefaultRating,
		Deviation:  DefaultDeviation,
		Volatility: DefaultVolatility,
	}
}

// RatingDelta records per-field change applied to a participant's rating by
// one match, for the audit trail on the participant row.
type RatingDelta struct {
	RatingChange float64 `json:"rating_change"`
	RDChange     float64 `json:"rd_change"`
	VolChange    float64 `json:"vol_change"`
}

// Sub returns the delta new-minus-old per field.
func (n RatingState) Sub(old RatingState) RatingDelta {
	return RatingDelta{
		RatingChange: n.Rating - old.Rating,
		RDChange:     n.Deviation - old.Deviation,
		VolChange:    n.Volatility - old.Volatility,
	}
}
