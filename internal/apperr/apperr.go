// internal/apperr/apperr.go

// Package apperr defines the structured error taxonomy shared by the match
// pipeline and the HTTP layer. Every error that crosses the orchestrator
// boundary is one of these, so handlers can render a precise message and
// status instead of a bare 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation policy and HTTP mapping.
type Kind int

const (
	// KindNotFound: a referenced game/player/profile/match does not exist.
	KindNotFound Kind = iota + 1
	// KindValidation: the submission itself is malformed; caller-correctable.
	KindValidation
	// KindConflict: a storage uniqueness constraint was violated.
	KindConflict
	// KindRatingEngine: the rating engine rejected or failed on the match.
	// Internal-class: logged in full, reported generically to the caller.
	KindRatingEngine
)

// Error carries a kind, a human-readable message and structured detail
// fields (offending ids and such) for logging.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the Kind from err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// HTTPStatus maps an error to the status code the API should answer with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindRatingEngine:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GameNotFound reports a missing game id.
func GameNotFound(gameID int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("game with id %d not found", gameID),
		Details: map[string]any{"game_id": gameID},
	}
}

// PlayerNotFound reports a missing player id.
func PlayerNotFound(playerID int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("player with id %d not found", playerID),
		Details: map[string]any{"player_id": playerID},
	}
}

// MatchNotFound reports a missing match id.
func MatchNotFound(matchID int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("match with id %d not found", matchID),
		Details: map[string]any{"match_id": matchID},
	}
}

// ProfileNotFound reports a missing rating profile. Profiles are created
// automatically during match processing, so hitting this usually means an
// internal consistency bug rather than bad input.
func ProfileNotFound(playerID, gameID int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("rating profile for player %d in game %d not found", playerID, gameID),
		Details: map[string]any{"player_id": playerID, "game_id": gameID},
	}
}

// InsufficientParticipants: a match needs at least two participants.
func InsufficientParticipants(count int) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("match requires at least 2 participants, got %d", count),
		Details: map[string]any{"participant_count": count},
	}
}

// InvalidTeamID: team ids are non-negative labels.
func InvalidTeamID(teamID int) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("team_id must be non-negative, got %d", teamID),
		Details: map[string]any{"team_id": teamID},
	}
}

// DuplicatePlayers: the same non-anonymous player appears more than once.
func DuplicatePlayers(playerIDs []int64) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("duplicate player(s) in match: %v", playerIDs),
		Details: map[string]any{"duplicate_player_ids": playerIDs},
	}
}

// InsufficientTeams: a match needs at least two distinct team ids.
func InsufficientTeams(teamCount int) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("match requires at least 2 teams, got %d", teamCount),
		Details: map[string]any{"team_count": teamCount},
	}
}

// NonCompetitiveMatch: the rating engine was handed a match with fewer than
// two competing sides.
func NonCompetitiveMatch(teamCount int) *Error {
	return &Error{
		Kind:    KindRatingEngine,
		Message: fmt.Sprintf("cannot calculate ratings for non-competitive match with %d team(s)", teamCount),
		Details: map[string]any{"team_count": teamCount},
	}
}

// RatingCalculation: outcome data reaching the engine was unusable.
func RatingCalculation(reason string, playerID int64) *Error {
	return &Error{
		Kind:    KindRatingEngine,
		Message: fmt.Sprintf("rating calculation failed for player %d: %s", playerID, reason),
		Details: map[string]any{"player_id": playerID, "reason": reason},
	}
}

// Conflict reports a storage uniqueness violation, e.g. a duplicate name.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}
