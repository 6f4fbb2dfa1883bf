// internal/service/match.go

// Package service holds the match-processing workflow: resolving anonymous
// participants, validating match structure, persisting the match skeleton,
// dispatching to the game's rating engine, and committing everything as one
// atomic unit.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
	"github.com/KayKv10/RankForge/internal/rating"
	"github.com/KayKv10/RankForge/internal/store"
)

// MatchSubmission is the inbound payload for recording a played match.
type MatchSubmission struct {
	GameID       int64                   `json:"game_id"`
	PlayedAt     *time.Time              `json:"played_at,omitempty"`
	Metadata     map[string]any          `json:"match_metadata,omitempty"`
	Participants []ParticipantSubmission `json:"participants"`
}

// ParticipantSubmission is one participant in a submission. A nil PlayerID
// marks an anonymous participant.
type ParticipantSubmission struct {
	PlayerID *int64         `json:"player_id"`
	TeamID   int            `json:"team_id"`
	Outcome  models.Outcome `json:"outcome"`
}

// Processor owns the transaction boundary for match processing.
type Processor struct {
	store store.Store
	log   *logrus.Logger
}

// NewProcessor builds a Processor on the given store.
func NewProcessor(s store.Store, log *logrus.Logger) *Processor {
	if log == nil {
		log = logrus.New()
	}
	return &Processor{store: s, log: log}
}

// ProcessMatch records one match and applies rating updates to every
// participant, all inside a single transaction. The sequence is
// resolve -> validate -> persist skeleton -> rating engine -> commit; any
// failure rolls back every write, including lazily created profiles.
//
// Resubmitting an identical payload records a second match and rates it
// again: matches are events, not upserts.
func (p *Processor) ProcessMatch(ctx context.Context, in MatchSubmission) (*models.Match, error) {
	var matchID int64
	err := p.store.WithinTx(ctx, func(tx store.Tx) error {
		parts, unknownID, err := resolveParticipants(ctx, tx, in.Participants)
		if err != nil {
			return err
		}
		if err := validateParticipants(ctx, tx, parts, unknownID); err != nil {
			return err
		}

		game, err := tx.FindGame(ctx, in.GameID)
		if err != nil {
			return err
		}
		if game == nil {
			return apperr.GameNotFound(in.GameID)
		}

		match := &models.Match{
			GameID:       game.ID,
			Metadata:     in.Metadata,
			Participants: parts,
		}
		if in.PlayedAt != nil {
			match.PlayedAt = in.PlayedAt.UTC()
		}
		if match.Metadata == nil {
			match.Metadata = map[string]any{}
		}

		// Snapshot each participant's pre-match state for the audit trail,
		// creating first-time profiles as a side effect.
		for _, pt := range parts {
			prof, err := tx.GetOrCreateProfile(ctx, pt.PlayerID, game.ID)
			if err != nil {
				return err
			}
			snapshot := prof.Rating
			pt.RatingBefore = &snapshot
		}

		if err := tx.InsertMatch(ctx, match); err != nil {
			return err
		}

		engine := rating.ForStrategy(game.RatingStrategy)
		if err := engine.UpdateRatingsForMatch(ctx, tx, match); err != nil {
			return err
		}

		matchID = match.ID
		return nil
	})
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"game_id": in.GameID,
			"error":   err,
		}).Warn("match processing rolled back")
		return nil, err
	}

	// Only after commit is the match durable; re-read it for the response.
	match, err := p.store.FindMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, apperr.MatchNotFound(matchID)
	}
	return match, nil
}
