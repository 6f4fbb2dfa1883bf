// internal/handlers/match.go
package handlers

import (
	"net/http"

	"github.com/KayKv10/RankForge/internal/service"
)

// CreateMatch runs the full match-processing pipeline and returns the
// committed match with per-participant audit data.
func (s *Server) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var in service.MatchSubmission
	if !decodeBody(w, r, &in) {
		return
	}

	match, err := s.Processor.ProcessMatch(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.Cache.Invalidate(r.Context(), match.GameID)
	writeJSON(w, http.StatusCreated, match)
}

func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.DB.ListMatches(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "matchID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid match id")
		return
	}
	match, err := s.DB.GetMatch(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// DeleteMatch removes a match and, via cascade, its participants. Ratings
// already applied are not rewound; deleting a match is bookkeeping, not an
// undo.
func (s *Server) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "matchID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid match id")
		return
	}
	match, err := s.DB.GetMatch(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.DB.DeleteMatch(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.Cache.Invalidate(r.Context(), match.GameID)
	w.WriteHeader(http.StatusNoContent)
}
