// internal/handlers/leaderboard.go
package handlers

import (
	"net/http"
)

// Leaderboard serves a game's standings, cache-first.
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "gameID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid game id")
		return
	}

	if entries, hit := s.Cache.Get(r.Context(), id); hit {
		writeJSON(w, http.StatusOK, entries)
		return
	}

	// Verify the game exists so a bogus id is a 404, not an empty board.
	if _, err := s.DB.GetGame(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	entries, err := s.DB.Leaderboard(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Cache.Set(r.Context(), id, entries)
	writeJSON(w, http.StatusOK, entries)
}
