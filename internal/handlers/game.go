// internal/handlers/game.go
package handlers

import (
	"net/http"
	"strings"
)

type gameRequest struct {
	Name           *string `json:"name"`
	RatingStrategy *string `json:"rating_strategy"`
	Description    *string `json:"description"`
}

func (s *Server) CreateGame(w http.ResponseWriter, r *http.Request) {
	var body gameRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == nil || strings.TrimSpace(*body.Name) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "game name must not be empty")
		return
	}
	if body.RatingStrategy == nil || strings.TrimSpace(*body.RatingStrategy) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "rating_strategy must not be empty")
		return
	}

	game, err := s.DB.CreateGame(r.Context(), *body.Name, *body.RatingStrategy, body.Description)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

func (s *Server) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.DB.ListGames(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "gameID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid game id")
		return
	}
	game, err := s.DB.GetGame(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// UpdateGame applies a partial update: only fields present in the body change.
func (s *Server) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "gameID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid game id")
		return
	}
	var body gameRequest
	if !decodeBody(w, r, &body) {
		return
	}

	game, err := s.DB.GetGame(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if body.Name != nil {
		game.Name = *body.Name
	}
	if body.RatingStrategy != nil {
		game.RatingStrategy = *body.RatingStrategy
	}
	if body.Description != nil {
		game.Description = body.Description
	}

	updated, err := s.DB.UpdateGame(r.Context(), game)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "gameID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid game id")
		return
	}
	if err := s.DB.DeleteGame(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.Cache.Invalidate(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}
