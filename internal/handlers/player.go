// internal/handlers/player.go
package handlers

import (
	"net/http"
	"strings"
)

type playerRequest struct {
	Name string `json:"name"`
}

func (s *Server) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var body playerRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "player name must not be empty")
		return
	}

	player, err := s.DB.CreatePlayer(r.Context(), body.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (s *Server) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.DB.ListPlayers(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (s *Server) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "playerID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid player id")
		return
	}
	player, err := s.DB.GetPlayer(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "playerID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid player id")
		return
	}
	var body playerRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "player name must not be empty")
		return
	}

	player, err := s.DB.RenamePlayer(r.Context(), id, body.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "playerID")
	if !ok {
		writeDetail(w, http.StatusBadRequest, "invalid player id")
		return
	}
	if err := s.DB.DeletePlayer(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
