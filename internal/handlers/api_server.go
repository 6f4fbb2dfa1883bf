// internal/handlers/api_server.go

// Package handlers is the HTTP surface of the ranking service: players,
// games, matches and leaderboards. It translates apperr kinds to status
// codes and owns no business logic.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/KayKv10/RankForge/internal/cache"
	"github.com/KayKv10/RankForge/internal/database"
	"github.com/KayKv10/RankForge/internal/middleware"
	"github.com/KayKv10/RankForge/internal/service"
)

// Server bundles the dependencies the handlers need.
type Server struct {
	DB        *database.DB
	Processor *service.Processor
	Cache     *cache.Leaderboards
	Log       *logrus.Logger

	// AdminPasswordHash enables auth on mutating endpoints when non-empty.
	AdminPasswordHash string
}

// Router builds the chi router with logging and (optionally) admin auth on
// the mutating routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LogMiddleware(s.Log))

	r.Get("/healthz", s.Health)
	r.Post("/auth/login", s.Login)

	r.Route("/players", func(r chi.Router) {
		r.Get("/", s.ListPlayers)
		r.Get("/{playerID}", s.GetPlayer)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/", s.CreatePlayer)
			r.Put("/{playerID}", s.UpdatePlayer)
			r.Delete("/{playerID}", s.DeletePlayer)
		})
	})

	r.Route("/games", func(r chi.Router) {
		r.Get("/", s.ListGames)
		r.Get("/{gameID}", s.GetGame)
		r.Get("/{gameID}/leaderboard", s.Leaderboard)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/", s.CreateGame)
			r.Put("/{gameID}", s.UpdateGame)
			r.Delete("/{gameID}", s.DeleteGame)
		})
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", s.ListMatches)
		r.Get("/{matchID}", s.GetMatch)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/", s.CreateMatch)
			r.Delete("/{matchID}", s.DeleteMatch)
		})
	})

	return r
}

// Health is a liveness endpoint.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
