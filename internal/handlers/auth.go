// internal/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/KayKv10/RankForge/internal/auth"
)

// Login exchanges the admin password for a session token. Only available
// when an admin password hash is configured.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if s.AdminPasswordHash == "" {
		writeDetail(w, http.StatusNotFound, "admin auth is not configured")
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	match, err := auth.ComparePasswordAndHash(body.Password, s.AdminPasswordHash)
	if err != nil || !match {
		writeDetail(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.CreateAdminJWT()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// requireAdmin guards mutating endpoints with a bearer token when admin auth
// is configured; otherwise the API is open (local/trusted deployments).
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.AdminPasswordHash == "" {
			next.ServeHTTP(w, r)
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || auth.AuthenticateAdminJWT(token) != nil {
			writeDetail(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}
