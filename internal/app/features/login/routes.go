package login

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the authentication endpoints.
//
// When mounted at /api/admin:
//   - POST /api/admin/login
//   - POST /api/admin/logout
//   - GET  /api/admin/session
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)
	r.Get("/session", h.SessionHandler)
	return r
}
