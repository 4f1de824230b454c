package businessdata

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitesmith/sitesmith/internal/app/system/auth"
)

// Routes returns a router with the business data endpoint, guarded by the
// admin session.
//
// When mounted at /api/admin/business-data:
//   - POST /api/admin/business-data
func Routes(h *Handler, sm *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sm.RequireAdmin)
	r.Post("/", h.InitHandler)
	return r
}
