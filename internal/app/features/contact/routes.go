package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the contact endpoint.
//
// When mounted at /api/contact:
//   - POST /api/contact
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.SubmitHandler)
	return r
}
