package generate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the generation endpoint.
//
// When mounted at /api/chats:
//   - POST /api/chats/{chatID}/generate
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/{chatID}/generate", h.GenerateHandler)
	return r
}

func chatIDFromPath(r *http.Request) string {
	return chi.URLParam(r, "chatID")
}
