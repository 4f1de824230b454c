package activate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the activation endpoint.
//
// When mounted at /api/chats:
//   - POST /api/chats/{chatID}/activate
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/{chatID}/activate", h.ActivateHandler)
	return r
}

func chatIDFromPath(r *http.Request) string {
	return chi.URLParam(r, "chatID")
}
