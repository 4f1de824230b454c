package siteadmin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitesmith/sitesmith/internal/app/system/auth"
)

// Routes returns a router with the direct-edit endpoints, guarded by the
// admin session. CSRF protection is applied by the application router.
//
// When mounted at /api/admin/site:
//   - GET/PUT  /settings
//   - GET/PUT  /email-settings
//   - GET      /pages/{pageID}, PUT /pages/{pageID}
//   - GET/POST /navigation, PUT/DELETE /navigation/{id}
//   - GET/POST /testimonials, PUT/DELETE /testimonials/{id}
//   - GET/POST /sections, PUT/DELETE /sections/{id}
func Routes(h *Handler, sm *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sm.RequireAdmin)

	r.Get("/settings", h.GetSettingsHandler)
	r.Put("/settings", h.PutSettingsHandler)

	r.Get("/email-settings", h.GetEmailSettingsHandler)
	r.Put("/email-settings", h.PutEmailSettingsHandler)

	r.Get("/pages/{pageID}", h.GetPageHandler)
	r.Put("/pages/{pageID}", h.PutPageHandler)

	r.Get("/navigation", h.ListNavHandler)
	r.Post("/navigation", h.UpsertNavHandler)
	r.Put("/navigation/{id}", h.UpsertNavHandler)
	r.Delete("/navigation/{id}", h.DeleteNavHandler)

	r.Get("/testimonials", h.ListTestimonialsHandler)
	r.Post("/testimonials", h.UpsertTestimonialHandler)
	r.Put("/testimonials/{id}", h.UpsertTestimonialHandler)
	r.Delete("/testimonials/{id}", h.DeleteTestimonialHandler)

	r.Get("/sections", h.ListSectionsHandler)
	r.Post("/sections", h.UpsertSectionHandler)
	r.Put("/sections/{id}", h.UpsertSectionHandler)
	r.Delete("/sections/{id}", h.DeleteSectionHandler)

	return r
}

func pathParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
