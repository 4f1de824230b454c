// Package siteadmin provides the admin panel's direct-edit API: single
// document reads and writes against the live content, for the business
// owner tweaking the site after activation.
//
// This path never runs the activation engine; every write touches exactly
// one document. Section bodies pass through HTML sanitization on the way
// in, same as generated content.
package siteadmin

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/emailsettings"
	"github.com/sitesmith/sitesmith/internal/app/store/navigation"
	"github.com/sitesmith/sitesmith/internal/app/store/pages"
	"github.com/sitesmith/sitesmith/internal/app/store/sections"
	"github.com/sitesmith/sitesmith/internal/app/store/sitesettings"
	"github.com/sitesmith/sitesmith/internal/app/store/testimonials"
	"github.com/sitesmith/sitesmith/internal/app/system/htmlsanitize"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// Handler handles direct-edit requests.
type Handler struct {
	settings *sitesettings.Store
	pages    *pages.Store
	nav      *navigation.Store
	tms      *testimonials.Store
	secs     *sections.Store
	emails   *emailsettings.Store
	logger   *zap.Logger
}

// NewHandler creates a siteadmin handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		settings: sitesettings.New(db),
		pages:    pages.New(db),
		nav:      navigation.New(db),
		tms:      testimonials.New(db),
		secs:     sections.New(db),
		emails:   emailsettings.New(db),
		logger:   logger,
	}
}

/* ------------------------------ site settings ----------------------------- */

// GetSettingsHandler handles GET /settings.
func (h *Handler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load site settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to load site settings")
		return
	}
	if settings == nil {
		jsonutil.NotFound(w, "site settings not found")
		return
	}
	jsonutil.OK(w, settings)
}

// PutSettingsHandler handles PUT /settings.
func (h *Handler) PutSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var in models.SiteSettings
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.BusinessName == "" {
		jsonutil.BadRequest(w, "businessName is required")
		return
	}
	if err := h.settings.Replace(r.Context(), in); err != nil {
		h.logger.Error("failed to save site settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to save site settings")
		return
	}
	jsonutil.OK(w, in)
}

/* ---------------------------------- pages --------------------------------- */

// GetPageHandler handles GET /pages/{pageID}.
func (h *Handler) GetPageHandler(w http.ResponseWriter, r *http.Request) {
	id := models.PageID(pathParam(r, "pageID"))
	if !models.IsValidPageID(id) {
		jsonutil.BadRequest(w, "unknown page id: "+string(id))
		return
	}
	page, err := h.pages.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load page", zap.String("page_id", string(id)), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page")
		return
	}
	if page == nil {
		jsonutil.NotFound(w, "page not found")
		return
	}
	jsonutil.OK(w, page)
}

// PutPageHandler handles PUT /pages/{pageID}.
func (h *Handler) PutPageHandler(w http.ResponseWriter, r *http.Request) {
	id := models.PageID(pathParam(r, "pageID"))
	if !models.IsValidPageID(id) {
		jsonutil.BadRequest(w, "unknown page id: "+string(id))
		return
	}
	var in models.Page
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	in.PageID = id
	if err := h.pages.Replace(r.Context(), id, in); err != nil {
		h.logger.Error("failed to save page", zap.String("page_id", string(id)), zap.Error(err))
		jsonutil.InternalError(w, "failed to save page")
		return
	}
	jsonutil.OK(w, in)
}

/* ------------------------------- navigation ------------------------------- */

// ListNavHandler handles GET /navigation.
func (h *Handler) ListNavHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := h.nav.ListOrdered(r.Context())
	if err != nil {
		h.logger.Error("failed to list navigation", zap.Error(err))
		jsonutil.InternalError(w, "failed to list navigation")
		return
	}
	jsonutil.OK(w, docs)
}

// UpsertNavHandler handles POST /navigation and PUT /navigation/{id}.
func (h *Handler) UpsertNavHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := optionalID(w, r)
	if !ok {
		return
	}
	var in models.NavItem
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Label == "" || in.Href == "" {
		jsonutil.BadRequest(w, "label and href are required")
		return
	}
	saved, err := h.nav.Upsert(r.Context(), id, in)
	if err != nil {
		h.logger.Error("failed to save navigation entry", zap.Error(err))
		jsonutil.InternalError(w, "failed to save navigation entry")
		return
	}
	jsonutil.OK(w, navigation.Document{ID: saved, Item: in})
}

// DeleteNavHandler handles DELETE /navigation/{id}.
func (h *Handler) DeleteNavHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "navigation entry", h.nav.DeleteByID)
}

/* ------------------------------ testimonials ------------------------------ */

// ListTestimonialsHandler handles GET /testimonials.
func (h *Handler) ListTestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := h.tms.ListOrdered(r.Context())
	if err != nil {
		h.logger.Error("failed to list testimonials", zap.Error(err))
		jsonutil.InternalError(w, "failed to list testimonials")
		return
	}
	jsonutil.OK(w, docs)
}

// UpsertTestimonialHandler handles POST /testimonials and PUT /testimonials/{id}.
func (h *Handler) UpsertTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := optionalID(w, r)
	if !ok {
		return
	}
	var in models.Testimonial
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Rating < 1 || in.Rating > 5 {
		jsonutil.BadRequest(w, "rating must be between 1 and 5")
		return
	}
	saved, err := h.tms.Upsert(r.Context(), id, in)
	if err != nil {
		h.logger.Error("failed to save testimonial", zap.Error(err))
		jsonutil.InternalError(w, "failed to save testimonial")
		return
	}
	jsonutil.OK(w, testimonials.Document{ID: saved, Item: in})
}

// DeleteTestimonialHandler handles DELETE /testimonials/{id}.
func (h *Handler) DeleteTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "testimonial", h.tms.DeleteByID)
}

/* --------------------------------- sections ------------------------------- */

// ListSectionsHandler handles GET /sections?page={pageID}. Without a page
// filter, every section is returned.
func (h *Handler) ListSectionsHandler(w http.ResponseWriter, r *http.Request) {
	var docs []sections.Document
	var err error
	if page := r.URL.Query().Get("page"); page != "" {
		id := models.PageID(page)
		if !models.IsValidPageID(id) {
			jsonutil.BadRequest(w, "unknown page id: "+page)
			return
		}
		docs, err = h.secs.ListByPage(r.Context(), id)
	} else {
		docs, err = h.secs.ListAll(r.Context())
	}
	if err != nil {
		h.logger.Error("failed to list sections", zap.Error(err))
		jsonutil.InternalError(w, "failed to list sections")
		return
	}
	jsonutil.OK(w, docs)
}

// UpsertSectionHandler handles POST /sections and PUT /sections/{id}.
func (h *Handler) UpsertSectionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := optionalID(w, r)
	if !ok {
		return
	}
	var in models.Section
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if !models.IsValidPageID(in.PageID) {
		jsonutil.BadRequest(w, "unknown page id: "+string(in.PageID))
		return
	}
	if !models.IsValidSectionType(in.Type) {
		jsonutil.BadRequest(w, "unknown section type: "+string(in.Type))
		return
	}
	in.Body = htmlsanitize.Sanitize(in.Body)
	saved, err := h.secs.Upsert(r.Context(), id, in)
	if err != nil {
		h.logger.Error("failed to save section", zap.Error(err))
		jsonutil.InternalError(w, "failed to save section")
		return
	}
	jsonutil.OK(w, sections.Document{ID: saved, PageID: in.PageID, Section: in})
}

// DeleteSectionHandler handles DELETE /sections/{id}.
func (h *Handler) DeleteSectionHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "section", h.secs.DeleteByID)
}

/* ------------------------------ email settings ---------------------------- */

// GetEmailSettingsHandler handles GET /email-settings.
func (h *Handler) GetEmailSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := h.emails.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load email settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to load email settings")
		return
	}
	if settings == nil {
		jsonutil.NotFound(w, "email settings not found")
		return
	}
	jsonutil.OK(w, settings)
}

// PutEmailSettingsHandler handles PUT /email-settings.
func (h *Handler) PutEmailSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var in models.EmailSettings
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	in.ContactTemplate.Body = htmlsanitize.Sanitize(in.ContactTemplate.Body)
	in.JoinTemplate.Body = htmlsanitize.Sanitize(in.JoinTemplate.Body)
	in.AdminNotification.Body = htmlsanitize.Sanitize(in.AdminNotification.Body)
	if err := h.emails.Replace(r.Context(), in); err != nil {
		h.logger.Error("failed to save email settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to save email settings")
		return
	}
	jsonutil.OK(w, in)
}

/* --------------------------------- helpers -------------------------------- */

// optionalID parses the {id} path parameter when present (PUT); POST routes
// have none and get a zero id, which the stores treat as insert. A malformed
// id writes a 400 and reports !ok.
func optionalID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := pathParam(r, "id")
	if raw == "" {
		return primitive.NilObjectID, true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id: "+raw)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, what string, del func(context.Context, primitive.ObjectID) error) {
	raw := pathParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id: "+raw)
		return
	}
	if err := del(r.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, what+" not found")
			return
		}
		h.logger.Error("failed to delete "+what, zap.String("id", raw), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete "+what)
		return
	}
	jsonutil.NoContent(w)
}
