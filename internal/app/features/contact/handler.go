// Package contact provides the public contact-form endpoint. Submissions
// are emailed using the activated bundle's templates: a confirmation to the
// submitter, a notification to the business.
//
// Endpoint:
//   - POST /api/contact {"name", "email", "message"}
//
// Send failures are logged and reported in the response; they are never
// retried.
package contact

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/emailsettings"
	"github.com/sitesmith/sitesmith/internal/app/store/sitesettings"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
	"github.com/sitesmith/sitesmith/internal/app/system/mailer"
)

// Sender sends one email. *mailer.Mailer satisfies it.
type Sender interface {
	Send(email mailer.Email) error
}

// Handler handles contact form submissions.
type Handler struct {
	emails   *emailsettings.Store
	settings *sitesettings.Store
	sender   Sender
	logger   *zap.Logger
}

// NewHandler creates a contact handler.
func NewHandler(db *mongo.Database, sender Sender, logger *zap.Logger) *Handler {
	return &Handler{
		emails:   emailsettings.New(db),
		settings: sitesettings.New(db),
		sender:   sender,
		logger:   logger,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitHandler handles POST /api/contact.
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var in contactRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Email == "" || in.Message == "" {
		jsonutil.BadRequest(w, "name, email, and message are required")
		return
	}

	templates, err := h.emails.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load email settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to process submission")
		return
	}
	if templates == nil {
		jsonutil.Error(w, http.StatusConflict, "the site has no email templates yet, activate a site first")
		return
	}

	vars := map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"message": in.Message,
	}

	subject, body := mailer.Render(templates.ContactTemplate, vars, h.logger)
	if err := h.sender.Send(mailer.Email{To: in.Email, Subject: subject, HTMLBody: body}); err != nil {
		h.logger.Error("failed to send confirmation email",
			zap.String("to", in.Email),
			zap.Error(err))
		jsonutil.BadGateway(w, "your message could not be delivered, please try again later")
		return
	}

	// The business notification is best-effort: the submitter's message got
	// through, so a notification failure only warns.
	if to := h.notifyAddress(r); to != "" {
		subject, body = mailer.Render(templates.AdminNotification, vars, h.logger)
		if err := h.sender.Send(mailer.Email{To: to, Subject: subject, HTMLBody: body}); err != nil {
			h.logger.Warn("failed to send admin notification",
				zap.String("to", to),
				zap.Error(err))
		}
	}

	jsonutil.OK(w, map[string]string{"status": "sent"})
}

func (h *Handler) notifyAddress(r *http.Request) string {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		h.logger.Warn("failed to load site settings for notification", zap.Error(err))
		return ""
	}
	if settings == nil {
		return ""
	}
	return settings.ContactEmail
}
