// Package login provides admin authentication endpoints.
//
// Endpoints:
//   - POST /api/admin/login  {"email", "password"} - start a session
//   - POST /api/admin/logout - end the session
//   - GET  /api/admin/session - report the signed-in admin, if any
//
// The only account is the credential generated with the activated bundle.
package login

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/admincreds"
	"github.com/sitesmith/sitesmith/internal/app/system/auth"
	"github.com/sitesmith/sitesmith/internal/app/system/authutil"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
)

// Handler handles admin login and logout.
type Handler struct {
	creds    *admincreds.Store
	sessions *auth.SessionManager
	logger   *zap.Logger
}

// NewHandler creates a login handler.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		creds:    admincreds.New(db),
		sessions: sm,
		logger:   logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler handles POST /api/admin/login. Wrong email and wrong
// password produce the same response.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Email == "" || in.Password == "" {
		jsonutil.BadRequest(w, "email and password are required")
		return
	}

	cred, err := h.creds.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load admin credential", zap.Error(err))
		jsonutil.InternalError(w, "login failed")
		return
	}
	if cred == nil || cred.Email != in.Email || !authutil.CheckPassword(cred.PasswordHash, in.Password) {
		h.logger.Info("admin login rejected",
			zap.String("email", in.Email),
			zap.String("remote_addr", r.RemoteAddr))
		jsonutil.Unauthorized(w, "invalid email or password")
		return
	}

	if err := h.sessions.CreateSession(w, r, cred.Email); err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		jsonutil.InternalError(w, "login failed")
		return
	}

	h.logger.Info("admin signed in", zap.String("email", cred.Email))
	jsonutil.OK(w, map[string]string{"email": cred.Email})
}

// LogoutHandler handles POST /api/admin/logout.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.sessions.DestroySession(w, r)
	jsonutil.NoContent(w)
}

// SessionHandler handles GET /api/admin/session.
func (h *Handler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	email := h.sessions.AdminEmail(r)
	if email == "" {
		jsonutil.Unauthorized(w, "not signed in")
		return
	}
	jsonutil.OK(w, map[string]string{"email": email})
}
