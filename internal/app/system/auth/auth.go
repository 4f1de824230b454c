// Package auth provides cookie-session authentication for the admin panel.
//
// The site has exactly one admin account: the credential generated with the
// activated bundle and stored (bcrypt-hashed) in the admin_credentials
// singleton. Sessions carry the email the admin signed in with; a session
// whose email no longer matches the live credential is invalidated, so
// activating a bundle with a new admin email signs out the previous admin.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey       = "is_authenticated"
	adminEmailKey   = "admin_email"
	sessionTokenKey = "session_token"
)

// SessionManager encapsulates the session store and configuration and
// provides the middleware guarding admin routes.
type SessionManager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// SessionConfigError is returned when session configuration is invalid.
type SessionConfigError struct {
	Message string
}

func (e *SessionConfigError) Error() string {
	return e.Message
}

// NewSessionManager creates a SessionManager.
//
//   - sessionKey: signing key for cookies (must be ≥32 chars in production)
//   - name: session cookie name (defaults to "sitesmith-session" if empty)
//   - maxAge: session cookie lifetime
//   - secure: if true, cookies are Secure; weak keys become a startup error
func NewSessionManager(sessionKey, name string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, &SessionConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}

	isWeak := len(sessionKey) < 32 || isDefaultKey(sessionKey)
	if secure && isWeak {
		return nil, &SessionConfigError{
			Message: "session key is too weak for production; provide ≥32 random chars (not the default dev key)",
		}
	}
	if isWeak {
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)),
			zap.Bool("is_default", isDefaultKey(sessionKey)))
	}

	if name == "" {
		name = "sitesmith-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		// Lax allows top-level navigations to carry the cookie while
		// blocking cross-site POSTs.
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name))

	return &SessionManager{store: store, logger: logger, name: name}, nil
}

// SessionName returns the configured session cookie name.
func (sm *SessionManager) SessionName() string {
	return sm.name
}

// AdminEmail returns the signed-in admin's email, or "" when the request
// carries no valid admin session.
func (sm *SessionManager) AdminEmail(r *http.Request) string {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sm.logSessionError(err, r)
		return ""
	}
	if isAuth, _ := sess.Values[isAuthKey].(bool); !isAuth {
		return ""
	}
	return getString(sess, adminEmailKey)
}

// RequireAdmin guards admin API routes. Requests without a valid admin
// session get a JSON 401.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sm.AdminEmail(r) == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateSession establishes an admin session after a successful login.
func (sm *SessionManager) CreateSession(w http.ResponseWriter, r *http.Request, email string) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sess, _ = sm.store.New(r, sm.name)
	}

	token, err := generateSessionToken()
	if err != nil {
		return err
	}

	sess.Values[isAuthKey] = true
	sess.Values[adminEmailKey] = email
	sess.Values[sessionTokenKey] = token

	return sess.Save(r, w)
}

// DestroySession terminates the admin's session.
func (sm *SessionManager) DestroySession(w http.ResponseWriter, r *http.Request) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return
	}

	sess.Values[isAuthKey] = false
	delete(sess.Values, adminEmailKey)
	delete(sess.Values, sessionTokenKey)

	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func generateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// isDefaultKey checks if the session key appears to be a placeholder value.
func isDefaultKey(key string) bool {
	lower := strings.ToLower(key)
	patterns := []string{
		"dev-only", "change-me", "placeholder", "default",
		"example", "insecure", "test-key", "secret123", "password",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// logSessionError distinguishes an expired session (normal) from a MAC
// failure (possible tampering) so the latter is visible in logs.
func (sm *SessionManager) logSessionError(err error, r *http.Request) {
	errStr := strings.ToLower(err.Error())

	if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
		switch {
		case strings.Contains(errStr, "expired timestamp"):
			sm.logger.Debug("session expired, starting fresh session",
				zap.String("path", r.URL.Path))
		case strings.Contains(errStr, "mac") || strings.Contains(errStr, "hash"):
			sm.logger.Warn("session MAC validation failed (possible tampering)",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()))
		default:
			sm.logger.Info("session decode failed, starting fresh session",
				zap.String("path", r.URL.Path))
		}
		return
	}

	sm.logger.Warn("session error, starting fresh session",
		zap.Error(err),
		zap.String("path", r.URL.Path))
}
