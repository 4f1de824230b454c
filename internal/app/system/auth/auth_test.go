package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager(testKey, "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	_, err := NewSessionManager("", "", time.Hour, false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestNewSessionManager_WeakKeyRejectedInProduction(t *testing.T) {
	_, err := NewSessionManager("short", "", time.Hour, true, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for weak key with secure=true")
	}
	_, err = NewSessionManager(strings.Repeat("x", 32)+"change-me", "", time.Hour, true, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for default-looking key with secure=true")
	}
}

func TestNewSessionManager_WeakKeyAllowedInDev(t *testing.T) {
	sm, err := NewSessionManager("short", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("weak key should be allowed in dev mode: %v", err)
	}
	if sm.SessionName() != "sitesmith-session" {
		t.Errorf("default session name = %q", sm.SessionName())
	}
}

func TestCreateSession_RoundTrip(t *testing.T) {
	sm := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	if err := sm.CreateSession(rec, req, "admin@example.com"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	next := httptest.NewRequest(http.MethodGet, "/admin/business-data", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	if got := sm.AdminEmail(next); got != "admin@example.com" {
		t.Errorf("AdminEmail = %q, want admin@example.com", got)
	}
}

func TestAdminEmail_NoSession(t *testing.T) {
	sm := newTestManager(t)
	req := httptest.NewRequest(http.MethodGet, "/admin/business-data", nil)
	if got := sm.AdminEmail(req); got != "" {
		t.Errorf("AdminEmail = %q, want empty", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	sm := newTestManager(t)

	var reached bool
	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	// No session: 401, handler untouched.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/business-data", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler ran without a session")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}

	// Signed in: handler runs.
	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	if err := sm.CreateSession(loginRec, loginReq, "admin@example.com"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	authed := httptest.NewRequest(http.MethodGet, "/admin/business-data", nil)
	for _, c := range loginRec.Result().Cookies() {
		authed.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authed)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Error("handler did not run with a valid session")
	}
}

func TestDestroySession(t *testing.T) {
	sm := newTestManager(t)

	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	if err := sm.CreateSession(loginRec, loginReq, "admin@example.com"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	logoutReq := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	for _, c := range loginRec.Result().Cookies() {
		logoutReq.AddCookie(c)
	}
	logoutRec := httptest.NewRecorder()
	sm.DestroySession(logoutRec, logoutReq)

	after := httptest.NewRequest(http.MethodGet, "/admin/business-data", nil)
	for _, c := range logoutRec.Result().Cookies() {
		after.AddCookie(c)
	}
	if got := sm.AdminEmail(after); got != "" {
		t.Errorf("AdminEmail after logout = %q, want empty", got)
	}
}
