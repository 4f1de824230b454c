package businessdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/livesite"
	"github.com/sitesmith/sitesmith/internal/app/store/sitesettings"
	"github.com/sitesmith/sitesmith/internal/app/system/auth"
	"github.com/sitesmith/sitesmith/internal/testutil"
)

const sessionKey = "0123456789abcdef0123456789abcdef0123456789abcdef"

func adminCookies(t *testing.T, sm *auth.SessionManager) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	if err := sm.CreateSession(rec, req, "admin@test.example"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return rec.Result().Cookies()
}

func TestInit_ActivatesTemplate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sm, err := auth.NewSessionManager(sessionKey, "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	handler := Routes(NewHandler(db, zap.NewNop()), sm)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"business_type":"restaurant"}`))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range adminCookies(t, sm) {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Version       string `json:"version"`
		AdminPassword string `json:"admin_password"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Version == "" || resp.AdminPassword == "" {
		t.Errorf("incomplete response: %+v", resp)
	}

	settings, err := sitesettings.New(db).Get(ctx)
	if err != nil {
		t.Fatalf("sitesettings.Get: %v", err)
	}
	if settings == nil || settings.BusinessName == "" {
		t.Errorf("live settings not populated: %+v", settings)
	}

	site, err := livesite.New(db).Get(ctx)
	if err != nil {
		t.Fatalf("livesite.Get: %v", err)
	}
	if site == nil || site.Version != resp.Version {
		t.Errorf("live site = %+v, want version %q", site, resp.Version)
	}
}

func TestInit_UnknownBusinessType(t *testing.T) {
	db := testutil.SetupTestDB(t)

	sm, err := auth.NewSessionManager(sessionKey, "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	handler := Routes(NewHandler(db, zap.NewNop()), sm)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"business_type":"spaceport"}`))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range adminCookies(t, sm) {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestInit_RequiresSession(t *testing.T) {
	db := testutil.SetupTestDB(t)

	sm, err := auth.NewSessionManager(sessionKey, "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	handler := Routes(NewHandler(db, zap.NewNop()), sm)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"business_type":"gym"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
