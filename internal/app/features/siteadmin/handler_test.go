package siteadmin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/navigation"
	"github.com/sitesmith/sitesmith/internal/app/store/sections"
	"github.com/sitesmith/sitesmith/internal/app/store/sitesettings"
	"github.com/sitesmith/sitesmith/internal/app/system/auth"
	"github.com/sitesmith/sitesmith/internal/domain/models"
	"github.com/sitesmith/sitesmith/internal/testutil"
)

const sessionKey = "0123456789abcdef0123456789abcdef0123456789abcdef"

type fixture struct {
	handler http.Handler
	cookies []*http.Cookie
	db      *mongo.Database
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)

	sm, err := auth.NewSessionManager(sessionKey, "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sm.CreateSession(rec, req, "admin@test.example"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	return &fixture{
		handler: Routes(NewHandler(db, zap.NewNop()), sm),
		cookies: rec.Result().Cookies(),
		db:      db,
	}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestSettings_RoundTrip(t *testing.T) {
	f := setup(t)

	rec := f.do(t, http.MethodGet, "/settings", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET before write = %d, want 404", rec.Code)
	}

	rec = f.do(t, http.MethodPut, "/settings", `{"businessName":"Edited Business","theme":"dark"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var got models.SiteSettings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.BusinessName != "Edited Business" || got.Theme != "dark" {
		t.Errorf("settings = %+v", got)
	}
}

func TestSettings_RequiresBusinessName(t *testing.T) {
	f := setup(t)
	rec := f.do(t, http.MethodPut, "/settings", `{"theme":"dark"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPage_RoundTrip(t *testing.T) {
	f := setup(t)

	rec := f.do(t, http.MethodPut, "/pages/home", `{"hero":{"title":"Edited Hero"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/pages/home", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var got models.Page
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PageID != models.PageHome || got.Hero == nil || got.Hero.Title != "Edited Hero" {
		t.Errorf("page = %+v", got)
	}
}

func TestPage_UnknownID(t *testing.T) {
	f := setup(t)
	rec := f.do(t, http.MethodPut, "/pages/blog", `{"hero":{"title":"x"}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestNavigation_CRUD(t *testing.T) {
	f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := f.do(t, http.MethodPost, "/navigation", `{"label":"Home","href":"/","order":0,"visible":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created navigation.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected an assigned id")
	}

	rec = f.do(t, http.MethodPut, "/navigation/"+created.ID.Hex(), `{"label":"Start","href":"/","order":0,"visible":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", rec.Code)
	}

	docs, err := navigation.New(f.db).ListOrdered(ctx)
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(docs) != 1 || docs[0].Item.Label != "Start" {
		t.Errorf("navigation after edit = %+v", docs)
	}

	rec = f.do(t, http.MethodDelete, "/navigation/"+created.ID.Hex(), "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want 204", rec.Code)
	}
	rec = f.do(t, http.MethodDelete, "/navigation/"+primitive.NewObjectID().Hex(), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("DELETE missing status = %d, want 404", rec.Code)
	}
}

func TestTestimonial_RatingValidated(t *testing.T) {
	f := setup(t)
	rec := f.do(t, http.MethodPost, "/testimonials", `{"name":"Pat","content":"x","rating":6}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSection_SanitizedOnWrite(t *testing.T) {
	f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := `{"pageId":"home","type":"text","order":0,"title":"T","body":"<p>ok</p><script>alert(1)</script>"}`
	rec := f.do(t, http.MethodPost, "/sections", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d, body = %s", rec.Code, rec.Body.String())
	}

	docs, err := sections.New(f.db).ListByPage(ctx, models.PageHome)
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("sections = %d, want 1", len(docs))
	}
	if strings.Contains(docs[0].Section.Body, "script") {
		t.Errorf("script survived sanitization: %q", docs[0].Section.Body)
	}
}

func TestSection_InvalidType(t *testing.T) {
	f := setup(t)
	rec := f.do(t, http.MethodPost, "/sections", `{"pageId":"home","type":"carousel","order":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUnauthenticatedRejected(t *testing.T) {
	f := setup(t)
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSettings_SingletonStaysSingle(t *testing.T) {
	f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		rec := f.do(t, http.MethodPut, "/settings", `{"businessName":"B"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("PUT %d status = %d", i, rec.Code)
		}
	}
	n, err := f.db.Collection(sitesettings.CollectionName).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments: %v", err)
	}
	if n != 1 {
		t.Errorf("site_settings has %d documents, want 1", n)
	}
}
