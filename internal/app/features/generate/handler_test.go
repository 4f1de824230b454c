package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/staging"
	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
	"github.com/sitesmith/sitesmith/internal/testutil"
)

type stubProducer struct {
	raw   string
	err   error
	calls int
}

func (s *stubProducer) Produce(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.raw, nil
}

func validRaw(t *testing.T) string {
	t.Helper()
	b := testutil.ValidBundle()
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(data)
}

func post(t *testing.T, handler http.Handler, chatID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/"+chatID+"/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerate_StagesBundle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := &stubProducer{raw: validRaw(t)}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "chat-1", `{"user_id":"u1","description":"a cozy coffee shop"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ChatID   string   `json:"chat_id"`
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ChatID != "chat-1" {
		t.Errorf("chat_id = %q, want chat-1", resp.ChatID)
	}

	staged, err := staging.New(db).ReadStaged(ctx, "u1", "chat-1")
	if err != nil {
		t.Fatalf("ReadStaged: %v", err)
	}
	if staged.Description != "a cozy coffee shop" {
		t.Errorf("staged description = %q", staged.Description)
	}
	if staged.Bundle.SiteSettings.BusinessName == "" {
		t.Error("staged bundle is empty")
	}
}

func TestGenerate_MintsChatID(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p := &stubProducer{raw: validRaw(t)}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "new", `{"description":"a bakery"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ChatID string `json:"chat_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ChatID == "" || resp.ChatID == "new" {
		t.Errorf("chat_id = %q, want a minted id", resp.ChatID)
	}
}

func TestGenerate_EmptyDescription(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p := &stubProducer{raw: validRaw(t)}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "chat-1", `{"description":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if p.calls != 0 {
		t.Errorf("producer invoked %d times for empty description, want 0", p.calls)
	}
}

func TestGenerate_ProducerUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := &stubProducer{err: fmt.Errorf("%w: 3 attempts", bundle.ErrProducerUnavailable)}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "chat-1", `{"user_id":"u1","description":"a gym"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if _, err := staging.New(db).ReadStaged(ctx, "u1", "chat-1"); err == nil {
		t.Error("bundle staged despite producer failure")
	}
}

func TestGenerate_MalformedOutput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := &stubProducer{raw: "sorry, I can't do that"}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "chat-1", `{"user_id":"u1","description":"a gym"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if _, err := staging.New(db).ReadStaged(ctx, "u1", "chat-1"); err == nil {
		t.Error("bundle staged despite malformed output")
	}
}

func TestGenerate_InvalidBundle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := testutil.ValidBundle()
	b.Testimonials[0].Rating = 9
	data, _ := json.Marshal(b)

	p := &stubProducer{raw: string(data)}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "chat-1", `{"user_id":"u1","description":"a gym"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if _, err := staging.New(db).ReadStaged(ctx, "u1", "chat-1"); err == nil {
		t.Error("bundle staged despite validation failure")
	}
}

func TestGenerate_SanitizesHTML(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := testutil.ValidBundle()
	b.Sections[0].Body = `<p>hello</p><script>alert(1)</script>`
	data, _ := json.Marshal(b)

	p := &stubProducer{raw: string(data)}
	handler := Routes(NewHandler(db, p, zap.NewNop()))

	rec := post(t, handler, "chat-1", `{"user_id":"u1","description":"a gym"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	staged, err := staging.New(db).ReadStaged(ctx, "u1", "chat-1")
	if err != nil {
		t.Fatalf("ReadStaged: %v", err)
	}
	body := staged.Bundle.Sections[0].Body
	if strings.Contains(body, "<script>") {
		t.Errorf("script tag survived sanitization: %q", body)
	}
	if !strings.Contains(body, "<p>hello</p>") {
		t.Errorf("benign markup stripped: %q", body)
	}
}
