package producer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
)

// fastConfig points the producer at a test server with near-zero backoff so
// retry tests run instantly.
func fastConfig(url string) Config {
	return Config{
		APIKey:      "test-key",
		BaseURL:     url,
		Model:       "test-model",
		Timeout:     5 * time.Second,
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  5 * time.Millisecond,
	}
}

func textResponse(text string) map[string]any {
	return map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	}
}

func TestGenerative_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		json.NewEncoder(w).Encode(textResponse("```json\n{\"x\":1}\n```"))
	}))
	defer srv.Close()

	g, err := NewGenerative(fastConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	out, err := g.Produce(context.Background(), "gym with trainer profiles and booking")
	require.NoError(t, err)
	assert.Contains(t, out, `{"x":1}`)
}

func TestGenerative_RetryBound(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(529)
	}))
	defer srv.Close()

	g, err := NewGenerative(fastConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = g.Produce(context.Background(), "a gym")
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrProducerUnavailable)
	assert.Equal(t, int32(3), attempts.Load(), "overload must be retried exactly MaxAttempts times total")
}

func TestGenerative_OverloadedErrorBody(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "overloaded_error", "message": "busy"},
		})
	}))
	defer srv.Close()

	g, err := NewGenerative(fastConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = g.Produce(context.Background(), "a gym")
	assert.ErrorIs(t, err, bundle.ErrProducerUnavailable)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGenerative_ServerErrorWithNonJSONBody(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html>upstream connect error</html>"))
	}))
	defer srv.Close()

	g, err := NewGenerative(fastConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = g.Produce(context.Background(), "a gym")
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrProducerUnavailable,
		"gateway errors carry arbitrary bodies and must still hit the overload path")
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGenerative_ClientTimeoutIsRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := fastConfig(srv.URL)
	cfg.Timeout = 20 * time.Millisecond
	g, err := NewGenerative(cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = g.Produce(context.Background(), "a gym")
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrProducerUnavailable)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGenerative_NonTransientFailsImmediately(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "invalid_request_error", "message": "bad prompt"},
		})
	}))
	defer srv.Close()

	g, err := NewGenerative(fastConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = g.Produce(context.Background(), "a gym")
	require.Error(t, err)
	assert.NotErrorIs(t, err, bundle.ErrProducerUnavailable)
	assert.Equal(t, int32(1), attempts.Load(), "non-transient errors must not be retried")
}

func TestGenerative_RecoversOnLaterAttempt(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(textResponse(`{"ok":true}`))
	}))
	defer srv.Close()

	g, err := NewGenerative(fastConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	out, err := g.Produce(context.Background(), "a gym")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
}

func TestGenerative_CancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(529)
	}))
	defer srv.Close()

	cfg := fastConfig(srv.URL)
	cfg.BaseBackoff = time.Minute
	cfg.MaxBackoff = time.Minute
	g, err := NewGenerative(cfg, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = g.Produce(ctx, "a gym")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerative_RequiresAPIKey(t *testing.T) {
	_, err := NewGenerative(Config{}, zap.NewNop())
	assert.Error(t, err)
}
