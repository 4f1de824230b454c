// internal/app/system/producer/generative.go
package producer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
)

// Default configuration values for the generative producer.
const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-3-5-sonnet-latest"
	DefaultTimeout = 120 * time.Second

	// apiVersion is the required API version header.
	apiVersion = "2023-06-01"

	// Retry budget for transient overload failures. Other error classes
	// fail immediately.
	DefaultMaxAttempts = 3
	DefaultBaseBackoff = 1 * time.Second
	DefaultMaxBackoff  = 10 * time.Second
)

// Config holds configuration for the generative producer.
type Config struct {
	// APIKey is the text-generation API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.anthropic.com).
	BaseURL string

	// Model is the model to use (default: claude-3-5-sonnet-latest).
	Model string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration

	// MaxAttempts is the total number of attempts for overloaded responses
	// (default: 3). BaseBackoff doubles per attempt up to MaxBackoff.
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// Generative calls an external text-generation API to produce bundle JSON
// from a business description. The single blocking call of the pipeline:
// callers await it synchronously behind a visible progress state.
type Generative struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	log         *zap.Logger
}

var _ Producer = (*Generative)(nil)

// NewGenerative creates a generative producer.
func NewGenerative(cfg Config, log *zap.Logger) (*Generative, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generative producer: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = DefaultBaseBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = DefaultMaxBackoff
	}

	log.Info("generative producer configured", zap.String("model", cfg.Model))
	return &Generative{
		client:      &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
		maxBackoff:  cfg.MaxBackoff,
		log:         log,
	}, nil
}

// messagesRequest is the /v1/messages request format.
type messagesRequest struct {
	Model     string            `json:"model"`
	Messages  []messagesMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system,omitempty"`
}

type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the /v1/messages response format.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Produce sends the bundle schema instruction plus the description and
// returns the raw model text. Transient overload failures are retried with
// exponential backoff (base doubling, capped) up to the attempt budget;
// exhausting the budget yields bundle.ErrProducerUnavailable. Any other
// error class fails immediately.
func (g *Generative) Produce(ctx context.Context, description string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := g.baseBackoff * time.Duration(1<<uint(attempt-1))
			if backoff > g.maxBackoff {
				backoff = g.maxBackoff
			}
			g.log.Info("producer overloaded, backing off",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff))
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("producer call cancelled during backoff: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}

		text, err := g.call(ctx, description)
		if err == nil {
			return text, nil
		}
		if !isOverloaded(err) {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("%w: gave up after %d attempts: %v",
		bundle.ErrProducerUnavailable, g.maxAttempts, lastErr)
}

// overloadedError marks a transient service-overload failure.
type overloadedError struct{ msg string }

func (e *overloadedError) Error() string { return e.msg }

func isOverloaded(err error) bool {
	_, ok := err.(*overloadedError)
	return ok
}

func (g *Generative) call(ctx context.Context, description string) (string, error) {
	reqBody := messagesRequest{
		Model: g.model,
		Messages: []messagesMessage{
			{Role: "user", Content: buildPrompt(description)},
		},
		MaxTokens: 8192,
		System:    systemPrompt,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := g.client.Do(req)
	if err != nil {
		// A client-side timeout is as transient as a 529; retry it. A
		// caller-cancelled context is not.
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() && ctx.Err() == nil {
			return "", &overloadedError{msg: "request timed out: " + err.Error()}
		}
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	// Status is checked before the body is decoded: overload and server
	// errors frequently arrive from a load balancer with an empty or
	// non-JSON body.
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &overloadedError{msg: fmt.Sprintf("service overloaded (status %d)", resp.StatusCode)}
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("producer API error (status %d): %s", resp.StatusCode, truncate(string(body)))
		}
		return "", fmt.Errorf("decode response: %w", err)
	}

	if msgResp.Error != nil {
		if msgResp.Error.Type == "overloaded_error" {
			return "", &overloadedError{msg: "service overloaded: " + msgResp.Error.Message}
		}
		return "", fmt.Errorf("producer API error: %s", msgResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("producer API error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("producer API returned no content")
	}

	var result strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}
	return result.String(), nil
}

// truncate caps an error-body excerpt for log and error messages.
func truncate(s string) string {
	const max = 200
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
