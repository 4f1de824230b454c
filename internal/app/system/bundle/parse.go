// internal/app/system/bundle/parse.go
package bundle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// Parse decodes raw producer text into a ContentBundle. Generative producers
// routinely wrap their JSON in markdown code fences; Parse strips a fenced
// block if one is present, otherwise treats the whole payload as JSON.
//
// A decode failure is ErrMalformedProducerOutput, never retried
// automatically: it means the producer's output violated the contract, and
// the caller may choose to re-prompt.
func Parse(raw string) (*models.ContentBundle, error) {
	payload := StripFences(raw)
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedProducerOutput)
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	var b models.ContentBundle
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %v (payload starts %q)", ErrMalformedProducerOutput, err, snippet(payload))
	}
	return &b, nil
}

// StripFences extracts the contents of the first markdown code fence in raw,
// tolerating an optional language tag (```json). If no fence is found the
// input is returned unchanged.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	rest := s[start+3:]

	// Skip the language tag up to the first newline, if any.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		tag := strings.TrimSpace(rest[:nl])
		if tag == "" || isFenceTag(tag) {
			rest = rest[nl+1:]
		}
	}

	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func isFenceTag(tag string) bool {
	switch strings.ToLower(tag) {
	case "json", "javascript", "js", "text":
		return true
	}
	return false
}

// snippet returns the head of payload for error messages.
func snippet(payload string) string {
	const max = 80
	if len(payload) > max {
		return payload[:max] + "..."
	}
	return payload
}
