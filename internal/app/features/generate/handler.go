// Package generate provides the content generation endpoint: a business
// description goes in, a validated bundle lands in staging.
//
// Endpoint:
//   - POST /api/chats/{chatID}/generate - produce and stage a bundle
//
// Nothing here touches the live collections; the result of a successful
// call is one staged snapshot under (user, chat), replacing any earlier
// snapshot for the same pair.
package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/staging"
	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
	"github.com/sitesmith/sitesmith/internal/app/system/htmlsanitize"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
	"github.com/sitesmith/sitesmith/internal/app/system/producer"
)

// Handler handles generation requests.
type Handler struct {
	producer producer.Producer
	staged   *staging.Store
	logger   *zap.Logger
}

// NewHandler creates a generate handler backed by the given producer.
func NewHandler(db *mongo.Database, p producer.Producer, logger *zap.Logger) *Handler {
	return &Handler{
		producer: p,
		staged:   staging.New(db),
		logger:   logger,
	}
}

type generateRequest struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
}

type generateResponse struct {
	ChatID   string   `json:"chat_id"`
	Warnings []string `json:"warnings,omitempty"`
}

// GenerateHandler handles POST /api/chats/{chatID}/generate. A chatID of
// "new" mints a fresh chat id. The description must be non-empty; the
// producer is never invoked for an empty one.
func (h *Handler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFromPath(r)
	if chatID == "" || chatID == "new" {
		chatID = uuid.NewString()
	}

	var in generateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.UserID == "" {
		in.UserID = "default"
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		jsonutil.BadRequest(w, "please provide a description of your business")
		return
	}

	raw, err := h.producer.Produce(r.Context(), description)
	if err != nil {
		if errors.Is(err, bundle.ErrProducerUnavailable) {
			h.logger.Warn("producer unavailable",
				zap.String("chat_id", chatID),
				zap.Error(err))
			jsonutil.Error(w, http.StatusServiceUnavailable, "the generation service is busy, please try again")
			return
		}
		h.logger.Error("producer failed",
			zap.String("chat_id", chatID),
			zap.Error(err))
		jsonutil.BadGateway(w, "content generation failed")
		return
	}

	b, err := bundle.Parse(raw)
	if err != nil {
		// Malformed output is never retried here; the caller may resubmit
		// the same description, which gets a fresh generative call.
		h.logger.Error("producer output did not parse",
			zap.String("chat_id", chatID),
			zap.Error(err))
		jsonutil.BadGateway(w, "generation failed, please try submitting your description again")
		return
	}

	warnings, err := bundle.Validate(b)
	if err != nil {
		h.logger.Error("generated bundle failed validation",
			zap.String("chat_id", chatID),
			zap.Error(err))
		jsonutil.Error(w, http.StatusUnprocessableEntity, "generated content was invalid, please try again")
		return
	}

	htmlsanitize.SanitizeBundle(b)

	if err := h.staged.Stage(r.Context(), in.UserID, chatID, description, *b); err != nil {
		h.logger.Error("failed to stage bundle",
			zap.String("chat_id", chatID),
			zap.String("user_id", in.UserID),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to save generated content")
		return
	}

	h.logger.Info("bundle staged",
		zap.String("chat_id", chatID),
		zap.String("user_id", in.UserID),
		zap.Int("warnings", len(warnings)))

	jsonutil.OK(w, generateResponse{ChatID: chatID, Warnings: warnings})
}
