// Package activate provides the activation endpoint: the staged bundle for
// a chat is published wholesale to the live site.
//
// Endpoint:
//   - POST /api/chats/{chatID}/activate
//
// The response carries the one-time admin password generated with the
// bundle; it is never retrievable again.
package activate

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/system/activation"
	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
)

// Handler handles activation requests.
type Handler struct {
	engine *activation.Engine
	logger *zap.Logger
}

// NewHandler creates an activate handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		engine: activation.NewEngine(db, logger),
		logger: logger,
	}
}

type activateRequest struct {
	UserID string `json:"user_id"`
}

type activateResponse struct {
	Version       string    `json:"version"`
	ActivatedAt   time.Time `json:"activated_at"`
	Warnings      []string  `json:"warnings,omitempty"`
	AdminEmail    string    `json:"admin_email"`
	AdminPassword string    `json:"admin_password"`
}

// ActivateHandler handles POST /api/chats/{chatID}/activate.
func (h *Handler) ActivateHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFromPath(r)

	var in activateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.UserID == "" {
		in.UserID = "default"
	}

	res, err := h.engine.Activate(r.Context(), in.UserID, chatID)
	if err != nil {
		var writeErr *bundle.StoreWriteError
		switch {
		case errors.Is(err, bundle.ErrStagedBundleNotFound):
			jsonutil.NotFound(w, "no generated content found for this chat, please generate first")
		case errors.As(err, &writeErr):
			// Live store is left partial; re-running activation is safe.
			h.logger.Error("activation write failed",
				zap.String("chat_id", chatID),
				zap.String("step", writeErr.Step),
				zap.Error(err))
			jsonutil.BadGateway(w, "activation partially failed at "+writeErr.Step+", please retry")
		case errors.Is(err, bundle.ErrValidation):
			jsonutil.Error(w, http.StatusUnprocessableEntity, "staged content is invalid, please re-generate")
		default:
			h.logger.Error("activation failed",
				zap.String("chat_id", chatID),
				zap.Error(err))
			jsonutil.InternalError(w, "activation failed")
		}
		return
	}

	jsonutil.OK(w, activateResponse{
		Version:       res.Version,
		ActivatedAt:   res.ActivatedAt,
		Warnings:      res.Warnings,
		AdminEmail:    res.AdminEmail,
		AdminPassword: res.AdminPassword,
	})
}
