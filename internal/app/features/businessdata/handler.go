// Package businessdata provides the admin "Initialize Business Data" flow:
// pick a business type, get a complete template site staged and activated
// in one request. No generative call is involved.
//
// Endpoint:
//   - POST /api/admin/business-data {"business_type": "gym"}
package businessdata

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/staging"
	"github.com/sitesmith/sitesmith/internal/app/system/activation"
	"github.com/sitesmith/sitesmith/internal/app/system/htmlsanitize"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
	"github.com/sitesmith/sitesmith/internal/app/system/producer"
)

// adminUserID scopes staged snapshots created through the admin panel,
// keeping them apart from chat-driven generations.
const adminUserID = "admin"

// Handler handles business data initialization.
type Handler struct {
	templates *producer.TemplateProducer
	staged    *staging.Store
	engine    *activation.Engine
	logger    *zap.Logger
}

// NewHandler creates a businessdata handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		templates: producer.NewTemplate(),
		staged:    staging.New(db),
		engine:    activation.NewEngine(db, logger),
		logger:    logger,
	}
}

type initRequest struct {
	BusinessType string `json:"business_type"`
}

type initResponse struct {
	ChatID        string    `json:"chat_id"`
	Version       string    `json:"version"`
	ActivatedAt   time.Time `json:"activated_at"`
	Warnings      []string  `json:"warnings,omitempty"`
	AdminEmail    string    `json:"admin_email"`
	AdminPassword string    `json:"admin_password"`
}

// InitHandler handles POST /api/admin/business-data. The template bundle is
// staged under a synthetic admin chat id and activated in the same request.
func (h *Handler) InitHandler(w http.ResponseWriter, r *http.Request) {
	var in initRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	b, err := h.templates.Bundle(producer.BusinessType(in.BusinessType))
	if err != nil {
		jsonutil.BadRequest(w, "unknown business type: "+in.BusinessType)
		return
	}
	htmlsanitize.SanitizeBundle(b)

	chatID := "admin-init-" + uuid.NewString()
	if err := h.staged.Stage(r.Context(), adminUserID, chatID, "template: "+in.BusinessType, *b); err != nil {
		h.logger.Error("failed to stage template bundle",
			zap.String("business_type", in.BusinessType),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to stage template content")
		return
	}

	res, err := h.engine.Activate(r.Context(), adminUserID, chatID)
	if err != nil {
		h.logger.Error("template activation failed",
			zap.String("business_type", in.BusinessType),
			zap.String("chat_id", chatID),
			zap.Error(err))
		jsonutil.BadGateway(w, "template content staged but activation failed, please retry activation")
		return
	}

	h.logger.Info("business data initialized",
		zap.String("business_type", in.BusinessType),
		zap.String("version", res.Version))

	jsonutil.OK(w, initResponse{
		ChatID:        chatID,
		Version:       res.Version,
		ActivatedAt:   res.ActivatedAt,
		Warnings:      res.Warnings,
		AdminEmail:    res.AdminEmail,
		AdminPassword: res.AdminPassword,
	})
}
