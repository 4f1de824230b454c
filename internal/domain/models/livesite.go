// internal/domain/models/livesite.go
package models

import "time"

// LiveSite is the singleton pointer naming the currently published bundle.
// Exactly one live bundle exists at any time; activation stamps this
// document last, after every singleton and collection write has been issued,
// giving the wholesale-replace invariant an auditable record and leaving
// room for a rollback-to-previous-version feature later.
type LiveSite struct {
	Version     string    `bson:"version" json:"version"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ChatID      string    `bson:"chat_id" json:"chat_id"`
	ActivatedAt time.Time `bson:"activated_at" json:"activated_at"`
}
