// internal/app/store/staging/store.go
package staging

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for staged bundles.
const CollectionName = "staged_bundles"

// Store persists staged bundles keyed by (user_id, chat_id). One snapshot
// per pair: re-generation under the same chat replaces the earlier attempt
// (last-write-wins), never appends. Staging never touches the live
// collections.
type Store struct {
	c *mongo.Collection
}

// New creates a staging store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Stage persists a newly produced bundle for (userID, chatID), overwriting
// any earlier snapshot under the same pair.
func (s *Store) Stage(ctx context.Context, userID, chatID, description string, b models.ContentBundle) error {
	filter := bson.M{"user_id": userID, "chat_id": chatID}
	update := bson.M{
		"$set": bson.M{
			"description": description,
			"bundle":      b,
			"created_at":  time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":     primitive.NewObjectID(),
			"user_id": userID,
			"chat_id": chatID,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// ReadStaged returns the staged snapshot for (userID, chatID), or
// bundle.ErrStagedBundleNotFound if the pair has no snapshot.
func (s *Store) ReadStaged(ctx context.Context, userID, chatID string) (*models.StagedBundle, error) {
	var staged models.StagedBundle
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "chat_id": chatID}).Decode(&staged)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: user %s chat %s", bundle.ErrStagedBundleNotFound, userID, chatID)
	}
	if err != nil {
		return nil, err
	}
	return &staged, nil
}
