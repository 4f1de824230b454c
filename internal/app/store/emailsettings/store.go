// internal/app/store/emailsettings/store.go
package emailsettings

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for the email settings singleton.
const CollectionName = "email_settings"

// Store provides access to the email_settings singleton.
type Store struct {
	c *mongo.Collection
}

// New creates an email settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

type document struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Singleton bool                 `bson:"singleton"`
	Settings  models.EmailSettings `bson:"settings"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// Get returns the email templates, or nil if none were ever written.
func (s *Store) Get(ctx context.Context) (*models.EmailSettings, error) {
	var doc document
	err := s.c.FindOne(ctx, bson.M{"singleton": true}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Settings, nil
}

// Replace overwrites the email settings singleton wholesale.
func (s *Store) Replace(ctx context.Context, settings models.EmailSettings) error {
	update := bson.M{
		"$set": bson.M{
			"singleton":  true,
			"settings":   settings,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"singleton": true}, update, opts)
	return err
}
