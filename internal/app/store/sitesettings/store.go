// internal/app/store/sitesettings/store.go
package sitesettings

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for the site settings singleton.
const CollectionName = "site_settings"

// Store provides access to the site_settings collection.
// The live site has exactly one settings document (singleton filter).
type Store struct {
	c *mongo.Collection
}

// New creates a site settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// document is the stored shape: the bundle's settings plus singleton and
// audit fields.
type document struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Singleton bool                `bson:"singleton"`
	Settings  models.SiteSettings `bson:"settings"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

// Get returns the live site settings, or nil if the site has never been
// activated or seeded.
func (s *Store) Get(ctx context.Context) (*models.SiteSettings, error) {
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

// Replace overwrites the entire settings singleton with the given value.
// Upsert so it works whether or not the site was ever activated.
func (s *Store) Replace(ctx context.Context, settings models.SiteSettings) error {
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

// Exists reports whether settings have ever been written.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
