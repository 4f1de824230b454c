// internal/app/store/livesite/store.go
package livesite

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for the live-site pointer.
const CollectionName = "live_site"

// Store provides access to the live_site singleton: the record of which
// bundle is currently published. Activation stamps it last.
type Store struct {
	c *mongo.Collection
}

// New creates a live site store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Singleton bool               `bson:"singleton"`
	Site      models.LiveSite    `bson:"site"`
}

// Get returns the current live-site record, or nil if nothing was ever
// activated.
func (s *Store) Get(ctx context.Context) (*models.LiveSite, error) {
	var doc document
	err := s.c.FindOne(ctx, bson.M{"singleton": true}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Site, nil
}

// Set stamps the live-site singleton with the given record.
func (s *Store) Set(ctx context.Context, site models.LiveSite) error {
	update := bson.M{
		"$set": bson.M{
			"singleton": true,
			"site":      site,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"singleton": true}, update, opts)
	return err
}
