// internal/app/store/pages/store.go
package pages

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for page singletons.
const CollectionName = "pages"

// Store provides access to the pages collection. Each site page is a
// singleton document keyed by page_id.
type Store struct {
	c *mongo.Collection
}

// New creates a page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PageID    models.PageID      `bson:"page_id"`
	Page      models.Page        `bson:"page"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Get returns one page by id, or nil if it has never been written.
func (s *Store) Get(ctx context.Context, id models.PageID) (*models.Page, error) {
	var doc document
	err := s.c.FindOne(ctx, bson.M{"page_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Page, nil
}

// GetAll returns every stored page keyed by page id.
func (s *Store) GetAll(ctx context.Context) (map[models.PageID]models.Page, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make(map[models.PageID]models.Page, len(docs))
	for _, d := range docs {
		out[d.PageID] = d.Page
	}
	return out, nil
}

// Replace overwrites one page singleton wholesale.
func (s *Store) Replace(ctx context.Context, id models.PageID, page models.Page) error {
	page.PageID = id
	update := bson.M{
		"$set": bson.M{
			"page":       page,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":     primitive.NewObjectID(),
			"page_id": id,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"page_id": id}, update, opts)
	return err
}

// Exists reports whether the page with the given id has been written.
func (s *Store) Exists(ctx context.Context, id models.PageID) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"page_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
