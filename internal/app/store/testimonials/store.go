// internal/app/store/testimonials/store.go
package testimonials

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for testimonials.
const CollectionName = "testimonials"

// Store provides access to the testimonials collection.
type Store struct {
	c *mongo.Collection
}

// New creates a testimonial store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Document is one stored testimonial.
type Document struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Item models.Testimonial `bson:"item" json:"item"`
}

// ListOrdered returns all testimonials sorted by display order.
func (s *Store) ListOrdered(ctx context.Context) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "item.order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ReplaceAll deletes every testimonial and inserts the given ones with
// sequential order values in the given sequence. See navigation.ReplaceAll
// for the atomicity trade-off; the same reasoning applies here.
func (s *Store) ReplaceAll(ctx context.Context, items []models.Testimonial) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		item.Order = i
		docs[i] = Document{ID: primitive.NewObjectID(), Item: item}
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// Upsert writes one testimonial by id (direct-edit path).
func (s *Store) Upsert(ctx context.Context, id primitive.ObjectID, item models.Testimonial) (primitive.ObjectID, error) {
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"item": item}}, opts)
	return id, err
}

// DeleteByID removes one testimonial (direct-edit path).
func (s *Store) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
