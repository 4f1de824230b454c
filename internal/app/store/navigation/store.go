// internal/app/store/navigation/store.go
package navigation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for navigation entries.
const CollectionName = "navigation"

// Store provides access to the navigation collection. Display order is an
// explicit integer field, not array position; readers sort by it.
type Store struct {
	c *mongo.Collection
}

// New creates a navigation store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Document is one stored navigation entry.
type Document struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Item models.NavItem     `bson:"item" json:"item"`
}

// ListOrdered returns all entries sorted by item order.
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

// ReplaceAll deletes every entry and inserts the given items with sequential
// order values 0..n-1 in the given sequence, discarding any gaps the input
// carried. The delete and the insert are separate operations: the write
// volume routinely exceeds transaction limits, so there is a window where
// the collection is empty. Repeating ReplaceAll with the same input is
// idempotent.
func (s *Store) ReplaceAll(ctx context.Context, items []models.NavItem) error {
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

// Upsert writes one entry by id (direct-edit path). A zero id inserts.
func (s *Store) Upsert(ctx context.Context, id primitive.ObjectID, item models.NavItem) (primitive.ObjectID, error) {
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"item": item}}, opts)
	return id, err
}

// DeleteByID removes one entry (direct-edit path).
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
