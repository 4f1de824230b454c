// internal/app/store/sections/store.go
package sections

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// CollectionName is the MongoDB collection for page sections.
const CollectionName = "sections"

// Store provides access to the sections collection. Sections are scoped by
// page_id; wholesale replacement operates per page scope so pages outside an
// incoming bundle keep their sections.
type Store struct {
	c *mongo.Collection
}

// New creates a section store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Document is one stored section.
type Document struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PageID  models.PageID      `bson:"page_id" json:"page_id"`
	Section models.Section     `bson:"section" json:"section"`
}

// ListByPage returns the sections for one page sorted by display order.
func (s *Store) ListByPage(ctx context.Context, pageID models.PageID) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "section.order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"page_id": pageID}, opts)
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

// ListAll returns every section sorted by page then order.
func (s *Store) ListAll(ctx context.Context) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "page_id", Value: 1},
		{Key: "section.order", Value: 1},
	})
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

// ReplaceForPages deletes every section whose page_id is in pageIDs and
// inserts the given sections, renumbering order sequentially per page in the
// given sequence. Sections for pages outside pageIDs are untouched. Delete
// and insert are separate operations; repeating the call is idempotent.
func (s *Store) ReplaceForPages(ctx context.Context, pageIDs []models.PageID, secs []models.Section) error {
	if len(pageIDs) == 0 {
		return nil
	}

	if _, err := s.c.DeleteMany(ctx, bson.M{"page_id": bson.M{"$in": pageIDs}}); err != nil {
		return err
	}
	if len(secs) == 0 {
		return nil
	}

	perPage := make(map[models.PageID]int, len(pageIDs))
	docs := make([]interface{}, 0, len(secs))
	for _, sec := range secs {
		sec.Order = perPage[sec.PageID]
		perPage[sec.PageID]++
		docs = append(docs, Document{
			ID:      primitive.NewObjectID(),
			PageID:  sec.PageID,
			Section: sec,
		})
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// Upsert writes one section by id (direct-edit path).
func (s *Store) Upsert(ctx context.Context, id primitive.ObjectID, sec models.Section) (primitive.ObjectID, error) {
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": bson.M{"page_id": sec.PageID, "section": sec}}
	_, err := s.c.UpdateByID(ctx, id, update, opts)
	return id, err
}

// DeleteByID removes one section (direct-edit path).
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
