// Package indexes ensures the MongoDB indexes every store relies on.
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup (and by the test harness). Each ensure*
function is idempotent. Errors are aggregated so every problem is visible
and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	singletons := []string{"site_settings", "email_settings", "admin_credentials", "live_site"}
	for _, coll := range singletons {
		if err := ensureSingleton(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}
	if err := ensurePages(ctx, db); err != nil {
		problems = append(problems, "pages: "+err.Error())
	}
	if err := ensureNavigation(ctx, db); err != nil {
		problems = append(problems, "navigation: "+err.Error())
	}
	if err := ensureTestimonials(ctx, db); err != nil {
		problems = append(problems, "testimonials: "+err.Error())
	}
	if err := ensureSections(ctx, db); err != nil {
		problems = append(problems, "sections: "+err.Error())
	}
	if err := ensureStagedBundles(ctx, db); err != nil {
		problems = append(problems, "staged_bundles: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Singleton collections hold exactly one document addressed by
// {singleton: true}; the unique index enforces that shape.
func ensureSingleton(ctx context.Context, db *mongo.Database, coll string) error {
	return ensureIndexSet(ctx, db.Collection(coll), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetName("uniq_singleton").SetUnique(true),
		},
	})
}

func ensurePages(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("pages"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "page_id", Value: 1}},
			Options: options.Index().SetName("uniq_page_id").SetUnique(true),
		},
	})
}

func ensureNavigation(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("navigation"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "item.order", Value: 1}},
			Options: options.Index().SetName("idx_nav_order"),
		},
	})
}

func ensureTestimonials(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("testimonials"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "item.order", Value: 1}},
			Options: options.Index().SetName("idx_testimonial_order"),
		},
	})
}

func ensureSections(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("sections"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "page_id", Value: 1},
				{Key: "section.order", Value: 1},
			},
			Options: options.Index().SetName("idx_sections_page_order"),
		},
	})
}

func ensureStagedBundles(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("staged_bundles"), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "chat_id", Value: 1},
			},
			Options: options.Index().SetName("uniq_staged_user_chat").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_staged_created_at"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		// Load existing indexes keyed by key pattern.
		existing := map[string]existingIndex{}
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) {
				continue
			}
			// Options mismatch (e.g. upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				continue
			}
			zap.L().Info("index dropped and recreated",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.String("took", time.Since(start).String()))
			continue
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				zap.L().Warn("index ensure failed (options conflict)",
					zap.String("collection", coll.Name()),
					zap.String("name", desiredName),
					zap.Error(err))
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
