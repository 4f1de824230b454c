// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/pages"
	"github.com/sitesmith/sitesmith/internal/app/store/sitesettings"
	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// SeedAll seeds placeholder content for a site that has never been
// activated, so the public pages render something before the first bundle
// goes live. Activation overwrites all of it; seeding never touches a
// document that already exists.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedSiteSettings(ctx, db, logger); err != nil {
		return err
	}
	return seedPages(ctx, db, logger)
}

func seedSiteSettings(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := sitesettings.New(db)

	exists, err := store.Exists(ctx)
	if err != nil {
		logger.Error("failed to check for site settings", zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	if err := store.Replace(ctx, models.SiteSettings{
		BusinessName:   "Your Business",
		SiteTitle:      "Your Business",
		SEODescription: "Describe your business to generate a complete website.",
		Theme:          "default",
		LogoText:       "Your Business",
	}); err != nil {
		logger.Error("failed to seed site settings", zap.Error(err))
		return err
	}
	logger.Info("seeded default site settings")
	return nil
}

func seedPages(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := pages.New(db)

	defaults := []models.Page{
		{
			PageID: models.PageHome,
			Hero: &models.Hero{
				Title:    "Welcome",
				Subtitle: "Describe your business and activate a generated site to replace this placeholder.",
			},
		},
		{
			PageID: models.PageContact,
			Hero: &models.Hero{
				Title:    "Contact",
				Subtitle: "Contact details appear here after the site is activated.",
			},
		},
	}

	for _, page := range defaults {
		exists, err := store.Exists(ctx, page.PageID)
		if err != nil {
			logger.Error("failed to check if page exists",
				zap.String("page_id", string(page.PageID)),
				zap.Error(err))
			return err
		}
		if !exists {
			if err := store.Replace(ctx, page.PageID, page); err != nil {
				logger.Error("failed to seed page",
					zap.String("page_id", string(page.PageID)),
					zap.Error(err))
				return err
			}
			logger.Info("seeded default page", zap.String("page_id", string(page.PageID)))
		}
	}

	return nil
}
