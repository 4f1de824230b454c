// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/system/indexes"
	"github.com/sitesmith/sitesmith/internal/app/system/mailer"
	"github.com/sitesmith/sitesmith/internal/app/system/producer"
	"github.com/sitesmith/sitesmith/internal/app/system/seeding"
)

// ConnectDB connects to MongoDB and builds the backend dependencies.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema
// and Startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	p, err := buildProducer(appCfg, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("failed to initialize content producer: %w", err)
	}

	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)
	logger.Info("initialized email mailer",
		zap.String("host", appCfg.MailSMTPHost),
		zap.Int("port", appCfg.MailSMTPPort),
	)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Producer:      p,
		Mailer:        mail,
	}, nil
}

// buildProducer selects the content producer per configuration. The
// template strategy serves deployments without access to the generative
// API; it produces from hand-authored bundles keyed by business type.
func buildProducer(appCfg AppConfig, logger *zap.Logger) (producer.Producer, error) {
	src, err := producer.SourceFor(appCfg.ProducerStrategy)
	if err != nil {
		return nil, err
	}
	p, err := producer.Build(src, producer.Config{
		APIKey:      appCfg.ProducerAPIKey,
		BaseURL:     appCfg.ProducerBaseURL,
		Model:       appCfg.ProducerModel,
		Timeout:     appCfg.ProducerTimeout,
		MaxAttempts: appCfg.ProducerMaxAttempts,
	}, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("initialized content producer",
		zap.String("strategy", appCfg.ProducerStrategy))
	return p, nil
}

// EnsureSchema sets up indexes and seed data.
//
// This runs after ConnectDB succeeds but before Startup and before the HTTP
// handler is built. The context has a timeout based on
// coreCfg.IndexBootTimeout, so long-running work should respect
// cancellation.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	logger.Info("seeding placeholder content")
	if err := seeding.SeedAll(ctx, db, logger); err != nil {
		logger.Error("failed to seed placeholder content", zap.Error(err))
		return err
	}

	logger.Info("database schema ensured successfully")
	return nil
}
