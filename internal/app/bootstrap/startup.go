// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/livesite"
)

// Startup runs once after DB connections and schema/index setup are
// complete, but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error aborts startup and prevents the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	site, err := livesite.New(deps.MongoDatabase).Get(ctx)
	if err != nil {
		logger.Error("failed to read live-site state", zap.Error(err))
		return err
	}
	if site == nil {
		logger.Info("no site has been activated yet; serving placeholder content")
		return nil
	}
	logger.Info("serving activated site",
		zap.String("version", site.Version),
		zap.Time("activated_at", site.ActivatedAt))
	return nil
}
