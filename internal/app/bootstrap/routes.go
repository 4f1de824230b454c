// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	activatefeature "github.com/sitesmith/sitesmith/internal/app/features/activate"
	businessdatafeature "github.com/sitesmith/sitesmith/internal/app/features/businessdata"
	contactfeature "github.com/sitesmith/sitesmith/internal/app/features/contact"
	generatefeature "github.com/sitesmith/sitesmith/internal/app/features/generate"
	healthfeature "github.com/sitesmith/sitesmith/internal/app/features/health"
	loginfeature "github.com/sitesmith/sitesmith/internal/app/features/login"
	siteadminfeature "github.com/sitesmith/sitesmith/internal/app/features/siteadmin"
	"github.com/sitesmith/sitesmith/internal/app/system/auth"
	"github.com/sitesmith/sitesmith/internal/app/system/jsonutil"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed.
//
// Route groups:
//   - /api/chats/*  - public generation pipeline (generate, activate)
//   - /api/contact  - public contact form
//   - /api/admin/*  - admin panel API (session auth + CSRF)
//   - /healthz      - health and probe endpoints
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware. The timeout bounds generative producer calls too,
	// so it must exceed the producer timeout.
	requestTimeout := appCfg.ProducerTimeout + 30*time.Second
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.CORSFromConfig(coreCfg))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// CSRF protection for the session-authenticated admin API. The public
	// pipeline and probe endpoints carry no session, so CSRF does not apply
	// to them. Admin clients fetch a token from GET /api/admin/csrf and
	// send it back in the X-CSRF-Token header.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("sitesmith_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			jsonutil.Error(w, http.StatusForbidden, "CSRF token invalid or missing")
		})),
	}
	if !secure {
		// In dev mode, trust localhost origins for CSRF validation.
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			path := req.URL.Path
			if strings.HasPrefix(path, "/api/chats/") ||
				strings.HasPrefix(path, "/api/contact") ||
				strings.HasPrefix(path, "/healthz") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// Public generation pipeline.
	generateHandler := generatefeature.NewHandler(deps.MongoDatabase, deps.Producer, logger)
	activateHandler := activatefeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/api/chats", func(r chi.Router) {
		r.Post("/{chatID}/generate", generateHandler.GenerateHandler)
		r.Post("/{chatID}/activate", activateHandler.ActivateHandler)
	})

	// Public contact form.
	contactHandler := contactfeature.NewHandler(deps.MongoDatabase, deps.Mailer, logger)
	r.Mount("/api/contact", contactfeature.Routes(contactHandler))

	// Admin panel API.
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	businessdataHandler := businessdatafeature.NewHandler(deps.MongoDatabase, logger)
	siteadminHandler := siteadminfeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/csrf", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-CSRF-Token", csrf.Token(req))
			jsonutil.OK(w, map[string]string{"csrf_token": csrf.Token(req)})
		})
		r.Mount("/", loginfeature.Routes(loginHandler))
		r.Mount("/business-data", businessdatafeature.Routes(businessdataHandler, sessionMgr))
		r.Mount("/site", siteadminfeature.Routes(siteadminHandler, sessionMgr))
	})

	// Health check endpoints for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/healthz", healthfeature.Routes(healthHandler))

	logger.Info("HTTP handler built",
		zap.Duration("request_timeout", requestTimeout),
		zap.Bool("secure_cookies", secure))

	return r, nil
}
