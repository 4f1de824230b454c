// Package activation publishes a staged content bundle to the live site.
//
// Activation replaces the live store wholesale: every singleton document and
// every bundle-owned collection ends up describing the staged bundle and
// nothing else. Singletons are replaced as one batch where the deployment
// supports transactions; collection replacement is delete-then-insert
// without a spanning transaction, so a concurrent reader can observe an
// empty or half-populated collection for the duration of one replace. That
// window is an accepted trade-off: activation runs behind an explicit user
// action with a visible loading state, and the presentation layer tolerates
// transiently empty lists.
//
// There is no automatic rollback. On a write failure activation stops,
// reports which sub-step failed, and leaves the store in its current state;
// the recovery path is to re-run activation, which is idempotent per
// collection.
package activation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sitesmith/sitesmith/internal/app/store/admincreds"
	"github.com/sitesmith/sitesmith/internal/app/store/emailsettings"
	"github.com/sitesmith/sitesmith/internal/app/store/livesite"
	"github.com/sitesmith/sitesmith/internal/app/store/navigation"
	"github.com/sitesmith/sitesmith/internal/app/store/pages"
	"github.com/sitesmith/sitesmith/internal/app/store/sections"
	"github.com/sitesmith/sitesmith/internal/app/store/sitesettings"
	"github.com/sitesmith/sitesmith/internal/app/store/staging"
	"github.com/sitesmith/sitesmith/internal/app/store/testimonials"
	"github.com/sitesmith/sitesmith/internal/app/system/authutil"
	"github.com/sitesmith/sitesmith/internal/app/system/bundle"
	"github.com/sitesmith/sitesmith/internal/app/system/txn"
	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// Engine publishes staged bundles to the live content store.
type Engine struct {
	db       *mongo.Database
	staged   *staging.Store
	settings *sitesettings.Store
	pages    *pages.Store
	nav      *navigation.Store
	tms      *testimonials.Store
	secs     *sections.Store
	emails   *emailsettings.Store
	creds    *admincreds.Store
	live     *livesite.Store
	log      *zap.Logger
}

// NewEngine creates an activation engine over the given database.
func NewEngine(db *mongo.Database, log *zap.Logger) *Engine {
	return &Engine{
		db:       db,
		staged:   staging.New(db),
		settings: sitesettings.New(db),
		pages:    pages.New(db),
		nav:      navigation.New(db),
		tms:      testimonials.New(db),
		secs:     sections.New(db),
		emails:   emailsettings.New(db),
		creds:    admincreds.New(db),
		live:     livesite.New(db),
		log:      log,
	}
}

// Result reports a completed activation. AdminPassword is the clear-text
// credential generated with the bundle; it is returned exactly once, here,
// and only its bcrypt hash is stored.
type Result struct {
	Version       string    `json:"version"`
	ActivatedAt   time.Time `json:"activated_at"`
	Warnings      []string  `json:"warnings,omitempty"`
	AdminEmail    string    `json:"admin_email"`
	AdminPassword string    `json:"admin_password"`
}

// Activate loads the staged bundle for (userID, chatID) and publishes it.
// Returns bundle.ErrStagedBundleNotFound if the pair has no staged
// snapshot, a *bundle.StoreWriteError when a live write fails mid-way.
func (e *Engine) Activate(ctx context.Context, userID, chatID string) (*Result, error) {
	snapshot, err := e.staged.ReadStaged(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	return e.ActivateBundle(ctx, userID, chatID, &snapshot.Bundle)
}

// ActivateBundle publishes a bundle directly. The admin "Initialize
// Business Data" flow stages and activates in one request and already holds
// the bundle in memory.
func (e *Engine) ActivateBundle(ctx context.Context, userID, chatID string, b *models.ContentBundle) (*Result, error) {
	// Hard invariants are checked before any live write regardless of what
	// the caller did; a bundle that fails here writes nothing.
	warnings, err := bundle.Validate(b)
	if err != nil {
		return nil, err
	}

	passwordHash, err := authutil.HashPassword(b.AdminCredentials.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin credential: %w", err)
	}

	e.log.Info("activating bundle",
		zap.String("user_id", userID),
		zap.String("chat_id", chatID),
		zap.Int("pages", len(b.Pages)),
		zap.Int("navigation", len(b.Navigation)),
		zap.Int("testimonials", len(b.Testimonials)),
		zap.Int("sections", len(b.Sections)))

	warnings = append(warnings, e.replaceSingletons(ctx, b, passwordHash)...)

	if err := e.replaceCollections(ctx, b); err != nil {
		return nil, err
	}

	site := models.LiveSite{
		Version:     uuid.NewString(),
		UserID:      userID,
		ChatID:      chatID,
		ActivatedAt: time.Now().UTC(),
	}
	if err := e.live.Set(ctx, site); err != nil {
		return nil, &bundle.StoreWriteError{Step: "live_site", Err: err}
	}

	e.log.Info("bundle activated",
		zap.String("version", site.Version),
		zap.Strings("warnings", warnings))

	return &Result{
		Version:       site.Version,
		ActivatedAt:   site.ActivatedAt,
		Warnings:      warnings,
		AdminEmail:    b.AdminCredentials.Email,
		AdminPassword: b.AdminCredentials.Password,
	}, nil
}

// replaceSingletons writes every singleton document of the bundle. It first
// attempts one atomic batch; if the batch fails it degrades to individual
// writes, reporting per-document failures as warnings. Singletons are
// independent, so partial singleton replacement is an acceptable degraded
// state and never blocks collection replacement.
func (e *Engine) replaceSingletons(ctx context.Context, b *models.ContentBundle, passwordHash string) []string {
	writeAll := func(sc context.Context) error {
		if err := e.settings.Replace(sc, b.SiteSettings); err != nil {
			return fmt.Errorf("site_settings: %w", err)
		}
		for _, id := range sortedPageIDs(b.Pages) {
			if err := e.pages.Replace(sc, id, b.Pages[id]); err != nil {
				return fmt.Errorf("pages/%s: %w", id, err)
			}
		}
		if err := e.emails.Replace(sc, b.EmailSettings); err != nil {
			return fmt.Errorf("email_settings: %w", err)
		}
		if err := e.creds.Replace(sc, b.AdminCredentials.Email, passwordHash); err != nil {
			return fmt.Errorf("admin_credentials: %w", err)
		}
		return nil
	}

	err := txn.Run(ctx, e.db, e.log, writeAll)
	if err == nil {
		return nil
	}
	e.log.Warn("singleton batch failed, writing singletons individually", zap.Error(err))

	var warnings []string
	report := func(name string, err error) {
		if err != nil {
			msg := fmt.Sprintf("singleton %s not replaced: %v", name, err)
			e.log.Warn("singleton write failed", zap.String("document", name), zap.Error(err))
			warnings = append(warnings, msg)
		}
	}

	report("site_settings", e.settings.Replace(ctx, b.SiteSettings))
	for _, id := range sortedPageIDs(b.Pages) {
		report("pages/"+string(id), e.pages.Replace(ctx, id, b.Pages[id]))
	}
	report("email_settings", e.emails.Replace(ctx, b.EmailSettings))
	report("admin_credentials", e.creds.Replace(ctx, b.AdminCredentials.Email, passwordHash))
	return warnings
}

// replaceCollections swaps the bundle-owned collections. Any failure here
// is unrecoverable within this call: later collections are not attempted
// and the error names the sub-step that failed.
func (e *Engine) replaceCollections(ctx context.Context, b *models.ContentBundle) error {
	if err := e.nav.ReplaceAll(ctx, b.Navigation); err != nil {
		return &bundle.StoreWriteError{Step: "navigation", Err: err}
	}
	if err := e.tms.ReplaceAll(ctx, b.Testimonials); err != nil {
		return &bundle.StoreWriteError{Step: "testimonials", Err: err}
	}
	if err := e.secs.ReplaceForPages(ctx, sectionScope(b), b.Sections); err != nil {
		return &bundle.StoreWriteError{Step: "sections", Err: err}
	}
	return nil
}

// sectionScope returns the page ids whose sections this bundle owns: every
// page present in the bundle plus any page referenced by a section. Orphan
// section pages are included so re-activation stays idempotent (their
// entries would otherwise accumulate across runs). Pages outside the scope
// keep their sections.
func sectionScope(b *models.ContentBundle) []models.PageID {
	seen := make(map[models.PageID]bool, len(b.Pages))
	var scope []models.PageID
	for id := range b.Pages {
		if !seen[id] {
			seen[id] = true
			scope = append(scope, id)
		}
	}
	for _, sec := range b.Sections {
		if !seen[sec.PageID] {
			seen[sec.PageID] = true
			scope = append(scope, sec.PageID)
		}
	}
	sort.Slice(scope, func(i, j int) bool { return scope[i] < scope[j] })
	return scope
}

// sortedPageIDs returns the bundle's page ids in a stable order so write
// sequence and failure reports are deterministic.
func sortedPageIDs(m map[models.PageID]models.Page) []models.PageID {
	ids := make([]models.PageID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
