// Package app assembles the stores, repositories and services shared by the
// HTTP server and the ops CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/repository"
	"github.com/noah-isme/pips-site-api/internal/service"
	"github.com/noah-isme/pips-site-api/internal/validation"
	"github.com/noah-isme/pips-site-api/pkg/config"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
	"github.com/noah-isme/pips-site-api/pkg/mailer"
	"github.com/noah-isme/pips-site-api/pkg/storage"
)

const notificationRetryDelay = 5 * time.Second

// App holds the wired services.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   *kvstore.Store
	Metrics *service.MetricsService

	// Notifier is nil when notification mail is disabled.
	Notifier *mailer.Notifier

	Auth        *service.AuthService
	Content     *service.ContentService
	Posts       *service.PostService
	Forms       *service.FormService
	Submissions *service.SubmissionService
	Exports     *service.ExportService
	SEO         *service.SEOService
	Search      *service.SearchService
}

// New opens the configured store backend and wires every service over it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	backend, err := kvstore.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}

	metrics := service.NewMetricsService()
	store := kvstore.New(backend, logger.Named("store"), kvstore.WithObserver(metrics))

	engine, err := validation.Load(cfg.Forms.DefinitionsFile)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("prepare export storage: %w", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	validate := validator.New()

	contacts := repository.NewContactRepository(store)
	gallery := repository.NewGalleryRepository(store, nil)
	notices := repository.NewNoticeRepository(store, nil)
	uniforms := repository.NewUniformRepository(store, nil)
	posts := repository.NewPostRepository(store)
	submissions := repository.NewSubmissionRepository(store)
	drafts := repository.NewDraftRepository(store)
	validationLogs := repository.NewValidationLogRepository(store, cfg.Forms.ValidationLogSize)
	searches := repository.NewSearchAnalyticsRepository(store, cfg.Search.AnalyticsSize)

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Metrics: metrics,
	}

	formsCfg := service.FormServiceConfig{
		SchoolName:             cfg.School.Name,
		MailTo:                 cfg.School.MailTo,
		NotifyEmail:            cfg.School.NotifyEmail,
		DraftTTL:               cfg.Forms.DraftTTL,
		MailHandoffDelay:       cfg.Forms.MailHandoffDelay,
		ClipboardFallbackDelay: cfg.Forms.ClipboardFallbackDelay,
		RedirectDelay:          cfg.Forms.RedirectDelay,
		SuccessBannerTTL:       cfg.Forms.SuccessBannerTTL,
		ErrorBannerTTL:         cfg.Forms.ErrorBannerTTL,
	}
	formLogger := logger.Named("forms")
	if cfg.Notifications.Enabled {
		a.Notifier = mailer.NewNotifier(newSender(cfg.Notifications, logger), mailer.NotifierConfig{
			Workers:    cfg.Notifications.Workers,
			Retries:    cfg.Notifications.Retries,
			RetryDelay: notificationRetryDelay,
			Logger:     logger.Named("notify"),
			OnDelivery: metrics.RecordNotification,
		})
		a.Forms = service.NewFormService(engine, submissions, validationLogs, drafts, a.Notifier, metrics, formsCfg, formLogger)
	} else {
		a.Forms = service.NewFormService(engine, submissions, validationLogs, drafts, nil, metrics, formsCfg, formLogger)
	}

	a.Auth = service.NewAuthService(validate, logger.Named("auth"), service.AuthConfig{
		AdminEmail:        cfg.Admin.Email,
		AdminName:         cfg.Admin.Name,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
	})
	a.Content = service.NewContentService(contacts, gallery, notices, uniforms, validate, logger.Named("content"))
	a.Posts = service.NewPostService(posts, validate, logger.Named("posts"), cfg.School.Name)
	a.Submissions = service.NewSubmissionService(submissions, validationLogs, engine, validate, logger.Named("submissions"))
	a.Exports = service.NewExportService(submissions, engine, files, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, validate, logger.Named("exports"))
	a.SEO = service.NewSEOService(service.SEOConfig{
		SchoolName:     cfg.School.Name,
		BaseURL:        cfg.School.BaseURL,
		MaxQueryLength: cfg.Search.MaxQueryLength,
	})
	a.Search = service.NewSearchService(notices, uniforms, posts, searches, a.SEO, logger.Named("search"))

	return a, nil
}

func newSender(cfg config.NotificationConfig, logger *zap.Logger) mailer.Sender {
	if cfg.Driver == mailer.DriverSendgrid {
		if cfg.SendgridAPIKey != "" {
			return mailer.NewSendgridSender(cfg.SendgridAPIKey, cfg.FromName, cfg.FromEmail)
		}
		logger.Warn("SENDGRID_API_KEY is empty, notification mail will only be logged")
	}
	return mailer.NewLogSender(logger.Named("mail"))
}

// Start launches the background notification workers.
func (a *App) Start(ctx context.Context) {
	if a.Notifier != nil {
		a.Notifier.Start(ctx)
	}
}

// Close stops the workers and releases the store backend.
func (a *App) Close() error {
	if a.Notifier != nil {
		a.Notifier.Stop()
	}
	return a.Store.Backend().Close()
}
