package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	digest "newsdesk/contexts/community-experience/digest-service"
	digestports "newsdesk/contexts/community-experience/digest-service/ports"
	notifications "newsdesk/contexts/community-experience/notification-service"
	notificationports "newsdesk/contexts/community-experience/notification-service/ports"
	identity "newsdesk/contexts/identity-access/identity-service"
	identitycrypto "newsdesk/contexts/identity-access/identity-service/adapters/crypto"
	identityports "newsdesk/contexts/identity-access/identity-service/ports"
	articles "newsdesk/contexts/publishing/article-service"
	articleports "newsdesk/contexts/publishing/article-service/ports"
	comments "newsdesk/contexts/publishing/comment-service"
	commentports "newsdesk/contexts/publishing/comment-service/ports"
	sections "newsdesk/contexts/publishing/section-service"
	sectionports "newsdesk/contexts/publishing/section-service/ports"
	"newsdesk/internal/platform/clock"
	"newsdesk/internal/platform/config"
	"newsdesk/internal/platform/db"
	"newsdesk/internal/platform/httpserver"
	"newsdesk/internal/platform/mail"
	"newsdesk/internal/storage/memory"
	"newsdesk/internal/storage/postgres"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	dispatcher   digest.Module
	pollInterval time.Duration
	logger       *slog.Logger
}

// BuildAPI wires the API process. With POSTGRES_DSN set it runs against
// the shared gorm repository; without it the process self-hosts on the
// in-memory store, optionally seeded with the demo dataset.
func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	mailer := mail.SMTPMailer{Logger: logger}

	var pg *db.Postgres
	var deps moduleDeps
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewRepository(pg.DB, logger)
		if err := repo.AutoMigrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
		deps = moduleDeps{store: repo, ids: postgres.UUIDGenerator{}}
	} else {
		store := memory.NewStore()
		if cfg.SeedDemoData {
			if err := store.Seed(context.Background(), identitycrypto.BcryptHasher{}); err != nil {
				return nil, err
			}
		}
		deps = moduleDeps{store: store, ids: store}
	}

	server := httpserver.New(
		buildIdentity(deps, logger),
		buildSections(deps, logger),
		buildArticles(deps, logger),
		buildComments(deps, logger),
		buildNotifications(deps, logger),
		buildDigest(deps, mailer, logger),
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

// BuildWorker wires the digest dispatcher. The worker always runs against
// Postgres; the in-memory store is process-local and has nothing for a
// second process to poll.
func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	repo := postgres.NewRepository(pg.DB, logger)
	if err := repo.AutoMigrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	deps := moduleDeps{store: repo, ids: postgres.UUIDGenerator{}}
	return &WorkerApp{
		postgres:     pg,
		dispatcher:   buildDigest(deps, mail.SMTPMailer{Logger: logger}, logger),
		pollInterval: cfg.DigestPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)
	return w.dispatcher.Dispatcher.Run(ctx, w.pollInterval)
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

// backend is the surface both storage modes share: every service
// repository port plus the cross-context directory reads. The method
// sets overlap (SectionExists, GetActor); the signatures are identical
// so the embeddings merge.
type backend interface {
	identityports.Repository
	sectionports.Repository
	articleports.Repository
	commentports.Repository
	notificationports.Repository
	digestports.Repository
	articleports.Directory
}

type moduleDeps struct {
	store backend
	ids   identityports.IDGenerator
}

func buildIdentity(deps moduleDeps, logger *slog.Logger) identity.Module {
	return identity.NewModule(identity.Dependencies{
		Repository: deps.store,
		IDs:        deps.ids,
		Logger:     logger,
	})
}

func buildSections(deps moduleDeps, logger *slog.Logger) sections.Module {
	return sections.NewModule(sections.Dependencies{
		Repository: deps.store,
		Directory:  deps.store,
		Logger:     logger,
	})
}

func buildArticles(deps moduleDeps, logger *slog.Logger) articles.Module {
	return articles.NewModule(articles.Dependencies{
		Repository: deps.store,
		Directory:  deps.store,
		IDs:        deps.ids,
		Clock:      clock.System{},
		Logger:     logger,
	})
}

func buildComments(deps moduleDeps, logger *slog.Logger) comments.Module {
	return comments.NewModule(comments.Dependencies{
		Repository: deps.store,
		Directory:  deps.store,
		IDs:        deps.ids,
		Clock:      clock.System{},
		Logger:     logger,
	})
}

func buildNotifications(deps moduleDeps, logger *slog.Logger) notifications.Module {
	return notifications.NewModule(notifications.Dependencies{
		Repository: deps.store,
		Logger:     logger,
	})
}

func buildDigest(deps moduleDeps, mailer digestports.Mailer, logger *slog.Logger) digest.Module {
	return digest.NewModule(digest.Dependencies{
		Repository: deps.store,
		Directory:  deps.store,
		Mailer:     mailer,
		Clock:      clock.System{},
		Logger:     logger,
	})
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
