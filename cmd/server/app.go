package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lpetrosyan/vocab-api/internal/config"
	"github.com/lpetrosyan/vocab-api/internal/domain/srs"
	"github.com/lpetrosyan/vocab-api/internal/events"
	"github.com/lpetrosyan/vocab-api/internal/platform/gemini"
	"github.com/lpetrosyan/vocab-api/internal/platform/postgres"
	"github.com/lpetrosyan/vocab-api/internal/ratelimit"
	"github.com/lpetrosyan/vocab-api/internal/service"
	"github.com/lpetrosyan/vocab-api/internal/service/auth"
	"github.com/lpetrosyan/vocab-api/internal/store"
	"github.com/lpetrosyan/vocab-api/internal/task"
)

// application holds the shared dependencies so initialization and shutdown
// happen in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore   store.UserStore
	pairStore   store.PairStore
	wordStore   store.WordStore
	cardStore   store.CardStore
	setStore    store.SetStore
	reviewStore store.ReviewStore

	jwtService auth.JWTService
	srsService srs.Service
	limiter    *ratelimit.Limiter

	userService   *service.UserService
	wordService   *service.WordService
	reviewService *service.ReviewService

	eventEmitter *events.InMemoryEventEmitter
	taskRunner   *task.Runner
}

// newApplication wires every dependency. Word enrichment is optional: when
// no Gemini API key is configured the server runs without the background
// pipeline and words simply keep whatever content the user typed.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	bcryptVerifier := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewUserStore(db, logger)
	app.pairStore = postgres.NewPairStore(db, logger)
	app.wordStore = postgres.NewWordStore(db, logger)
	app.cardStore = postgres.NewCardStore(db, logger)
	app.setStore = postgres.NewSetStore(db, logger)
	app.reviewStore = postgres.NewReviewStore(db, logger)

	app.srsService = srs.NewService()
	app.limiter = ratelimit.New(ratelimit.DefaultWindows())

	if cfg.LLM.Enabled() {
		app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	}

	app.userService = service.NewUserService(
		db, app.userStore, app.pairStore, bcryptVerifier, bcryptVerifier, logger)

	// The emitter is nil when generation is disabled; the word service then
	// skips event publication entirely.
	var emitter events.EventEmitter
	if app.eventEmitter != nil {
		emitter = app.eventEmitter
	}
	app.wordService = service.NewWordService(
		db, app.wordStore, app.cardStore, app.setStore, app.pairStore, emitter, logger)

	app.reviewService = service.NewReviewService(
		db, app.cardStore, app.wordStore, app.pairStore, app.reviewStore,
		app.srsService, logger)

	if cfg.LLM.Enabled() {
		if err := app.setupEnrichment(ctx); err != nil {
			return nil, err
		}
	} else {
		logger.Info("word enrichment disabled, no Gemini API key configured")
	}

	logger.Info("application initialized")
	return app, nil
}

// setupEnrichment starts the background pipeline that fills in generated
// word content after creation.
func (app *application) setupEnrichment(ctx context.Context) error {
	generator, err := gemini.NewGenerator(
		ctx,
		app.logger.With(slog.String("component", "llm_generator")),
		app.config.LLM,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize content generator: %w", err)
	}

	app.taskRunner = task.NewRunner(task.RunnerConfig{
		WorkerCount: app.config.Task.WorkerCount,
		QueueSize:   app.config.Task.QueueSize,
		TaskTimeout: 2 * time.Minute,
	}, app.logger)
	app.taskRunner.Start()

	// Generation gets its own budget, separate from API throttling, so a
	// burst of reviews cannot starve enrichment and vice versa.
	llmLimiter := ratelimit.New(ratelimit.DefaultWindows())

	handler := task.NewEventHandler(
		app.taskRunner,
		app.wordStore,
		app.pairStore,
		generator,
		app.wordService,
		llmLimiter,
		app.logger,
	)
	app.eventEmitter.RegisterHandler(handler)

	app.logger.Info("word enrichment pipeline started",
		slog.Int("workers", app.config.Task.WorkerCount),
		slog.Int("queue_size", app.config.Task.QueueSize))
	return nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
