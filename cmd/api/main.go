// Package main is the entry point for the heritage archive API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/gadulu-gruhalu/archive/internal/assist"
	"github.com/gadulu-gruhalu/archive/internal/config"
	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
	"github.com/gadulu-gruhalu/archive/internal/middleware"
	"github.com/gadulu-gruhalu/archive/internal/repo"
	"github.com/gadulu-gruhalu/archive/internal/service"
	"github.com/gadulu-gruhalu/archive/migrations"
	"github.com/gadulu-gruhalu/archive/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Store ------------------------------------------------------------
	places, contributors, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- Services ---------------------------------------------------------
	ledger := service.NewLedgerService(contributors)
	placeSvc := service.NewPlaceService(
		places,
		ledger,
		service.Validator{RequireLocation: cfg.RequireLocation},
		newTranslator(ctx, cfg, logger),
	)
	accounts := service.NewAccountService(contributors, bcrypt.DefaultCost)
	stories := service.NewStoryService(newGenerator(cfg, logger))

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → metrics.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(metrics.Handler)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// Register API handlers on the same router. gen.NewStrictHandlerWithOptions
	// adapts our StrictServerInterface implementation to the lower-level
	// ServerInterface chi expects.
	srv := handler.NewServer(placeSvc, ledger, accounts, stories)
	gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(logger)),
		gen.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: handler.ParamErrorHandler},
	)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves room for a story generation round trip.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "store", cfg.StoreDriver)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore opens the record store and contributor ledger for the configured
// driver. The returned func releases the store's resources.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (repo.PlaceRepo, repo.ContributorRepo, func(), error) {
	if cfg.StoreDriver != config.DriverPostgres {
		store := repo.OpenFileStore(ctx, cfg.StorePath, logger)
		slog.Info("file store opened", "path", cfg.StorePath, "places", len(store.All()))
		return store, repo.NewMemoryContributorRepo(domain.SeedContributors()...), func() {}, nil
	}

	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create database pool: %w", err)
	}

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	slog.Info("database connection established")

	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	return repo.NewPlaceRepo(pool), repo.NewContributorRepo(pool), pool.Close, nil
}

// migrate applies all pending goose migrations through a database/sql
// handle backed by the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// The pool owns the connections; db is a view over it and is not closed here.
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration_ms", res.Duration.Milliseconds())
	}
	return nil
}

// newTranslator returns the Cloud Translation client wrapped in a TTL cache,
// or a no-op translator when no API key is configured or the client fails.
func newTranslator(ctx context.Context, cfg config.Config, logger *slog.Logger) assist.Translator {
	if cfg.TranslateAPIKey == "" {
		return assist.NopTranslator{}
	}
	google, err := assist.NewGoogleTranslator(ctx, cfg.TranslateAPIKey, logger)
	if err != nil {
		slog.Warn("translation disabled", "error", err)
		return assist.NopTranslator{}
	}
	return assist.NewCachedTranslator(google, cfg.TranslateCacheTTL)
}

// newGenerator returns the Gemini story generator, or nil (template
// fallback) when no API key is configured.
func newGenerator(cfg config.Config, logger *slog.Logger) assist.Generator {
	if cfg.GeminiAPIKey == "" {
		return nil
	}
	gemini, err := assist.NewGeminiGenerator(assist.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		BaseURL:    cfg.GeminiBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}, logger)
	if err != nil {
		slog.Warn("story generation falls back to template", "error", err)
		return nil
	}
	return gemini
}
