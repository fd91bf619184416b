// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

// Command api is the entry point for the ArtStudy HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the study-state store (file, Redis, or PostgreSQL per config).
//  4. Run database migrations (postgres driver only, idempotent).
//  5. Load the immutable base record dataset.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linwanqing/artstudy/internal/api"
	"github.com/linwanqing/artstudy/internal/core/browse"
	"github.com/linwanqing/artstudy/internal/core/compare"
	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/internal/core/record"
	"github.com/linwanqing/artstudy/internal/platform/config"
	"github.com/linwanqing/artstudy/internal/platform/constants"
	"github.com/linwanqing/artstudy/internal/platform/kvstore"
	"github.com/linwanqing/artstudy/internal/platform/migration"
	pgstore "github.com/linwanqing/artstudy/internal/platform/postgres"
	redisstore "github.com/linwanqing/artstudy/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "artstudy"))
	slog.SetDefault(log)

	log.Info("[ArtStudy] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "artstudy"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Study-State Store ──────────────────────────────────────────────
	var store kvstore.Store
	var checkStorage func() error

	switch cfg.StorageDriver {
	case config.DriverFile:
		fileStore, err := kvstore.NewFileStore(cfg.StateDir)
		must(log, err, "open state directory")
		store = fileStore
		log.Info("state_store_ready", slog.String("driver", "file"), slog.String("dir", cfg.StateDir))

	case config.DriverRedis:
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		store = kvstore.NewRedisStore(rdb)
		checkStorage = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}

	case config.DriverPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		// ── 4. Migrations ─────────────────────────────────────────────────
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		store = kvstore.NewPostgresStore(pool)
		checkStorage = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}

	// ── 5. Base Dataset ───────────────────────────────────────────────────
	// The collection is immutable after this point.
	items, err := record.LoadDataset(startupCtx, cfg.DatasetURL)
	must(log, err, "load base dataset")
	collection := record.NewCollection(items)
	log.Info("dataset_loaded",
		slog.String("source", cfg.DatasetURL),
		slog.Int("records", collection.Len()),
	)

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStorage:  checkStorage,
		StorageDriver: cfg.StorageDriver,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	overrideRepository := override.NewKVRepository(store, log)
	notesRepository := compare.NewKVRepository(store, log)

	recordService := record.NewService(collection, overrideRepository, log)
	browseService := browse.NewService(recordService, browse.NewSession(), log)
	compareService := compare.NewService(recordService, notesRepository, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Record:    record.NewHandler(recordService),
		Browse:    browse.NewHandler(browseService),
		Compare:   compare.NewHandler(compareService),
	}

	server := api.NewServer(startupCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
