// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the book catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env files).
//  3. Connect to MongoDB.
//  4. Connect to Redis when a cache is configured.
//  5. Reset and reload the collection when RESET_DB is set.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/bookcatalog/internal/api"
	"github.com/taibuivan/bookcatalog/internal/catalog"
	"github.com/taibuivan/bookcatalog/internal/platform/config"
	"github.com/taibuivan/bookcatalog/internal/platform/constants"
	"github.com/taibuivan/bookcatalog/internal/platform/mongodb"
	redisstore "github.com/taibuivan/bookcatalog/internal/platform/redis"
	"github.com/taibuivan/bookcatalog/internal/seed"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(os.Stdout, slog.LevelInfo, false)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log = newLogger(os.Stdout, level, cfg.IsDevelopment())
	slog.SetDefault(log)
	log.Debug("debug_logging_enabled")

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("collection", cfg.MongoCollection),
		slog.Bool("reset_db", cfg.ShouldSeed()),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. MongoDB ────────────────────────────────────────────────────────
	databaseName, err := mongodb.DatabaseName(cfg.MongoURL, cfg.MongoDatabase)
	must(log, err, "resolve database name")

	client, err := mongodb.NewClient(startupCtx, cfg.MongoURL, log)
	must(log, err, "connect to mongodb")
	defer func() {
		log.Info("closing mongodb client")
		if cerr := mongodb.Disconnect(client); cerr != nil {
			log.Error("mongodb disconnect error", slog.Any("error", cerr))
		}
	}()

	database := client.Database(databaseName)
	collection := database.Collection(cfg.MongoCollection)

	var repository catalog.Repository = catalog.NewMongoRepository(collection)
	var seedOptions []seed.Option
	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return mongodb.Ping(ctx, client)
		},
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		cached := catalog.NewCachedRepository(repository, rdb, cfg.CacheTTL, log)
		repository = cached
		seedOptions = append(seedOptions, seed.WithCache(cached))
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 5. Seed ───────────────────────────────────────────────────────────
	if cfg.ShouldSeed() {
		books, err := seed.Dataset(cfg.SeedFile)
		must(log, err, "load seed dataset")

		loader := seed.NewLoader(database, cfg.MongoCollection, log, seedOptions...)
		_, err = loader.Reset(startupCtx, books)
		must(log, err, "seed database")
	}

	must(log, catalog.EnsureIndexes(startupCtx, collection), "ensure indexes")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	catalogService := catalog.NewService(repository, log)
	catalogHandler := catalog.NewHandler(catalogService)

	health.CountRecords = catalogService.CountBooks
	liveness, readiness := api.NewHealthHandlers(health, log)

	server := api.NewServer(cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalogHandler,
	})

	// ── 7. HTTP Server & Graceful Shutdown ────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	listenFailed := false
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
		listenFailed = true
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	if listenFailed {
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the process logger. Development gets human-readable text
// lines; every other environment gets JSON for log shippers.
func newLogger(writer io.Writer, level slog.Level, readable bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(writer, options)
	if readable {
		handler = slog.NewTextHandler(writer, options)
	}

	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
