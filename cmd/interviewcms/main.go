// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the interview tutorial CMS server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewcms/internal/auth"
	"interviewcms/internal/cache"
	"interviewcms/internal/config"
	"interviewcms/internal/credentials"
	"interviewcms/internal/database"
	"interviewcms/internal/handlers"
	"interviewcms/internal/metrics"
	"interviewcms/internal/repository"
	"interviewcms/internal/router"
	"interviewcms/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed starter categories, topics and tags (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	m := metrics.New()
	m.RegisterDB(db)

	// Connect to Valkey for the public response cache (optional, the API
	// works uncached without it).
	var responseCache *cache.ResponseCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey not reachable, public responses will not be cached", "error", err)
	} else {
		defer valkeyClient.Close()
		responseCache = cache.NewResponseCache(valkeyClient, cfg.PublicCacheTTL, m)
	}

	// Initialize data stores.
	settingStore := store.NewSettingStore(db)
	cacheLogStore := store.NewCacheLogStore(db)

	// Resolve the admin API keys, applying any overrides saved in settings.
	keys := credentials.New(credentials.Defaults{
		External: cfg.ExternalAPIKey,
		Internal: cfg.InternalAPIKey,
	}, settingStore)
	if err := keys.Load(context.Background()); err != nil {
		slog.Error("failed to load admin API keys", "error", err)
		os.Exit(1)
	}

	tutorials := repository.NewTutorials(store.NewTutorialStore(db))
	categories := repository.NewCategories(store.NewCategoryStore(db))
	topics := repository.NewTopics(store.NewTopicStore(db))
	tags := repository.NewLanguageTags(store.NewLanguageTagStore(db))

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(tutorials, categories, topics, tags, keys, responseCache, cacheLogStore)
	publicHandlers := handlers.NewPublic(tutorials, categories, responseCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(auth.NewGate(keys), adminHandlers, publicHandlers, m)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
