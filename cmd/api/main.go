// Command api is the Transfermarkt API server.
//
// Usage:
//
//	tmkt-api
//	API_PORT=8080 tmkt-api

// @title Transfermarkt API
// @version 1.0.0
// @description Unofficial API serving player, club, league, staff, match and transfer data scraped on demand from Transfermarkt. Responses carry the {query, results|result, cache_hit} envelope.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/tommhe14/tmkt-api/internal/api"
	"github.com/tommhe14/tmkt-api/internal/config"
	"github.com/tommhe14/tmkt-api/internal/store"
	"github.com/tommhe14/tmkt-api/internal/tm"
	"github.com/tommhe14/tmkt-api/internal/upstream"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Upstream clients: one for the HTML site, one for the transfer API
	// host. They share the politeness budget split evenly.
	perMinute := cfg.UpstreamPerMinute
	site := upstream.NewClient(upstream.Options{
		BaseURL:           cfg.UpstreamBaseURL,
		UserAgent:         cfg.UpstreamUserAgent,
		Timeout:           cfg.UpstreamTimeout,
		RequestsPerMinute: perMinute,
	}, logger)
	apiHost := upstream.NewClient(upstream.Options{
		BaseURL:           cfg.UpstreamAPIBaseURL,
		UserAgent:         cfg.UpstreamUserAgent,
		Timeout:           cfg.UpstreamTimeout,
		RequestsPerMinute: perMinute,
	}, logger)
	logger.Info("Upstream clients ready",
		"site", cfg.UpstreamBaseURL,
		"api", cfg.UpstreamAPIBaseURL,
		"requests_per_minute", perMinute)

	// Orchestration service with per-family caches
	svc := tm.NewService(tm.Options{
		Client:       site,
		API:          apiHost,
		CacheEnabled: cfg.CacheEnabled,
		CacheMaxSize: cfg.CacheMaxSize,
		Logger:       logger,
	})
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "max_size", cfg.CacheMaxSize)

	// Bundled country data
	countries, err := store.LoadCountries()
	if err != nil {
		logger.Error("Failed to load bundled country data", "error", err)
		os.Exit(1)
	}

	// Create router
	router := api.NewRouter(svc, countries, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Transfermarkt API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
