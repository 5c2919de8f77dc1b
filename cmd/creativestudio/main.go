// Package main is the entry point for the creative studio API server.
// It loads configuration, builds the provider registry and asset library,
// sets up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creativestudio/internal/ai"
	"creativestudio/internal/config"
	"creativestudio/internal/handlers"
	"creativestudio/internal/middleware"
	"creativestudio/internal/router"
	"creativestudio/internal/store"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"max_variants", cfg.MaxVariants,
		"rate_limit", cfg.GenerateRateLimit,
	)

	registry := ai.NewRegistry(cfg)

	var available []string
	for _, p := range registry.ListActiveProviders() {
		if registry.IsProviderAvailable(p.ID) {
			available = append(available, p.ID)
		}
	}
	slog.Info("creative providers initialized",
		"available", available,
		"credentials", cfg.ConfiguredCredentials(),
	)

	// Generation is throttled per client IP over a one-minute window.
	limiter := middleware.NewRateLimiter(cfg.GenerateRateLimit, time.Minute)
	defer limiter.Stop()

	api := handlers.NewAPI(registry, store.NewAssetStore(), cfg.MaxVariants)
	r := router.New(api, limiter)

	// Rendering is local and bounded, so write timeouts stay short.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
