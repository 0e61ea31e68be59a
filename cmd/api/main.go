// Package main provides the API server entry point.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/artifyhq/artify-server/internal/config"
	"github.com/artifyhq/artify-server/internal/infrastructure/httpserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := setupLogger(cfg)

	logger.Info("starting artify API server",
		slog.String("app", cfg.App.Name),
		slog.String("database", cfg.MongoDB.Database),
	)

	container, err := NewContainer(cfg, WithLogger(logger))
	if err != nil {
		logger.Error("failed to build container", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httpserver.NewServer(cfg.Server, logger)
	SetupRoutes(container, srv.Echo())

	go gracefulShutdown(ctx, cancel, srv, container, logger)

	if serverErr := srv.Start(); serverErr != nil {
		logger.Error("server error", slog.String("error", serverErr.Error()))
		cancel()
		_ = container.Close()
		os.Exit(1)
	}
}

// setupLogger creates the structured logger from configuration and installs
// it as the process default.
func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}

	switch cfg.Log.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default: // "json" or any other value defaults to JSON
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// gracefulShutdown handles graceful shutdown on OS signals.
func gracefulShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	srv *httpserver.Server,
	container *Container,
	logger *slog.Logger,
) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("context cancelled, initiating shutdown")
	}

	cancel()

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	if err := container.Close(); err != nil {
		logger.Error("container close error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
