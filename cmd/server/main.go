// Package main implements the entry point for the seogen API server, which
// turns SEO requests (long-tail title expansion, article generation) into
// Gemini prompts and returns the generated content over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/seogen-api/internal/config"
	"github.com/phrazzld/seogen-api/internal/platform/logger"
)

// main is the entry point for the seogen-api server.
// It loads configuration, sets up logging, wires dependencies and serves
// HTTP until SIGINT or SIGTERM.
func main() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"metrics_port", cfg.Server.MetricsPort,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_attempts", cfg.LLM.MaxAttempts,
		"request_timeout", cfg.LLM.RequestTimeout)

	return newApplication(ctx, cfg, l)
}
