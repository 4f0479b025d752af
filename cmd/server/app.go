package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/seogen-api/internal/config"
	"github.com/phrazzld/seogen-api/internal/generation"
	"github.com/phrazzld/seogen-api/internal/platform/gemini"
	"github.com/phrazzld/seogen-api/internal/platform/metrics"
	"github.com/phrazzld/seogen-api/internal/prompt"
	"github.com/phrazzld/seogen-api/internal/task"
)

// application holds all the shared application dependencies.
// Everything here is built once at startup and only read afterwards.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	registry  *task.Registry
	builder   *prompt.Builder
	generator generation.Generator
	runner    *generation.Runner
}

// newApplication creates an application backed by the Gemini API.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	m := metrics.New()

	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
		m,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	return newApplicationWithGenerator(cfg, logger, generator, m)
}

// newApplicationWithGenerator wires every dependency around generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
	m *metrics.Metrics,
) (*application, error) {
	registry := task.NewRegistry(cfg.LLM.ModelName)

	builder, err := prompt.NewBuilder(logger.With("component", "prompt_builder"), cfg.LLM.ArticlePromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}

	retrier := generation.NewRetrier(logger.With("component", "retrier"),
		cfg.LLM.MaxAttempts, cfg.LLM.RetryBaseDelay)
	retrier.OnRetry = func(int, time.Duration, error) {
		m.IncRetry()
	}

	runner := generation.NewRunner(logger.With("component", "generation_runner"),
		generator, retrier, cfg.LLM.RequestTimeout)

	logger.Info("Application initialized successfully",
		"tasks", registry.IDs())

	return &application{
		config:    cfg,
		logger:    logger,
		metrics:   m,
		registry:  registry,
		builder:   builder,
		generator: generator,
		runner:    runner,
	}, nil
}

// Run starts the application servers, handling lifecycle and cleanup.
// It returns an error if a server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
