package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/seogen-api/internal/config"
	"github.com/phrazzld/seogen-api/internal/generation"
	"github.com/phrazzld/seogen-api/internal/platform/metrics"
	"github.com/phrazzld/seogen-api/internal/redact"
	"github.com/phrazzld/seogen-api/internal/task"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by Generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.Generator using the Gemini API.
// It makes exactly one provider call per Generate; retries belong to the caller.
type Generator struct {
	logger  *slog.Logger
	models  contentGenerator
	metrics *metrics.Metrics
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini client from cfg and wraps it in a Generator.
// m may be nil.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	m *metrics.Metrics,
) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "gemini generator initialized",
		"custom_base_url", cfg.BaseURL != "")

	return newGenerator(logger, client.Models, m), nil
}

func newGenerator(logger *slog.Logger, models contentGenerator, m *metrics.Metrics) *Generator {
	return &Generator{
		logger:  logger,
		models:  models,
		metrics: m,
	}
}

// Generate sends prompt to cfg.Model with cfg's sampling and safety settings
// and returns the response text with a leading markdown fence removed.
func (g *Generator) Generate(ctx context.Context, cfg task.Config, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	start := time.Now()
	text, err := g.generate(ctx, cfg, prompt)
	elapsed := time.Since(start)

	g.metrics.ObserveGeneration(cfg.ID.String(), cfg.Model, statusLabel(err), elapsed)

	if err != nil {
		g.logger.WarnContext(ctx, "gemini call failed",
			"task", cfg.ID,
			"model", cfg.Model,
			"duration_ms", elapsed.Milliseconds(),
			"error", redact.Error(err))
		return "", err
	}

	g.logger.DebugContext(ctx, "gemini call succeeded",
		"task", cfg.ID,
		"model", cfg.Model,
		"duration_ms", elapsed.Milliseconds(),
		"response_length", len(text))

	return text, nil
}

func (g *Generator) generate(ctx context.Context, cfg task.Config, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), generateConfig(cfg))
	if err != nil {
		return "", classifyError(err)
	}

	if resp != nil && resp.UsageMetadata != nil {
		g.metrics.AddTokens(cfg.ID.String(),
			resp.UsageMetadata.PromptTokenCount,
			resp.UsageMetadata.CandidatesTokenCount)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	return generation.StripMarkdownFence(text), nil
}
