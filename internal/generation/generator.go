package generation

import (
	"context"

	"github.com/phrazzld/seogen-api/internal/task"
)

// Generator defines the interface for generating text for a task.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// Generate sends prompt to the model described by cfg, applying its
	// sampling parameters and safety thresholds, and returns the generated
	// text with any leading markdown fence removed.
	//
	// Provider errors are returned with their message intact. Rate-limit
	// errors should wrap ErrRateLimited when the provider reports them in a
	// structured way.
	Generate(ctx context.Context, cfg task.Config, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, cfg task.Config, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, cfg task.Config, prompt string) (string, error) {
	return f(ctx, cfg, prompt)
}
