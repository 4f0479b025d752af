package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/seogen-api/internal/task"
)

// Runner produces an Outcome for one request: the Generator call, wrapped by
// the Retrier, wrapped by the timeout race.
type Runner struct {
	generator Generator
	retrier   *Retrier
	timeout   time.Duration
	logger    *slog.Logger
}

// NewRunner wires a Runner. A non-positive timeout uses DefaultTimeout.
func NewRunner(logger *slog.Logger, generator Generator, retrier *Retrier, timeout time.Duration) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if retrier == nil {
		retrier = NewRetrier(logger, DefaultMaxAttempts, DefaultBaseDelay)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Runner{
		generator: generator,
		retrier:   retrier,
		timeout:   timeout,
		logger:    logger,
	}
}

// Run generates text for prompt using cfg.
func (r *Runner) Run(ctx context.Context, cfg task.Config, prompt string) Outcome {
	start := time.Now()

	text, err := WithTimeout(ctx, r.timeout, func(ctx context.Context) (string, error) {
		return r.retrier.Do(ctx, func(ctx context.Context) (string, error) {
			return r.generator.Generate(ctx, cfg, prompt)
		})
	})

	outcome := Outcome{Text: text, Err: err}
	r.logger.DebugContext(ctx, "generation finished",
		"task", cfg.ID,
		"model", cfg.Model,
		"kind", outcome.Kind().String(),
		"duration_ms", time.Since(start).Milliseconds())

	return outcome
}
