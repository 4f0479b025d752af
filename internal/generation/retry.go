package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Retry defaults.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Operation is a single generation attempt.
type Operation func(ctx context.Context) (string, error)

// Retrier retries rate-limited operations with linear backoff: the delay
// before retry n (1-based) is BaseDelay*n. Attempts are strictly sequential.
type Retrier struct {
	// MaxAttempts bounds the total number of calls, including the first.
	MaxAttempts int

	// BaseDelay is the unit of the linear backoff.
	BaseDelay time.Duration

	// Sleep waits for d or until ctx is done. Defaults to SleepContext.
	Sleep func(ctx context.Context, d time.Duration) error

	// OnRetry, if set, is called before each backoff wait.
	OnRetry func(attempt int, delay time.Duration, err error)

	logger *slog.Logger
}

// NewRetrier creates a Retrier. Non-positive values fall back to the defaults.
func NewRetrier(logger *slog.Logger, maxAttempts int, baseDelay time.Duration) *Retrier {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAttempts < 1 {
		logger.Warn("invalid max attempts value, using default",
			"configured", maxAttempts,
			"default", DefaultMaxAttempts)
		maxAttempts = DefaultMaxAttempts
	}
	if baseDelay <= 0 {
		logger.Warn("invalid retry delay value, using default",
			"configured", baseDelay,
			"default", DefaultBaseDelay)
		baseDelay = DefaultBaseDelay
	}

	return &Retrier{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		Sleep:       SleepContext,
		logger:      logger,
	}
}

// Do calls op until it succeeds, fails with an error that is not rate
// limiting, or MaxAttempts rate-limited failures have occurred. In the last
// case the returned error wraps both ErrRetriesExhausted and the final
// provider error.
func (r *Retrier) Do(ctx context.Context, op Operation) (string, error) {
	sleep := r.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		text, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				r.logger.InfoContext(ctx, "generation succeeded after retry", "attempt", attempt)
			}
			return text, nil
		}

		if !IsRateLimited(err) {
			return "", err
		}
		lastErr = err

		if attempt == r.MaxAttempts {
			break
		}

		delay := r.BaseDelay * time.Duration(attempt)
		r.logger.WarnContext(ctx, "generation rate limited, retrying after delay",
			"attempt", attempt,
			"max_attempts", r.MaxAttempts,
			"delay", delay,
			"error", err)
		if r.OnRetry != nil {
			r.OnRetry(attempt, delay, err)
		}

		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	r.logger.WarnContext(ctx, "maximum retry attempts reached", "max_attempts", r.MaxAttempts)
	return "", fmt.Errorf("%w (%d attempts): %w", ErrRetriesExhausted, r.MaxAttempts, lastErr)
}

// IsRateLimited reports whether err should be retried. Errors wrapping
// ErrRateLimited match directly; otherwise the message is checked for
// "quota" or "rate limit" for providers that only report it in text.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit")
}

// SleepContext waits for d, returning early with ctx.Err() if ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
