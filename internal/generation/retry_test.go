package generation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/seogen-api/internal/generation"
	"github.com/phrazzld/seogen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSleep records requested delays without waiting.
type recordingSleep struct {
	delays []time.Duration
}

func (s *recordingSleep) Sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func newTestRetrier(t *testing.T, maxAttempts int) (*generation.Retrier, *recordingSleep) {
	t.Helper()
	log, _ := logger.GetTestLogger(t)

	r := generation.NewRetrier(log, maxAttempts, time.Second)
	sleep := &recordingSleep{}
	r.Sleep = sleep.Sleep
	return r, sleep
}

func TestRetrier_SucceedsAfterTwoRateLimits(t *testing.T) {
	r, sleep := newTestRetrier(t, 3)

	calls := 0
	text, err := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls <= 2 {
			return "", errors.New("429: rate limit reached")
		}
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", text)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleep.delays)
}

func TestRetrier_ExhaustsAfterMaxAttempts(t *testing.T) {
	r, sleep := newTestRetrier(t, 3)

	var retried []int
	r.OnRetry = func(attempt int, _ time.Duration, _ error) {
		retried = append(retried, attempt)
	}

	calls := 0
	providerErr := fmt.Errorf("%w: Error 429", generation.ErrRateLimited)
	_, err := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", providerErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrRetriesExhausted)
	assert.ErrorIs(t, err, providerErr)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleep.delays,
		"no wait after the final attempt")
	assert.Equal(t, []int{1, 2}, retried)
}

func TestRetrier_NonRateLimitErrorIsNotRetried(t *testing.T) {
	r, sleep := newTestRetrier(t, 3)

	calls := 0
	providerErr := errors.New("Error 400, Message: API key not valid")
	_, err := r.Do(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", providerErr
	})

	assert.Same(t, providerErr, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleep.delays)
}

func TestRetrier_StopsWhenContextEnds(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	r := generation.NewRetrier(log, 5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := r.Do(ctx, func(context.Context) (string, error) {
		calls++
		cancel()
		return "", generation.ErrRateLimited
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestNewRetrier_Defaults(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	r := generation.NewRetrier(log, 0, -time.Second)

	assert.Equal(t, generation.DefaultMaxAttempts, r.MaxAttempts)
	assert.Equal(t, generation.DefaultBaseDelay, r.BaseDelay)
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{generation.ErrRateLimited, true},
		{fmt.Errorf("wrapped: %w", generation.ErrRateLimited), true},
		{errors.New("You exceeded your current quota"), true},
		{errors.New("rate limit exceeded"), true},
		{errors.New("Rate Limit exceeded"), false},
		{errors.New("internal error"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generation.IsRateLimited(tt.err), "%v", tt.err)
	}
}
