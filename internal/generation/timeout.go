package generation

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds a whole generation, retries included.
const DefaultTimeout = 60 * time.Second

// WithTimeout runs op and races it against a d-long timer. If the timer fires
// first, WithTimeout returns ErrTimeout right away and cancels the context
// given to op; op's eventual result is discarded. A non-positive d uses
// DefaultTimeout.
func WithTimeout(ctx context.Context, d time.Duration, op Operation) (string, error) {
	if d <= 0 {
		d = DefaultTimeout
	}

	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	// Buffered so an abandoned op can always deliver and exit.
	done := make(chan result, 1)
	go func() {
		text, err := op(opCtx)
		done <- result{text: text, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case res := <-done:
		return res.text, res.err
	case <-timer.C:
		return "", fmt.Errorf("%w after %s", ErrTimeout, d)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
