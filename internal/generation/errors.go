package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrRateLimited marks provider errors caused by quota or rate limiting.
	// These are the only errors the Retrier retries.
	ErrRateLimited = errors.New("rate limited by language model provider")

	// ErrRetriesExhausted is returned when every attempt was rate limited
	ErrRetriesExhausted = errors.New("max retries exceeded")

	// ErrTimeout is returned when generation does not finish before the deadline
	ErrTimeout = errors.New("request timeout")

	// ErrInvalidResponse is returned when the LLM response carries no usable text
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
