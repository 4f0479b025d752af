package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/seogen-api/internal/generation"
	"github.com/phrazzld/seogen-api/internal/task"
)

// User-facing failure summaries.
const (
	timeoutMessage     = "Service timeout, please try again"
	unavailableMessage = "Service temporarily unavailable"
)

// failureStatus maps a generation failure to its HTTP status and summary.
func failureStatus(err error) (int, string) {
	if generation.Classify(err) == generation.KindTimeout {
		return http.StatusGatewayTimeout, timeoutMessage
	}
	return http.StatusServiceUnavailable, unavailableMessage
}

// isClientInputError reports whether err came from request validation.
func isClientInputError(err error) bool {
	return errors.Is(err, task.ErrMissingFields)
}
