package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/seogen-api/internal/generation"
	"google.golang.org/genai"
)

// ErrEmptyPrompt is returned when Generate is called without a prompt.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// statusResourceExhausted is the Google RPC status Gemini reports for quota errors.
const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// asAPIError extracts a *genai.APIError from err. The client returns
// APIError by value, but pointer forms are accepted too.
func asAPIError(err error) (*genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr, true
	}
	return nil, false
}

// classifyError marks quota errors with generation.ErrRateLimited and wraps
// everything else so the provider message stays visible.
func classifyError(err error) error {
	if apiErr, ok := asAPIError(err); ok {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == statusResourceExhausted {
			return fmt.Errorf("%w: %w", generation.ErrRateLimited, err)
		}
	}
	return fmt.Errorf("gemini generate content: %w", err)
}

// statusLabel maps a Generate error to the metrics status label.
func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, generation.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, generation.ErrContentBlocked):
		return "blocked"
	case errors.Is(err, generation.ErrInvalidResponse):
		return "invalid_response"
	default:
		return "error"
	}
}
