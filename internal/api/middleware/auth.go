package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/phrazzld/seogen-api/internal/api/shared"
)

// APIKeyHeader carries the shared client secret.
const APIKeyHeader = "X-API-Key"

// InvalidAPIKeyMessage is the 401 response body.
const InvalidAPIKeyMessage = "Invalid API Key"

// APIKeyAuth rejects requests whose X-API-Key header does not equal apiKey.
// It runs before method and route checks, so every unauthenticated request
// gets a 401 regardless of path.
func APIKeyAuth(apiKey string) func(http.Handler) http.Handler {
	expected := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				slog.DebugContext(r.Context(), "rejected request with invalid API key",
					"path", r.URL.Path,
					"key_present", got != "")
				shared.RespondWithError(w, r, http.StatusUnauthorized, InvalidAPIKeyMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
