package middleware

import (
	"net/http"

	"github.com/phrazzld/seogen-api/internal/api/shared"
)

// InvalidMethodMessage is the 405 response body.
const InvalidMethodMessage = "Invalid request method"

// RequirePost answers every non-POST request with 405 and an Allow header.
func RequirePost(allowOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.Header().Set("Allow", http.MethodPost)
				shared.SetAllowOrigin(w, allowOrigin)
				shared.RespondWithError(w, r, http.StatusMethodNotAllowed, InvalidMethodMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
