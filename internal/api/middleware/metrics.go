package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/seogen-api/internal/platform/metrics"
)

// unmatchedRoute labels responses that never reached a route, keeping
// arbitrary request paths out of the metric labels.
const unmatchedRoute = "unmatched"

// Metrics counts responses by matched route pattern and status code.
// It must be registered with Use on the chi router so the route pattern is
// known once the request has been served.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveResponse(route, status)
		})
	}
}
