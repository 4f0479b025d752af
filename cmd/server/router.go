package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/seogen-api/internal/api"
	apiMiddleware "github.com/phrazzld/seogen-api/internal/api/middleware"
	"github.com/phrazzld/seogen-api/internal/task"
)

// setupRouter creates the public router: authentication first, then the
// POST-only guard, then the two generation routes. Any other path gets an
// empty 404.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))
	r.Use(apiMiddleware.APIKeyAuth(app.config.Auth.APIKey))
	r.Use(apiMiddleware.RequirePost(app.config.CORS.AllowOrigin))

	handler := api.NewGenerationHandler(
		app.logger.With("component", "generation_handler"),
		app.registry,
		app.builder,
		app.runner,
		app.config.CORS.AllowOrigin,
	)

	r.Post(task.TitleExpansion.Path(), handler.UpdateLongTailTitles)
	r.Post(task.ArticleGeneration.Path(), handler.GenerateArticles)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return r
}

// setupMetricsRouter serves Prometheus metrics and a liveness probe on the
// side listener.
func (app *application) setupMetricsRouter() http.Handler {
	r := chi.NewRouter()

	r.Handle("/metrics", app.metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
