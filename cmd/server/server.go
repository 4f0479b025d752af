package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// readHeaderTimeout bounds slow clients; generation itself is bounded by the
// configured request timeout.
const readHeaderTimeout = 10 * time.Second

// startHTTPServer starts the public server (and the metrics server when
// configured) and blocks until a shutdown signal, ctx cancellation, or a
// listener failure, then shuts everything down gracefully.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	servers := []*http.Server{{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}}
	if app.config.Server.MetricsPort > 0 {
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", app.config.Server.MetricsPort),
			Handler:           app.setupMetricsRouter(),
			ReadHeaderTimeout: readHeaderTimeout,
		})
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			app.logger.Info("Starting server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				app.logger.Error("Server failed", "addr", srv.Addr, "error", err)
				errCh <- fmt.Errorf("listen on %s: %w", srv.Addr, err)
				cancelServer()
			}
		}(srv)
	}

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	var shutdownErr error
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("Server shutdown failed", "addr", srv.Addr, "error", err)
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("server shutdown failed: %w", err))
		}
	}

	select {
	case err := <-errCh:
		shutdownErr = errors.Join(err, shutdownErr)
	default:
	}

	app.logger.Info("Server shutdown completed")
	return shutdownErr
}
