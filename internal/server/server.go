// Package server exposes the fault calculator over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gofault/internal/config"
)

// NewRouter builds the API routes and middleware
func NewRouter(cfg config.ServerConfig, logger *slog.Logger) *mux.Router {
	h := &Handler{logger: logger, maxSweepSteps: cfg.MaxSweepSteps}
	limiter := NewIPRateLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst)

	r := mux.NewRouter()
	r.Use(withRequestID, withAccessLog(logger))
	r.HandleFunc("/healthz", h.Health).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(limiter.Middleware)
	api.HandleFunc("/faults", h.Compute).Methods("POST")
	api.HandleFunc("/faults/compare", h.Compare).Methods("POST")
	api.HandleFunc("/faults/sweep", h.Sweep).Methods("GET")

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewRouter(cfg, logger),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
