// Package http assembles the triage API's route tree and server.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/internal/interfaces/http/handlers"
	"github.com/turtacn/BioTriage/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware for the route tree.
type RouterConfig struct {
	TriageHandler *handlers.TriageHandler
	HealthHandler *handlers.HealthHandler

	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	// Metrics receives per-request observations when set.
	Metrics middleware.HTTPMetricsRecorder

	CORS    middleware.CORSConfig
	Logging middleware.LoggingConfig
	Logger  logging.Logger
}

// NewRouter builds the complete route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNopLogger()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics, cfg.Logging))

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.TriageHandler != nil {
			api.Post("/analyze", cfg.TriageHandler.Analyze)
			api.Post("/upload", cfg.TriageHandler.Upload)
			api.Get("/progress", cfg.TriageHandler.Progress)
			api.Post("/chat", cfg.TriageHandler.Chat)
			api.Post("/optimize", cfg.TriageHandler.Optimize)
		}
	})

	return r
}
