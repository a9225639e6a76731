// Package server exposes the engine over HTTP. Handlers validate at the
// boundary and hand off to the pure calculators; the engine itself never
// validates.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/voltgrid/bess-engine/internal/finance"
	"github.com/voltgrid/bess-engine/internal/scenario"
)

// Server manages the HTTP listener and routes.
type Server struct {
	calc     *finance.Calculator
	gen      *scenario.Generator
	validate *validator.Validate
	logger   zerolog.Logger
	server   *http.Server
}

// New creates a Server on the given port.
func New(port int, calc *finance.Calculator, logger zerolog.Logger) *Server {
	s := &Server{
		calc:     calc,
		gen:      scenario.NewGenerator(calc),
		validate: validator.New(),
		logger:   logger,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Routes builds the router. Exposed for tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/score", s.handleScore)
		r.Post("/sizing", s.handleSizing)
		r.Post("/scenarios", s.handleScenarios)
		r.Post("/scenarios/compare", s.handleCompare)
	})

	return r
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("http server shutting down")
	return s.server.Shutdown(ctx)
}
