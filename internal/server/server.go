// Package server exposes the generator page and the JSON/snippet API over
// HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	deploybutton "github.com/goliatone/go-deploybutton"
	"github.com/goliatone/go-deploybutton/internal/apispec"
	"github.com/goliatone/go-deploybutton/internal/config"
	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/render"
	"github.com/goliatone/go-deploybutton/pkg/theme"
)

// Server serves the generator over HTTP.
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	registry   *render.Registry
	themes     *theme.Selector
	api        *apispec.Document
	httpServer *http.Server
}

// New wires renderers, themes and the API document.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	registry, err := deploybutton.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	themes, err := theme.NewSelector(cfg.Theme.Name, cfg.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	api, err := apispec.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		registry: registry,
		themes:   themes,
		api:      api,
	}
	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      s.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s, nil
}

// Routes returns the router with all routes configured.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDHeader)

	r.Get("/", s.handlePage)
	r.Get("/health", s.handleHealth)
	r.Get("/openapi.json", s.handleOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/deploy-url", s.handleDeployURLQuery)
		r.Post("/deploy-url", s.handleDeployURLBody)
		r.Get("/snippets/{format}", s.handleSnippet)
	})

	return r
}

// Start serves until ctx is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for _, op := range s.api.Operations() {
		s.logger.Debug("route", "method", op.Method, "path", op.Path, "operation", op.ID)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		s.logger.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("context cancelled")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("shutdown complete")
	return nil
}

func (s *Server) newForm() *form.Form {
	return form.New(
		form.WithEndpoint(s.config.Generator.Endpoint),
		form.WithDefaultRepository(s.config.Generator.DefaultRepository),
		form.WithButtonImage(s.config.Generator.ButtonImage),
	)
}
