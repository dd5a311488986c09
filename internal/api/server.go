// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lmarchal/filmotheque/internal/auth"
	"github.com/lmarchal/filmotheque/internal/core/artiste"
	"github.com/lmarchal/filmotheque/internal/core/film"
	"github.com/lmarchal/filmotheque/internal/core/pays"
	"github.com/lmarchal/filmotheque/internal/platform/config"
	"github.com/lmarchal/filmotheque/internal/platform/constants"
	"github.com/lmarchal/filmotheque/internal/platform/middleware"
	"github.com/lmarchal/filmotheque/internal/social/note"
	"github.com/lmarchal/filmotheque/internal/users/internaute"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration, login, and the profile endpoint.
	Auth *auth.Handler

	// Pays manages the production-country referential.
	Pays *pays.Handler

	// Artiste manages directors and cast members.
	Artiste *artiste.Handler

	// Film manages the catalogue and resume-document uploads.
	Film *film.Handler

	// Internaute handles self-service account management.
	Internaute *internaute.Handler

	// Note handles film ratings.
	Note *note.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(appContext context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.UserVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(appContext))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Sanitize())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	requireAuth := middleware.RequireAuth(verifier)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Catalogue and account groups require a bearer token end to end.
		api.Route("/pays", func(group chi.Router) {
			group.Use(requireAuth)
			h.Pays.RegisterRoutes(group)
		})
		api.Route("/artistes", func(group chi.Router) {
			group.Use(requireAuth)
			h.Artiste.RegisterRoutes(group)
		})
		api.Route("/films", func(group chi.Router) {
			group.Use(requireAuth)
			h.Film.RegisterRoutes(group)
		})
		api.Route("/internautes", func(group chi.Router) {
			group.Use(requireAuth)
			h.Internaute.RegisterRoutes(group)
		})

		// Rating reads are public; writes are wrapped per-route.
		api.Route("/notes", func(group chi.Router) {
			h.Note.RegisterRoutes(group, requireAuth)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
