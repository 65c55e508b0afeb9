// Copyright (c) 2026 Meridian LMS. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, access
pipelines, and all domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Every resource group declares its own ordered access pipeline here, so the
whole authorization policy of the API is readable in one screen.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meridianlms/meridian/internal/account"
	"github.com/meridianlms/meridian/internal/auth"
	"github.com/meridianlms/meridian/internal/billing/subscription"
	"github.com/meridianlms/meridian/internal/core/course"
	"github.com/meridianlms/meridian/internal/core/document"
	"github.com/meridianlms/meridian/internal/core/quiz"
	"github.com/meridianlms/meridian/internal/platform/config"
	"github.com/meridianlms/meridian/internal/platform/constants"
	"github.com/meridianlms/meridian/internal/platform/guard"
	"github.com/meridianlms/meridian/internal/platform/middleware"
	"github.com/meridianlms/meridian/internal/platform/sec"
	"github.com/meridianlms/meridian/internal/tenant"
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
// New domains add a field here plus one route group in NewServer.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the session lifecycle (login, refresh, logout, me).
	Auth *auth.Handler

	// Course handles the course catalog.
	Course *course.Handler

	// Document handles course material records.
	Document *document.Handler

	// Quiz handles course assessments.
	Quiz *quiz.Handler

	// Account handles staff administration.
	Account *account.Handler

	// Subscription exposes tenant billing state.
	Subscription *subscription.Handler

	// Tenant handles the superadmin tenant directory.
	Tenant *tenant.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups behind their access pipelines.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier guard.TokenVerifier, directory guard.TenantDirectory, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. Authentication is NOT
	// global: each route group carries its own pipeline below.
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Pipelines shared by the route groups. Stage order is fixed:
	// authenticate, resolve tenant, check role.
	staffPipeline := guard.Pipeline(
		guard.Authenticate(verifier),
		guard.ResolveTenant(directory),
		guard.RequireRole(sec.RoleSuperAdmin, sec.RoleAdmin, sec.RoleInstructor),
	)
	adminPipeline := guard.Pipeline(
		guard.Authenticate(verifier),
		guard.ResolveTenant(directory),
		guard.RequireRole(sec.RoleSuperAdmin, sec.RoleAdmin),
	)
	platformPipeline := guard.Pipeline(
		guard.Authenticate(verifier),
		guard.ResolveTenant(directory),
		guard.RequireRole(sec.RoleSuperAdmin),
	)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Route("/courses", func(group chi.Router) {
			group.Use(staffPipeline)
			h.Course.RegisterRoutes(group)
		})
		api.Route("/documents", func(group chi.Router) {
			group.Use(staffPipeline)
			h.Document.RegisterRoutes(group)
		})
		api.Route("/quizzes", func(group chi.Router) {
			group.Use(staffPipeline)
			h.Quiz.RegisterRoutes(group)
		})
		api.Route("/accounts", func(group chi.Router) {
			group.Use(adminPipeline)
			h.Account.RegisterRoutes(group)
		})
		api.Route("/subscriptions", func(group chi.Router) {
			group.Use(adminPipeline)
			h.Subscription.RegisterRoutes(group)
		})
		api.Route("/tenants", func(group chi.Router) {
			group.Use(platformPipeline)
			h.Tenant.RegisterRoutes(group)
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

// # Server Lifecycle

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
