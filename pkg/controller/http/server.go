package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/m-mizutani/reldash/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr           string
	allowedOrigins []string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithAllowedOrigins sets the origins allowed to call the JSON API
func WithAllowedOrigins(origins ...string) Option {
	return func(c *config) {
		c.allowedOrigins = origins
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	dashboardUC interfaces.DashboardUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:           "localhost:8080",
		allowedOrigins: []string{"*"},
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", handleHealth)

	// Dashboard
	dashboardHandler := NewDashboardHandler(dashboardUC)
	router.Get("/", dashboardHandler.Page)
	router.Route("/api", func(r chi.Router) {
		r.Get("/releases", dashboardHandler.Releases)
		r.Get("/summary", dashboardHandler.Summary)
		r.Get("/stats", dashboardHandler.Stats)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
