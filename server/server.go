package server

import (
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/cicd-demo/backend/api/v1/handlers"
	apimw "github.com/cicd-demo/backend/api/v1/middleware"
	"github.com/cicd-demo/backend/config"
)

// NewRouter builds the HTTP handler for every backend route.
func NewRouter(cfg *config.Config, logger *logrus.Logger) http.Handler {
	infoHandler := &handlers.InfoHandler{Env: cfg.Env}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(apimw.NewRequestLogger(logger).Handler)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))
	r.Use(apimw.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", handlers.LivenessHandler)
	r.Get("/api/health", handlers.HealthHandler)
	r.Get("/api/version", infoHandler.Version)

	return r
}

func corsOptions(origins []string) cors.Options {
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			break
		}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders: []string{"Link"},
		// Browsers reject credentialed responses with a wildcard origin.
		AllowCredentials: !wildcard,
		MaxAge:           300,
	}
}

// ListenAndServe binds cfg.Addr once and serves until the listener fails.
func ListenAndServe(cfg *config.Config, logger *logrus.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	return Serve(ln, cfg, logger)
}

// Serve logs the startup line and serves on ln. It always returns a
// non-nil error, as http.Serve does.
func Serve(ln net.Listener, cfg *config.Config, logger *logrus.Logger) error {
	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		port = cfg.Port
	}

	logger.WithFields(logrus.Fields{
		"port": port,
		"env":  cfg.Env,
	}).Infof("Backend running on port %s", port)

	if err := http.Serve(ln, NewRouter(cfg, logger)); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
