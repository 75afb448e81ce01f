// Package router assembles the HTTP surface: the checkout endpoints,
// operational endpoints and the middleware chain around them.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/openapi"
	"github.com/DanielPopoola/ficmart-checkout/internal/observability"
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	healthCheckTimeout = 2 * time.Second
	catchAllPattern    = "/"
)

// routeMethods are the methods any registered route answers to.
var routeMethods = []string{http.MethodGet, http.MethodPost}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Handlers *handlers.Handlers
	Metrics  *observability.Metrics
	// Document supplies the required request fields; nil skips the check.
	Document       *openapi3.T
	OpenAPI        http.Handler
	Health         HealthChecker
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// New returns the root handler. Middleware order, outermost first:
// observability, CORS, recovery, timeout.
func New(cfg Config) http.Handler {
	mux := http.NewServeMux()

	var bodyChecks []api.MiddlewareFunc
	if cfg.Document != nil {
		bodyChecks = append(bodyChecks, openapi.RequireBodyFields(cfg.Document, cfg.Logger))
	}
	cfg.Handlers.RegisterRoutes(mux, bodyChecks...)

	mux.HandleFunc("GET /healthz", healthHandler(cfg.Health, cfg.Logger))
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}
	if cfg.OpenAPI != nil {
		mux.Handle("GET /openapi.json", cfg.OpenAPI)
	}
	mux.HandleFunc(catchAllPattern, unmatched(mux, cfg.Logger))

	handler := http.Handler(mux)
	handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	handler = middleware.Recovery(cfg.Logger)(handler)
	handler = middleware.CORS()(handler)
	handler = middleware.Observability(cfg.Logger, mux, cfg.Metrics)(handler)

	return handler
}

func healthHandler(checker HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()

			if err := checker.Ping(ctx); err != nil {
				rest.Logger(r.Context(), logger).Warn("health check failed", "error", err)
				rest.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// unmatched answers requests no route claims with the JSON error envelope:
// 405 with an Allow header when the path exists under another method,
// 404 otherwise.
func unmatched(mux *http.ServeMux, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := rest.Logger(r.Context(), logger)

		var allowed []string
		for _, method := range routeMethods {
			candidate := r.Clone(r.Context())
			candidate.Method = method
			if _, pattern := mux.Handler(candidate); pattern != catchAllPattern && pattern != "" {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(append(allowed, http.MethodOptions), ", "))
			rest.WriteError(w, application.NewMethodNotAllowedError(r.Method, r.URL.Path), log)
			return
		}
		rest.WriteError(w, application.NewRouteNotFoundError(r.URL.Path), log)
	}
}
