// Package httptransport assembles the HTTP surface: handler registration,
// operational endpoints, and nothing else. Business logic stays in the
// service packages.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warden/internal/platform/middleware"
)

// Registrar is implemented by every handler package that mounts routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports readiness of one backing dependency.
type HealthChecker func() error

// Options carries everything the router needs beyond the handlers.
type Options struct {
	Logger     *slog.Logger
	AdminToken string
	Health     map[string]HealthChecker
}

// NewRouter wires handlers, health probes and the metrics endpoint.
func NewRouter(opts Options, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealth(opts.Health))

	metricsHandler := promhttp.Handler()
	if opts.AdminToken != "" {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminToken(opts.AdminToken, opts.Logger))
			r.Handle("/metrics", metricsHandler)
		})
	} else {
		r.Handle("/metrics", metricsHandler)
	}

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check(); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded","failing":"` + name + `"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
