package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	companyhandler "github.com/avelineg/siren-search-widget-sub000/internal/company/handler"
	httpmetrics "github.com/avelineg/siren-search-widget-sub000/internal/platform/metrics"
	"github.com/avelineg/siren-search-widget-sub000/internal/platform/middleware"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/httputil"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type routerDeps struct {
	logger      *slog.Logger
	httpMetrics *httpmetrics.Metrics
	company     *companyhandler.Handler
	redis       HealthChecker
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Session)
	r.Use(middleware.AccessLog(deps.logger))
	r.Use(chimw.Recoverer)
	r.Use(deps.httpMetrics.Middleware)

	r.Get("/healthz", healthHandler(deps.redis))
	r.Handle("/metrics", promhttp.Handler())
	deps.company.Register(r)
	return r
}

func healthHandler(redis HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK
		if redis != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := redis.Health(ctx); err != nil {
				status = map[string]string{"status": "degraded", "redis": err.Error()}
				code = http.StatusServiceUnavailable
			} else {
				status["redis"] = "ok"
			}
		}
		httputil.WriteJSON(w, code, status)
	}
}
