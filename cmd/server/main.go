package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/geocoder"
	companyhandler "github.com/avelineg/siren-search-widget-sub000/internal/company/handler"
	companymetrics "github.com/avelineg/siren-search-widget-sub000/internal/company/metrics"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers/geo"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers/rne"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers/sirene"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers/vies"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/service"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/store"
	"github.com/avelineg/siren-search-widget-sub000/internal/platform/config"
	"github.com/avelineg/siren-search-widget-sub000/internal/platform/httpserver"
	"github.com/avelineg/siren-search-widget-sub000/internal/platform/logger"
	httpmetrics "github.com/avelineg/siren-search-widget-sub000/internal/platform/metrics"
	"github.com/avelineg/siren-search-widget-sub000/internal/platform/redis"
)

const (
	shutdownTimeout  = 15 * time.Second
	nominatimMinWait = time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envLoaded {
		log.Debug("loaded .env file")
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("configuration values replaced by defaults", "error", err)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	companyMetrics := companymetrics.New()
	svc, err := buildCompanyService(cfg, log, companyMetrics, redisClient)
	if err != nil {
		return err
	}

	deps := routerDeps{
		logger:      log,
		httpMetrics: httpmetrics.New(),
		company:     companyhandler.New(svc, log, companyMetrics),
	}
	if redisClient != nil {
		deps.redis = redisClient
	}
	srv := httpserver.New(cfg.Addr, newRouter(deps))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting siren search service", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildCompanyService(cfg config.Config, log *slog.Logger, m *companymetrics.Metrics, redisClient *redis.Client) (*service.Service, error) {
	registry := sirene.New(cfg.Sirene.BaseURL, cfg.UpstreamTimeout, sirene.WithAPIKey(cfg.Sirene.APIKey))
	enrichment := rne.New(cfg.RNE.BaseURL, cfg.UpstreamTimeout, rne.WithToken(cfg.RNE.Token))
	vatChecker := vies.New(cfg.VIES.BaseURL, cfg.UpstreamTimeout)

	geoOpts := []geocoder.Option{geocoder.WithLogger(log), geocoder.WithMetrics(m)}
	resolver := geocoder.New(
		geo.NewBAN(cfg.Geocoding.BANBaseURL, cfg.UpstreamTimeout),
		geo.NewNominatim(cfg.Geocoding.NominatimBaseURL, cfg.Geocoding.NominatimUserAgent, cfg.UpstreamTimeout, nominatimMinWait),
		geoOpts...,
	)
	batch := geocoder.NewBatch(resolver, geocoder.NewRatePacer(cfg.Geocoding.Pacing), geoOpts...)

	var cacheStore geocoder.Store = store.NewInMemoryStore()
	if redisClient != nil {
		cacheStore = store.NewRedisStore(redisClient.Client, cfg.Geocoding.CacheTTL)
		log.Info("geocode batch cache backed by redis", "ttl", cfg.Geocoding.CacheTTL)
	}

	return service.New(service.Ports{
		Registry:   registry,
		Enrichment: enrichment,
		VAT:        vatChecker,
		Geocoder:   resolver,
		Batch:      geocoder.NewSessionCache(cacheStore, batch, geoOpts...),
	},
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithDocumentsPageSize(cfg.DocumentsPageSize),
	)
}
