// Package geocoder resolves cleaned addresses to coordinates.
//
// Resolve tries the primary provider and falls back to the secondary one
// only when the primary returns nothing or fails. A locality mismatch is
// reported through CityMatch and never triggers the fallback.
//
// Batch resolves establishment lists sequentially behind a Pacer, and
// SessionCache memoizes whole batches per session key.
package geocoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/address"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/entity"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/metrics"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
)

// ErrUnresolved is returned when no provider produced coordinates.
var ErrUnresolved = errors.New("address could not be geocoded")

const outcomeNone = "none"

// Provider is a single geocoding backend. Search returns (nil, nil) when
// the address yields no result.
type Provider interface {
	ID() string
	Search(ctx context.Context, address string) (*models.GeoResult, error)
}

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Geocoder, Batch or SessionCache.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer("siren/geocoder"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Geocoder resolves one address with a primary and an optional secondary provider.
type Geocoder struct {
	providers []Provider
	options
}

// New creates a Geocoder. A nil secondary disables the fallback.
func New(primary, secondary Provider, opts ...Option) *Geocoder {
	g := &Geocoder{options: newOptions(opts)}
	for _, p := range []Provider{primary, secondary} {
		if p != nil {
			g.providers = append(g.providers, p)
		}
	}
	return g
}

// Resolve geocodes a cleaned address. expected is the locality extracted
// from the raw address; it only feeds CityMatch.
func (g *Geocoder) Resolve(ctx context.Context, cleaned, expected string) (*entity.Geocoding, error) {
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil, ErrUnresolved
	}

	ctx, span := g.tracer.Start(ctx, "geocoder.Resolve")
	defer span.End()

	var errs []error
	for _, p := range g.providers {
		result, err := g.search(ctx, p, cleaned)
		if err != nil {
			g.logger.WarnContext(ctx, "geocoding provider failed",
				"provider", p.ID(),
				"error", err,
			)
			errs = append(errs, err)
			continue
		}
		if result == nil {
			continue
		}

		geo := toGeocoding(p.ID(), result, expected)
		g.metrics.IncrementGeocode(p.ID(), geo.CityMatch)
		span.SetAttributes(
			attribute.String("geocoder.provider", geo.Provider),
			attribute.Bool("geocoder.city_match", geo.CityMatch),
		)
		if !geo.CityMatch {
			g.logger.InfoContext(ctx, "geocoded locality differs from expected",
				"provider", geo.Provider,
				"expected", expected,
				"got", geo.Locality,
			)
		}
		return geo, nil
	}

	g.metrics.IncrementGeocode(outcomeNone, false)
	if len(errs) == 0 {
		return nil, ErrUnresolved
	}
	err := fmt.Errorf("%w: %w", ErrUnresolved, errors.Join(errs...))
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

func (g *Geocoder) search(ctx context.Context, p Provider, cleaned string) (*models.GeoResult, error) {
	ctx, span := g.tracer.Start(ctx, "geocoder.search",
		trace.WithAttributes(attribute.String("geocoder.provider", p.ID())))
	defer span.End()

	start := time.Now()
	result, err := p.Search(ctx, cleaned)
	g.metrics.ObserveUpstreamLatency(p.ID(), time.Since(start))
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

func toGeocoding(provider string, r *models.GeoResult, expected string) *entity.Geocoding {
	match := address.ContainsLocality(r.Label, expected)
	if r.Locality != "" {
		match = address.SameLocality(expected, r.Locality)
	}
	return &entity.Geocoding{
		Coordinates:      entity.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
		Provider:         provider,
		Label:            r.Label,
		Locality:         r.Locality,
		ExpectedLocality: expected,
		CityMatch:        match,
	}
}
