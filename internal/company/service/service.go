// Package service assembles the unified company record from the business
// registry, the enrichment register, VAT validation and geocoding.
//
// Only the two primary registries are required. Every auxiliary source
// degrades to an absent value and is reported in Entity.Degraded.
package service

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

	"github.com/avelineg/siren-search-widget-sub000/internal/company/decode"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/entity"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/identifier"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/metrics"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/providers"
	dErrors "github.com/avelineg/siren-search-widget-sub000/pkg/domain-errors"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/circuit"
	"github.com/avelineg/siren-search-widget-sub000/pkg/requestcontext"
)

// ErrNotFound is returned when no primary registry resolved the input.
var ErrNotFound = errors.New("company not found")

const (
	defaultDocumentsPageSize = 20
	defaultSearchLimit       = 10
	maxSearchLimit           = 100
	establishmentsLimit      = 100
)

// Ports groups the upstream dependencies. All of them are required.
type Ports struct {
	Registry   BusinessRegistry
	Enrichment EnrichmentSource
	VAT        VATValidator
	Geocoder   Geocoder
	Batch      BatchGeocoder
}

// Service resolves company lookups.
type Service struct {
	registry   BusinessRegistry
	enrichment EnrichmentSource
	vat        VATValidator
	geocoder   Geocoder
	batch      BatchGeocoder

	decoder           Decoder
	supersessor       *Supersessor
	enrichmentBreaker *circuit.Breaker
	vatBreaker        *circuit.Breaker
	documentsPageSize int

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

func WithDecoder(d Decoder) Option {
	return func(s *Service) {
		if d != nil {
			s.decoder = d
		}
	}
}

// WithDocumentsPageSize sets the page size used when listing filed documents.
func WithDocumentsPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.documentsPageSize = size
		}
	}
}

// WithBreakers replaces the circuit breakers guarding the enrichment
// register and VAT validation.
func WithBreakers(enrichment, vat *circuit.Breaker) Option {
	return func(s *Service) {
		if enrichment != nil {
			s.enrichmentBreaker = enrichment
		}
		if vat != nil {
			s.vatBreaker = vat
		}
	}
}

func WithSupersessor(sup *Supersessor) Option {
	return func(s *Service) {
		if sup != nil {
			s.supersessor = sup
		}
	}
}

func New(ports Ports, opts ...Option) (*Service, error) {
	switch {
	case ports.Registry == nil:
		return nil, errors.New("business registry is required")
	case ports.Enrichment == nil:
		return nil, errors.New("enrichment source is required")
	case ports.VAT == nil:
		return nil, errors.New("vat validator is required")
	case ports.Geocoder == nil:
		return nil, errors.New("geocoder is required")
	case ports.Batch == nil:
		return nil, errors.New("batch geocoder is required")
	}

	s := &Service{
		registry:          ports.Registry,
		enrichment:        ports.Enrichment,
		vat:               ports.VAT,
		geocoder:          ports.Geocoder,
		batch:             ports.Batch,
		decoder:           decode.Default(),
		supersessor:       NewSupersessor(),
		enrichmentBreaker: circuit.New(SourceEnrichment),
		vatBreaker:        circuit.New(entity.SourceVAT),
		documentsPageSize: defaultDocumentsPageSize,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:            otel.Tracer("siren/company"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Resolve classifies code and assembles the unified entity. Name queries
// resolve the first search hit. Only InvalidInput, NotFound and Conflict
// (superseded by a newer lookup of the same session) are returned; every
// auxiliary failure degrades the entity instead.
func (s *Service) Resolve(ctx context.Context, code string) (*entity.Entity, error) {
	start := time.Now()
	c, err := identifier.Classify(code)
	if err != nil {
		s.metrics.IncrementLookup("invalid", "invalid_input")
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error())
	}

	ctx, release := s.supersessor.Begin(ctx, requestcontext.SessionID(ctx))
	defer release()

	ctx, span := s.tracer.Start(ctx, "company.Resolve",
		trace.WithAttributes(attribute.String("company.kind", c.Kind.String())))
	defer span.End()

	e, err := s.resolve(ctx, c)
	s.metrics.ObserveResolveLatency(time.Since(start))

	if Superseded(ctx) {
		s.metrics.IncrementSuperseded()
		s.metrics.IncrementLookup(c.Kind.String(), "superseded")
		return nil, dErrors.Wrap(ErrSuperseded, dErrors.CodeConflict, "lookup superseded by a newer one")
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.metrics.IncrementLookup(c.Kind.String(), string(dErrors.CodeOf(err)))
		return nil, err
	}
	s.metrics.IncrementLookup(c.Kind.String(), "ok")
	return e, nil
}

func (s *Service) resolve(ctx context.Context, c identifier.Classification) (*entity.Entity, error) {
	if c.Kind != identifier.KindNameQuery {
		return s.resolveIdentifier(ctx, c)
	}

	hits, err := s.Search(ctx, c.Code, 1)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, dErrors.Wrap(ErrNotFound, dErrors.CodeNotFound, fmt.Sprintf("no company matches %q", c.Code))
	}
	siren, err := identifier.ParseSiren(hits[0].Siren)
	if err != nil {
		return nil, dErrors.Wrap(ErrNotFound, dErrors.CodeNotFound, fmt.Sprintf("no company matches %q", c.Code))
	}
	return s.resolveIdentifier(ctx, identifier.Classification{
		Kind:  identifier.KindSiren,
		Code:  siren.String(),
		Siren: siren,
	})
}

// Search runs a full-text search on legal unit names.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]models.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "search query is required")
	}
	switch {
	case limit <= 0:
		limit = defaultSearchLimit
	case limit > maxSearchLimit:
		limit = maxSearchLimit
	}

	hits, err := observe(ctx, s, "sirene_search", func(ctx context.Context) ([]models.SearchHit, error) {
		return s.registry.SearchByName(ctx, query, limit)
	})
	if err != nil {
		return nil, upstreamError(err, "company search failed")
	}
	if hits == nil {
		hits = []models.SearchHit{}
	}
	return hits, nil
}

// Establishments lists the establishments of a legal unit. When sessionKey
// is set the list is geocoded through the session cache.
func (s *Service) Establishments(ctx context.Context, siren, sessionKey string) ([]models.Establishment, error) {
	parsed, err := identifier.ParseSiren(siren)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error())
	}

	records, err := observe(ctx, s, "sirene_establishments", func(ctx context.Context) ([]models.EstablishmentRecord, error) {
		return s.registry.ListEstablishments(ctx, parsed.String(), establishmentsLimit)
	})
	if err != nil {
		if providers.IsNotFound(err) {
			return nil, dErrors.Wrap(errors.Join(ErrNotFound, err), dErrors.CodeNotFound, "no establishment for "+parsed.String())
		}
		return nil, upstreamError(err, "establishment listing failed")
	}

	items := make([]models.Establishment, 0, len(records))
	for _, r := range records {
		items = append(items, models.Establishment{
			Siret:     r.Siret,
			Name:      r.Name,
			Address:   joinAddress(r.Address),
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Active:    strings.TrimSpace(r.ClosureDate) == "",
		})
	}
	if sessionKey == "" {
		return items, nil
	}
	return s.GeocodeBatch(ctx, sessionKey, items)
}

// GeocodeBatch geocodes items sequentially with pacing, reusing the cached
// result for the same session key and input set.
func (s *Service) GeocodeBatch(ctx context.Context, sessionKey string, items []models.Establishment) ([]models.Establishment, error) {
	ctx, span := s.tracer.Start(ctx, "company.GeocodeBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(items))))
	defer span.End()

	out, err := s.batch.Geocode(ctx, sessionKey, items)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "geocoding batch timed out")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "geocoding batch interrupted")
	}
	return out, nil
}

// upstreamError converts a provider failure of a required call.
func upstreamError(err error, message string) error {
	switch providers.GetCategory(err) {
	case providers.ErrorTimeout:
		return dErrors.Wrap(err, dErrors.CodeTimeout, message)
	case providers.ErrorNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, message)
	default:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, message)
	}
}

// observe runs one upstream call inside a span and records its latency.
func observe[T any](ctx context.Context, s *Service, source string, call func(context.Context) (T, error)) (T, error) {
	ctx, span := s.tracer.Start(ctx, "upstream."+source)
	defer span.End()

	start := time.Now()
	result, err := call(ctx)
	s.metrics.ObserveUpstreamLatency(source, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return result, err
}
