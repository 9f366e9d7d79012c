package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for company lookups and geocoding.
// All methods are nil-safe so tests can pass a nil *Metrics.
type Metrics struct {
	// Upstream call latencies by source
	UpstreamLatency *prometheus.HistogramVec

	// Auxiliary sources that degraded, by source
	DegradedSources *prometheus.CounterVec

	// Lookup outcomes by input kind and outcome
	LookupOutcome *prometheus.CounterVec

	// Overall resolve latency
	ResolveLatency prometheus.Histogram

	// Geocoding outcomes by provider ("ban", "nominatim", "none") and locality match
	GeocodeOutcome *prometheus.CounterVec

	// Batch cache lookups by result ("hit", "miss")
	CacheLookups *prometheus.CounterVec

	// Lookups cancelled because the same session started a newer one
	Superseded prometheus.Counter

	// Size of batch geocoding requests
	BatchSize prometheus.Histogram
}

// New creates a new Metrics instance with all company metrics registered.
func New() *Metrics {
	return &Metrics{
		UpstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "siren_upstream_duration_seconds",
			Help:    "Duration of upstream registry, validation and geocoding calls by source",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"source"}), // source: "sirene", "rne", "documents", "vies", "geocoding"

		DegradedSources: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "siren_degraded_sources_total",
			Help: "Auxiliary sources that failed during a lookup, by source",
		}, []string{"source"}),

		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "siren_lookups_total",
			Help: "Company lookups by input kind and outcome",
		}, []string{"kind", "outcome"}),

		ResolveLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "siren_resolve_duration_seconds",
			Help:    "Duration of a full company resolution including enrichment",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		GeocodeOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "siren_geocode_outcomes_total",
			Help: "Geocoding outcomes by provider and whether the locality matched",
		}, []string{"provider", "city_match"}),

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "siren_geocode_cache_lookups_total",
			Help: "Batch geocoding cache lookups by result",
		}, []string{"result"}),

		Superseded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "siren_lookups_superseded_total",
			Help: "Lookups cancelled because a newer lookup started in the same session",
		}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "siren_geocode_batch_size",
			Help:    "Number of establishments per batch geocoding request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

// ObserveUpstreamLatency records the duration of a call to an upstream source.
func (m *Metrics) ObserveUpstreamLatency(source string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementDegraded records a degraded auxiliary source.
func (m *Metrics) IncrementDegraded(source string) {
	if m != nil {
		m.DegradedSources.WithLabelValues(source).Inc()
	}
}

// IncrementLookup records a lookup outcome.
func (m *Metrics) IncrementLookup(kind, outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveResolveLatency records the total resolution duration.
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}

// IncrementGeocode records which provider resolved an address.
func (m *Metrics) IncrementGeocode(provider string, cityMatch bool) {
	if m != nil {
		match := "false"
		if cityMatch {
			match = "true"
		}
		m.GeocodeOutcome.WithLabelValues(provider, match).Inc()
	}
}

// IncrementCacheLookup records a batch cache hit or miss.
func (m *Metrics) IncrementCacheLookup(hit bool) {
	if m != nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

// IncrementSuperseded records a lookup cancelled by a newer one.
func (m *Metrics) IncrementSuperseded() {
	if m != nil {
		m.Superseded.Inc()
	}
}

// ObserveBatchSize records the size of a batch geocoding request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
