package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnregistered() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "requests"},
			[]string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "duration"},
			[]string{"route"}),
	}
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := newUnregistered()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/companies/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/companies/123", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/companies/456", nil))

	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Requests)
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Len(t, families[0].GetMetric(), 1)

	metric := families[0].GetMetric()[0]
	labels := map[string]string{}
	for _, l := range metric.GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	assert.Equal(t, "/companies/{code}", labels["route"])
	assert.Equal(t, "404", labels["status"])
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveRequest("/", "GET", 200, 0) })
}
