package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpstreamLatency("sirene", time.Millisecond)
		m.IncrementDegraded("rne")
		m.IncrementLookup("siret", "ok")
		m.ObserveResolveLatency(time.Second)
		m.IncrementGeocode("ban", true)
		m.IncrementCacheLookup(false)
		m.IncrementSuperseded()
		m.ObserveBatchSize(3)
	})
}
