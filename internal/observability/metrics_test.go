package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.CountUnparsable(2)
	m.CountUnparsable(0)
	m.CountStale("data")
	m.CountStale("data")
	m.CountCache(true)
	m.CountCache(false)
	m.CountCache(false)
	m.ObserveSnapshot(6, 14, 57)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UnparsableTimestamps))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StaleResponses.WithLabelValues("data")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 57.0, testutil.ToFloat64(m.SnapshotRecords.WithLabelValues("logs")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CountUnparsable(1)
		m.CountStale("summary")
		m.CountCache(true)
		m.ObserveSnapshot(1, 1, 1)
	})
}
