// Package observability owns the domain Prometheus collectors. HTTP request metrics
// come from the fiberprometheus middleware; these count what the data path sees.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "supportdash"

// Metrics groups the collectors registered for one process.
type Metrics struct {
	UnparsableTimestamps prometheus.Counter
	StaleResponses       *prometheus.CounterVec
	CacheLookups         *prometheus.CounterVec
	SnapshotRecords      *prometheus.GaugeVec
}

// NewMetrics registers the collectors on reg. Passing a fresh prometheus.NewRegistry()
// keeps tests independent of the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UnparsableTimestamps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unparsable_timestamps_total",
			Help:      "Logs excluded by a trends pipeline pass because CreatedAt could not be parsed.",
		}),
		StaleResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Trends responses discarded because a newer request from the same client arrived.",
		}, []string{"view"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trends_cache_lookups_total",
			Help:      "Trends cache lookups by result.",
		}, []string{"result"}),
		SnapshotRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_records",
			Help:      "Records held in the loaded snapshot.",
		}, []string{"kind"}),
	}
}

// CountUnparsable matches trends.WithUnparsableHook.
func (m *Metrics) CountUnparsable(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.UnparsableTimestamps.Add(float64(n))
}

// CountStale records one discarded response for view.
func (m *Metrics) CountStale(view string) {
	if m == nil {
		return
	}
	m.StaleResponses.WithLabelValues(view).Inc()
}

// CountCache records a cache hit or miss.
func (m *Metrics) CountCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveSnapshot publishes the snapshot size.
func (m *Metrics) ObserveSnapshot(users, apps, logs int) {
	if m == nil {
		return
	}
	m.SnapshotRecords.WithLabelValues("users").Set(float64(users))
	m.SnapshotRecords.WithLabelValues("apps").Set(float64(apps))
	m.SnapshotRecords.WithLabelValues("logs").Set(float64(logs))
}
