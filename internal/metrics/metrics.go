// Package metrics holds the Prometheus collectors for fetch cycles.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for FetchCycles.
const (
	OutcomePopulated = "populated"
	OutcomeError     = "error"
	OutcomeOffline   = "offline"
)

type Metrics struct {
	FetchCycles    *prometheus.CounterVec
	FetchDuration  prometheus.Histogram
	DisplayedItems prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FetchCycles: f.NewCounterVec(prometheus.CounterOpts{
			Name: "blogreader_fetch_cycles_total",
			Help: "Fetch cycles by outcome.",
		}, []string{"outcome"}),
		FetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "blogreader_fetch_duration_seconds",
			Help:    "Time from fetch start to result delivery.",
			Buckets: prometheus.DefBuckets,
		}),
		DisplayedItems: f.NewGauge(prometheus.GaugeOpts{
			Name: "blogreader_displayed_items",
			Help: "Items shown by the last populated cycle.",
		}),
	}
}

// ObserveCycle records one finished fetch cycle.
func (m *Metrics) ObserveCycle(outcome string, elapsed time.Duration, items int) {
	if m == nil {
		return
	}
	m.FetchCycles.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOffline {
		return
	}
	m.FetchDuration.Observe(elapsed.Seconds())
	if outcome == OutcomePopulated {
		m.DisplayedItems.Set(float64(items))
	}
}
