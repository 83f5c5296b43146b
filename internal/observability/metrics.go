package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the statistics
// computer.
type Metrics struct {
	ComputationsTotal prometheus.Counter
	FailuresTotal     *prometheus.CounterVec // label: reason={invalid_input,missing_unit,unit_mismatch,ambiguous,out_of_range,unknown}
	BatchReadings     prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ComputationsTotal,
		m.FailuresTotal,
		m.BatchReadings,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ComputationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tempstats",
			Name:      "computations_total",
			Help:      "Total batches successfully reduced to statistics.",
		}),
		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tempstats",
			Name:      "failures_total",
			Help:      "Rejected batches by failure reason.",
		}, []string{"reason"}),
		BatchReadings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tempstats",
			Name:      "batch_readings",
			Help:      "Number of readings per computed batch.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 250},
		}),
	}
}
