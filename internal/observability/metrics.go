package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счётчики и гистограммы дашборда
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration      *prometheus.HistogramVec // labels: method, route
	AggregateCache    *prometheus.CounterVec   // labels: result={hit,miss,error}
	AggregateDuration prometheus.Histogram
	DatasetRecords    prometheus.Gauge
}

// NewMetrics создаёт метрики и регистрирует их в стандартном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.AggregateCache,
		m.AggregateDuration,
		m.DatasetRecords,
	)
	return m
}

// NewMetricsForTesting создаёт метрики без регистрации, чтобы повторные
// вызовы из тестов не паниковали с "already registered".
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crash_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crash_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		AggregateCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crash_dashboard",
			Name:      "aggregate_cache_total",
			Help:      "Aggregate cache lookups by result.",
		}, []string{"result"}),
		AggregateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crash_dashboard",
			Name:      "aggregate_duration_seconds",
			Help:      "Duration of one street aggregation over the dataset.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crash_dashboard",
			Name:      "dataset_records",
			Help:      "Number of accident records loaded at startup.",
		}),
	}
}
