package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are shared by all the caches of a registry.
type Metrics struct {
	requests      *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_cache_requests_total",
			Help: "Count the number of record cache requests by result (hit, miss, shared, error).",
		},
		[]string{"source", "result"})
	err := registry.Register(requests)
	if err != nil {
		return nil, err
	}
	fetchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "record_cache_fetch_duration_seconds",
			Help:    "Time to fetch records from their source",
			Buckets: []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1, 2, 5, 10},
		},
		[]string{"source"})
	err = registry.Register(fetchDuration)
	if err != nil {
		return nil, err
	}
	return &Metrics{
		requests:      requests,
		fetchDuration: fetchDuration,
	}, nil
}

func (m *Metrics) request(source string, result string) {
	m.requests.With(prometheus.Labels{"source": source, "result": result}).Inc()
}
