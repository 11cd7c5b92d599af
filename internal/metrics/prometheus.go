package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	distanceRequests *prometheus.CounterVec
	distanceErrors   *prometheus.CounterVec
	batchSize        prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer uses the default prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	metrics := &Metrics{
		distanceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geodist_distance_requests_total",
			Help: "The total number of distances computed",
		}, []string{"strategy", "unit"}),
		distanceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geodist_distance_errors_total",
			Help: "The total number of rejected distance calculations",
		}, []string{"kind"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "geodist_batch_size",
			Help:    "The number of pairs in batch distance requests",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geodist_cache_lookups_total",
			Help: "The total number of distance cache lookups",
		}, []string{"result"}),
	}
	metrics.register(reg)
	return metrics
}

func (m *Metrics) register(reg prometheus.Registerer) {
	reg.MustRegister(m.distanceRequests, m.distanceErrors, m.batchSize, m.cacheLookups)
}

func (m *Metrics) IncrementDistanceRequests(strategy, unit string) {
	m.distanceRequests.WithLabelValues(strategy, unit).Inc()
}

func (m *Metrics) AddDistanceRequests(strategy, unit string, n int) {
	m.distanceRequests.WithLabelValues(strategy, unit).Add(float64(n))
}

func (m *Metrics) IncrementDistanceErrors(kind string) {
	m.distanceErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveBatchSize(size int) {
	m.batchSize.Observe(float64(size))
}

func (m *Metrics) IncrementCacheHits() {
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) IncrementCacheMisses() {
	m.cacheLookups.WithLabelValues("miss").Inc()
}
