package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RecordsLoaded   *prometheus.CounterVec
	Operations      *prometheus.CounterVec
	PersistFailures *prometheus.CounterVec
	PersistTime     prometheus.Histogram
}

// NewMetrics creates new prometheus metrics registered against reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsLoaded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "The total number of records loaded from the backing files",
		}, []string{"entity"}),
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "The total number of manager operations by outcome",
		}, []string{"entity", "operation", "status"}),
		PersistFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "The total number of failed backing-file rewrites",
		}, []string{"entity"}),
		PersistTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persist_time_seconds",
			Help:      "Time taken to rewrite a backing file",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
