package router

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	BatchesTotal  *prometheus.CounterVec
	QueriesTotal  *prometheus.CounterVec
	BatchDuration prometheus.Histogram
}

var (
	metricsOnce     sync.Once
	metricsInstance *Metrics
)

func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			BatchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "rank_eval_batches_total",
				Help: "Evaluated batches by outcome",
			}, []string{"outcome"}),
			QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "rank_eval_queries_total",
				Help: "Scored queries by outcome",
			}, []string{"outcome"}),
			BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "rank_eval_batch_duration_seconds",
				Help:    "Time spent scoring one batch",
				Buckets: prometheus.DefBuckets,
			}),
		}
	})
	return metricsInstance
}

func (m *Metrics) RecordBatch(outcome string, evaluated, failed int, seconds float64) {
	if m == nil {
		return
	}
	m.BatchesTotal.WithLabelValues(outcome).Inc()
	m.QueriesTotal.WithLabelValues("ok").Add(float64(evaluated))
	m.QueriesTotal.WithLabelValues("failed").Add(float64(failed))
	m.BatchDuration.Observe(seconds)
}
