package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/archreg/pkg/metrics"
	"github.com/marmos91/archreg/pkg/registry/store"
)

func init() {
	metrics.RegisterStoreMetricsConstructor(func() store.Metrics {
		return NewStoreMetrics()
	})
}

// storeMetrics is the Prometheus implementation for registry store metrics.
type storeMetrics struct {
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

// NewStoreMetrics creates a new Prometheus-backed store metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewStoreMetrics() store.Metrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &storeMetrics{
		operations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "archreg_registry_operations_total",
				Help: "Total number of registry operations by operation kind",
			},
			[]string{"operation"}, // "get", "add", "remove", "list"
		),
		failures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "archreg_registry_operation_failures_total",
				Help: "Total number of failed registry operations by operation kind",
			},
			[]string{"operation"}, // "get", "add", "remove", "list"
		),
	}
}

// RecordOperation counts one completed registry operation.
func (m *storeMetrics) RecordOperation(op string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
}

// RecordFailure counts one failed registry operation.
func (m *storeMetrics) RecordFailure(op string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(op).Inc()
}
