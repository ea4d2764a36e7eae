package metrics

import (
	"github.com/marmos91/archreg/pkg/registry/store"
)

// NewStoreMetrics creates a new Prometheus-backed store metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
// When nil is returned, callers should pass nil to store.New, which
// results in zero overhead.
//
// Example usage:
//
//	// With metrics enabled
//	metrics.InitRegistry()
//	reg, err := store.New(config, metrics.NewStoreMetrics())
//
//	// Without metrics (zero overhead)
//	reg, err := store.New(config, nil)
func NewStoreMetrics() store.Metrics {
	if !IsEnabled() || newPrometheusStoreMetrics == nil {
		return nil
	}

	return newPrometheusStoreMetrics()
}

// newPrometheusStoreMetrics is implemented in pkg/metrics/prometheus/store.go.
// This indirection avoids import cycles while keeping the API clean.
var newPrometheusStoreMetrics func() store.Metrics

// RegisterStoreMetricsConstructor registers the Prometheus store metrics
// constructor. Called by pkg/metrics/prometheus/store.go during package
// initialization.
func RegisterStoreMetricsConstructor(constructor func() store.Metrics) {
	newPrometheusStoreMetrics = constructor
}
