// Package metrics provides Prometheus metrics for the node layer.
//
// Counters register against the default registry via promauto; a library
// consumer exposes them by serving promhttp.Handler() wherever it already
// serves HTTP. The CLI does not serve metrics itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Attribute cache effectiveness, per attribute (stat, children, data).
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fnode_cache_hits_total",
			Help: "Total number of node attribute reads served from cache",
		},
		[]string{"attribute"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fnode_cache_misses_total",
			Help: "Total number of node attribute reads that invoked the OS",
		},
		[]string{"attribute"},
	)

	retryAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fnode_retry_attempts_total",
			Help: "Total number of retries after transient filesystem errors",
		},
	)

	registrySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fnode_registry_nodes",
			Help: "Number of distinct nodes held by tree registries",
		},
	)
)

// CacheHit records an attribute read served from a fresh cache entry.
func CacheHit(attribute string) {
	cacheHitsTotal.WithLabelValues(attribute).Inc()
}

// CacheMiss records an attribute read that had to invoke the OS call.
func CacheMiss(attribute string) {
	cacheMissesTotal.WithLabelValues(attribute).Inc()
}

// RetryAttempt records one retry after a transient filesystem error.
func RetryAttempt() {
	retryAttemptsTotal.Inc()
}

// RegistryGrew records a node added to a tree registry.
func RegistryGrew() {
	registrySize.Inc()
}

// RegistryReset records n nodes dropped from a tree registry.
func RegistryReset(n int) {
	registrySize.Sub(float64(n))
}
