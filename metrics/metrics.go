// Package metrics exposes Prometheus metrics for routing and store lookups.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	routeDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "careline_route_decisions_total",
		Help: "Routing decisions by intent and decision source",
	}, []string{"intent", "source"})

	delegateFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "careline_delegate_fallback_total",
		Help: "Delegate classification failures that fell back to rules",
	}, []string{"reason"})

	delegateLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "careline_delegate_latency_ms",
		Help:    "Latency of delegate classification calls in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2000, 4000, 8000, 15000},
	})

	storeSearchLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "careline_store_search_latency_ms",
		Help:    "Latency of store searches in milliseconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	}, []string{"store"})

	cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "careline_decision_cache_total",
		Help: "Decision cache lookups by outcome",
	}, []string{"outcome"})
)

func ensureRegistered() {
	once.Do(func() {
		prometheus.MustRegister(routeDecisions, delegateFallbacks, delegateLatency,
			storeSearchLatency, cacheHits)
	})
}

// ObserveDecision counts one routing decision.
func ObserveDecision(intent, source string) {
	ensureRegistered()
	routeDecisions.WithLabelValues(intent, source).Inc()
}

// ObserveFallback counts one delegate failure that fell back to rules.
func ObserveFallback(reason string) {
	ensureRegistered()
	delegateFallbacks.WithLabelValues(reason).Inc()
}

// ObserveDelegate records the latency of one delegate call.
func ObserveDelegate(start time.Time) {
	ensureRegistered()
	delegateLatency.Observe(float64(time.Since(start).Milliseconds()))
}

// ObserveSearch records the latency of one store search.
func ObserveSearch(store string, start time.Time) {
	ensureRegistered()
	storeSearchLatency.WithLabelValues(store).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
}

// ObserveCache counts one decision cache lookup ("hit" or "miss").
func ObserveCache(outcome string) {
	ensureRegistered()
	cacheHits.WithLabelValues(outcome).Inc()
}
