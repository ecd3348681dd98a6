// Package metrics provides Prometheus instrumentation for the simulation
// API server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SimulationsTotal counts simulations run, partitioned by kind and outcome.
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finsim_simulations_total",
		Help: "Total number of simulations run",
	}, []string{"kind", "outcome"})

	// SimulationDuration tracks simulation latency by kind.
	SimulationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finsim_simulation_duration_seconds",
		Help:    "Simulation execution latency in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}, []string{"kind"})

	// BenchmarkFallbacks counts rate requests served from the fallback
	// because the upstream series was unavailable.
	BenchmarkFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finsim_benchmark_fallbacks_total",
		Help: "Benchmark rate requests answered with the configured fallback",
	})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finsim_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
