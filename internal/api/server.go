// Package api exposes the simulation engine over HTTP: one POST endpoint
// per simulator, a benchmark-rate endpoint, health, and Prometheus metrics.
package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/finsim/finance-simulator/internal/calculation"
	"github.com/finsim/finance-simulator/internal/metrics"
	"github.com/finsim/finance-simulator/internal/refrate"
)

// Server wires the engine, the benchmark-rate client and the router.
type Server struct {
	engine *calculation.CalculationEngine
	rates  *refrate.Client
	logger *slog.Logger
}

// NewServer builds a server. A nil rates client disables the benchmark
// endpoint's upstream and serves the fallback; a nil logger discards logs.
func NewServer(engine *calculation.CalculationEngine, rates *refrate.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if rates == nil {
		rates = refrate.NewClient(refrate.Config{})
	}
	return &Server{engine: engine, rates: rates, logger: logger}
}

// Router assembles the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(countRequests)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rates/benchmark", s.handleBenchmarkRate)
		r.Route("/simulations", func(r chi.Router) {
			r.Post("/compound-interest", s.handleCompound)
			r.Post("/dividends", s.handleDividends)
			r.Post("/amortization", s.handleAmortization)
			r.Post("/rent-vs-buy", s.handleRentVsBuy)
			r.Post("/debt-payoff", s.handleDebtPayoff)
			r.Post("/fire", s.handleFire)
			r.Post("/roi", s.handleRoi)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// countRequests records per-route request counters.
func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method, r.URL.Path, strconv.Itoa(ww.Status()),
		).Inc()
	})
}
