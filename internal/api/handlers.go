package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/finsim/finance-simulator/internal/calculation"
	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/finsim/finance-simulator/internal/metrics"
)

// SimulationResponse wraps a report with a caller-facing ID.
type SimulationResponse struct {
	ID     string                   `json:"id"`
	Report *domain.SimulationReport `json:"report"`
}

// BenchmarkResponse carries the current benchmark rate and where it came
// from ("series" or "fallback").
type BenchmarkResponse struct {
	Rate   float64 `json:"rate"`
	Source string  `json:"source"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCompound(w http.ResponseWriter, r *http.Request) {
	var p domain.CompoundParams
	if !decode(w, r, &p) {
		return
	}
	s.respond(w, r, domain.KindCompoundInterest, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunCompound(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindCompoundInterest, Compound: res}, nil
	})
}

func (s *Server) handleDividends(w http.ResponseWriter, r *http.Request) {
	var p domain.DividendParams
	if !decode(w, r, &p) {
		return
	}
	s.respond(w, r, domain.KindDividends, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunDividends(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindDividends, Dividends: res}, nil
	})
}

func (s *Server) handleAmortization(w http.ResponseWriter, r *http.Request) {
	var p domain.LoanParams
	if !decode(w, r, &p) {
		return
	}
	s.respond(w, r, domain.KindAmortization, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunAmortization(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindAmortization, Loan: res}, nil
	})
}

// rentVsBuyRequest optionally derives the financing rate from the current
// benchmark plus a bank spread instead of a caller-supplied rate.
type rentVsBuyRequest struct {
	domain.RentVsBuyParams
	UseBenchmark bool    `json:"use_benchmark"`
	BankSpread   float64 `json:"bank_spread"`
}

func (s *Server) handleRentVsBuy(w http.ResponseWriter, r *http.Request) {
	var req rentVsBuyRequest
	if !decode(w, r, &req) {
		return
	}
	p := req.RentVsBuyParams
	if req.UseBenchmark {
		base := s.rates.BenchmarkOrFallback(r.Context())
		p.FinancingRate = calculation.DeriveFinancingRate(base, req.BankSpread)
	}
	s.respond(w, r, domain.KindRentVsBuy, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunRentVsBuy(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindRentVsBuy, RentVsBuy: res}, nil
	})
}

func (s *Server) handleDebtPayoff(w http.ResponseWriter, r *http.Request) {
	var p domain.DebtPayoffParams
	if !decode(w, r, &p) {
		return
	}
	s.respond(w, r, domain.KindDebtPayoff, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunDebtPayoff(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindDebtPayoff, DebtPayoff: res}, nil
	})
}

func (s *Server) handleFire(w http.ResponseWriter, r *http.Request) {
	var p domain.FireParams
	if !decode(w, r, &p) {
		return
	}
	s.respond(w, r, domain.KindFire, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunFire(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindFire, Fire: res}, nil
	})
}

func (s *Server) handleRoi(w http.ResponseWriter, r *http.Request) {
	var p domain.RoiParams
	if !decode(w, r, &p) {
		return
	}
	s.respond(w, r, domain.KindRoi, func() (*domain.SimulationReport, error) {
		res, err := s.engine.RunRoi(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationReport{Kind: domain.KindRoi, Roi: res}, nil
	})
}

func (s *Server) handleBenchmarkRate(w http.ResponseWriter, r *http.Request) {
	rate, err := s.rates.Benchmark(r.Context())
	resp := BenchmarkResponse{Rate: rate, Source: "series"}
	if err != nil {
		// Absence of the upstream must not break callers.
		s.logger.Warn("benchmark unavailable, serving fallback", "err", err)
		metrics.BenchmarkFallbacks.Inc()
		resp = BenchmarkResponse{Rate: s.rates.FallbackRate(), Source: "fallback"}
	}
	writeJSON(w, http.StatusOK, resp)
}

// respond runs one simulation, records metrics, and writes the response.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, kind domain.SimulationKind, run func() (*domain.SimulationReport, error)) {
	start := time.Now()
	report, err := run()
	metrics.SimulationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.SimulationsTotal.WithLabelValues(string(kind), "invalid").Inc()
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		metrics.SimulationsTotal.WithLabelValues(string(kind), "error").Inc()
		s.logger.Error("simulation failed", "kind", kind, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	metrics.SimulationsTotal.WithLabelValues(string(kind), "ok").Inc()
	writeJSON(w, http.StatusOK, SimulationResponse{ID: uuid.NewString(), Report: report})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
