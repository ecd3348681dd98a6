package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// Logger is a minimal logging interface for the simulation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// CalculationEngine runs the simulators. Every Run* method is a pure
// function of its parameters: no shared state, no I/O, no clock, no
// randomness, so identical inputs always produce identical output series.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run dispatches a simulation config to the matching simulator and wraps
// the result in a report.
func (ce *CalculationEngine) Run(cfg *domain.SimulationConfig) (*domain.SimulationReport, error) {
	report := &domain.SimulationReport{Kind: cfg.Simulation}
	var err error
	switch cfg.Simulation {
	case domain.KindCompoundInterest:
		if cfg.Compound == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.Compound, err = ce.RunCompound(*cfg.Compound)
	case domain.KindDividends:
		if cfg.Dividends == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.Dividends, err = ce.RunDividends(*cfg.Dividends)
	case domain.KindAmortization:
		if cfg.Loan == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.Loan, err = ce.RunAmortization(*cfg.Loan)
	case domain.KindRentVsBuy:
		if cfg.RentVsBuy == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.RentVsBuy, err = ce.RunRentVsBuy(*cfg.RentVsBuy)
	case domain.KindDebtPayoff:
		if cfg.DebtPayoff == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.DebtPayoff, err = ce.RunDebtPayoff(*cfg.DebtPayoff)
	case domain.KindFire:
		if cfg.Fire == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.Fire, err = ce.RunFire(*cfg.Fire)
	case domain.KindRoi:
		if cfg.Roi == nil {
			return nil, missingParams(cfg.Simulation)
		}
		report.Roi, err = ce.RunRoi(*cfg.Roi)
	default:
		return nil, fmt.Errorf("unknown simulation kind %q", cfg.Simulation)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func missingParams(kind domain.SimulationKind) error {
	return fmt.Errorf("simulation %q selected but no matching parameter block provided", kind)
}

// checkFinite rejects NaN and infinities before they reach a caller. A
// non-finite value for in-range inputs is treated as an invalid-input
// failure rather than propagated.
func checkFinite(context string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &domain.ValidationError{Field: context, Reason: "computation produced a non-finite value"}
		}
	}
	return nil
}
