package calculation

import (
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// monthsPerYear is the compounding frequency used throughout the engine.
const monthsPerYear = 12

// MonthlyRateFromAnnual converts an annual percentage rate into the
// effective monthly rate: (1 + annual/100)^(1/12) - 1. A zero annual rate
// yields exactly zero.
func MonthlyRateFromAnnual(annualPercent float64) float64 {
	if annualPercent == 0 {
		return 0
	}
	return math.Pow(1+annualPercent/100, 1.0/monthsPerYear) - 1
}

// AnnualRateFromMonthly converts an effective monthly rate (a fraction, not
// a percentage) back into the effective annual rate it compounds to.
func AnnualRateFromMonthly(monthly float64) float64 {
	if monthly == 0 {
		return 0
	}
	return math.Pow(1+monthly, monthsPerYear) - 1
}

// MonthlyRate resolves a tagged rate into an effective monthly fraction.
// This is the only place basis conversion happens; every simulator consumes
// already-converted monthly rates.
func MonthlyRate(percent float64, basis domain.RateBasis) float64 {
	if basis == domain.BasisMonthly {
		return percent / 100
	}
	return MonthlyRateFromAnnual(percent)
}
