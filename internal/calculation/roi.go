package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// RunRoi computes absolute and time-annualized return on investment. Both
// figures have explicit zero branches: absolute ROI is zero when the total
// cost is zero, and the CAGR-style annualized figure is only computed when
// cost, revenue and period are all positive, so neither can come out as NaN
// or infinity.
func (ce *CalculationEngine) RunRoi(p domain.RoiParams) (*domain.RoiResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("roi: %w", err)
	}

	totalCost := p.InitialCost + p.AdditionalCosts
	netProfit := p.Revenue - totalCost

	roi := 0.0
	if totalCost > 0 {
		roi = netProfit / totalCost * 100
	}

	annualized := 0.0
	if totalCost > 0 && p.Revenue > 0 && p.Months > 0 {
		annualized = (math.Pow(p.Revenue/totalCost, monthsPerYear/float64(p.Months)) - 1) * 100
	}

	summary := domain.RoiSummary{
		NetProfit:     netProfit,
		TotalCost:     totalCost,
		Roi:           roi,
		AnnualizedRoi: annualized,
	}
	if err := checkFinite("roi", summary.Roi, summary.AnnualizedRoi); err != nil {
		return nil, err
	}

	return &domain.RoiResult{Summary: summary}, nil
}
