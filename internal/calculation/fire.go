package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// FireMonthCap bounds the time-to-target search. Hitting the cap means the
// target is out of reach under the given assumptions, which is reported
// distinctly from a numeric answer.
const FireMonthCap = 1200

// RunFire computes the capital needed to sustain a desired monthly expense
// at a safe withdrawal rate, then searches month by month for when ongoing
// contributions and compounding reach it. The balance compounds before each
// month's contribution lands.
func (ce *CalculationEngine) RunFire(p domain.FireParams) (*domain.FireResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("fire: %w", err)
	}

	target := p.MonthlyExpense * monthsPerYear / (p.SafeWithdrawalRate / 100)
	monthlyRate := MonthlyRateFromAnnual(p.AnnualReturn)

	balance := p.CurrentCapital
	months := 0
	series := []domain.FirePoint{{Month: 0, Balance: balance}}

	for balance < target && months < FireMonthCap {
		balance = balance*(1+monthlyRate) + p.MonthlyContribution
		months++
		series = append(series, domain.FirePoint{Month: months, Balance: balance})
	}

	reached := balance >= target
	summary := domain.FireSummary{
		TargetCapital:   target,
		TargetReached:   reached,
		MonthsToTarget:  months,
		ProgressPercent: math.Min(p.CurrentCapital/target*100, 100),
	}
	if reached {
		summary.YearsToTarget = float64(months) / monthsPerYear
	}
	if err := checkFinite("fire", summary.TargetCapital, balance); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("fire: target %.2f, reached=%t after %d months", target, reached, months)
	return &domain.FireResult{Summary: summary, Series: series}, nil
}
