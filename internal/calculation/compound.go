package calculation

import (
	"fmt"

	"github.com/finsim/finance-simulator/internal/domain"
)

// RunCompound simulates a single balance under periodic contributions and
// monthly compounding. Interest accrues on the current balance before the
// month's contribution is added; the contribution lands at period end.
// The optional flat tax applies to accumulated nominal interest only, and
// the optional inflation rate deflates the path and summary into real terms.
func (ce *CalculationEngine) RunCompound(p domain.CompoundParams) (*domain.CompoundResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("compound interest: %w", err)
	}

	monthlyRate := MonthlyRate(p.Rate, p.RateBasis)
	monthlyInflation := MonthlyRateFromAnnual(p.InflationRate)

	balance := p.InitialValue
	invested := p.InitialValue
	totalInterest := 0.0
	deflator := 1.0

	series := make([]domain.CompoundPoint, 0, p.Months+1)
	series = append(series, domain.CompoundPoint{
		Month:         0,
		TotalInvested: invested,
		Balance:       balance,
		RealBalance:   balance,
	})

	for m := 1; m <= p.Months; m++ {
		interest := balance * monthlyRate
		balance += interest + p.MonthlyContribution
		invested += p.MonthlyContribution
		totalInterest += interest
		deflator *= 1 + monthlyInflation

		net := balance - totalInterest*p.TaxRate/100
		series = append(series, domain.CompoundPoint{
			Month:         m,
			Interest:      interest,
			TotalInvested: invested,
			TotalInterest: totalInterest,
			Balance:       balance,
			RealBalance:   net / deflator,
		})
	}

	taxWithheld := totalInterest * p.TaxRate / 100
	netValue := balance - taxWithheld
	summary := domain.CompoundSummary{
		FinalBalance:  balance,
		TotalInvested: invested,
		TotalInterest: totalInterest,
		TaxWithheld:   taxWithheld,
		NetValue:      netValue,
		RealValue:     netValue / deflator,
	}
	if err := checkFinite("compound interest", summary.FinalBalance, summary.NetValue, summary.RealValue); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("compound: %d months, final balance %.2f, interest %.2f", p.Months, balance, totalInterest)
	return &domain.CompoundResult{Summary: summary, Series: series}, nil
}
