package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// priceInstallment computes the fixed annuity installment for a debt at a
// monthly rate over n months. With a zero rate the annuity formula divides
// by zero, so it falls back to straight division.
func priceInstallment(debt, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return debt / float64(months)
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	return debt * monthlyRate * factor / (factor - 1)
}

// RunAmortization produces the full monthly schedule for a loan under the
// SAC (constant amortization) or PRICE (constant installment) convention.
// The amortization portion of the final month is capped at the remaining
// debt so the balance lands on exactly zero and the amortization portions
// sum to the original principal.
func (ce *CalculationEngine) RunAmortization(p domain.LoanParams) (*domain.LoanResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("amortization: %w", err)
	}

	monthlyRate := MonthlyRateFromAnnual(p.AnnualRate)
	debt := p.Principal

	sacAmortization := p.Principal / float64(p.Months)
	fixedInstallment := priceInstallment(debt, monthlyRate, p.Months)

	var totalPaid, totalInterest float64
	series := make([]domain.Installment, 0, p.Months)

	for m := 1; m <= p.Months; m++ {
		interest := debt * monthlyRate

		var amortization float64
		if p.System == domain.SystemPrice {
			amortization = fixedInstallment - interest
		} else {
			amortization = sacAmortization
		}
		if amortization > debt {
			amortization = debt
		}
		installment := interest + amortization
		debt -= amortization

		totalPaid += installment
		totalInterest += interest
		series = append(series, domain.Installment{
			Month:         m,
			Installment:   installment,
			Interest:      interest,
			Amortization:  amortization,
			RemainingDebt: debt,
		})
	}

	summary := domain.LoanSummary{
		TotalPaid:        totalPaid,
		TotalInterest:    totalInterest,
		FirstInstallment: series[0].Installment,
		FinalInstallment: series[len(series)-1].Installment,
	}
	if err := checkFinite("amortization", summary.TotalPaid, summary.TotalInterest); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("amortization: %s over %d months, total paid %.2f", p.System, p.Months, totalPaid)
	return &domain.LoanResult{Summary: summary, Series: series}, nil
}
