package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// RunDividends simulates a whole-unit position growing through cash
// contributions and reinvested yield payouts. Each month the dividends and
// the new contribution are pooled and spent on whole units at the fixed
// asset price; leftover cash below one unit's price is discarded, not
// carried forward. That round-down policy slightly understates real-world
// reinvestment and is preserved on purpose: changing it would change
// simulation outputs.
func (ce *CalculationEngine) RunDividends(p domain.DividendParams) (*domain.DividendResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("dividends: %w", err)
	}

	months := p.Years * monthsPerYear
	units := int64(math.Floor(p.InitialInvestment / p.AssetPrice))
	invested := p.InitialInvestment
	magicMonth := 0

	series := make([]domain.DividendPoint, 0, months)
	for m := 1; m <= months; m++ {
		dividends := float64(units) * p.AssetPrice * p.MonthlyYield / 100
		cash := dividends + p.MonthlyContribution
		units += int64(math.Floor(cash / p.AssetPrice))
		invested += p.MonthlyContribution

		// The first month dividends alone buy one whole unit.
		if magicMonth == 0 && dividends >= p.AssetPrice {
			magicMonth = m
		}

		series = append(series, domain.DividendPoint{
			Month:         m,
			Units:         units,
			Dividends:     dividends,
			TotalInvested: invested,
			WalletValue:   float64(units) * p.AssetPrice,
		})
	}

	summary := domain.DividendSummary{
		FinalUnits:         units,
		FinalWalletValue:   float64(units) * p.AssetPrice,
		FinalMonthlyIncome: float64(units) * p.AssetPrice * p.MonthlyYield / 100,
		TotalInvested:      invested,
		MagicNumberMonth:   magicMonth,
	}
	if err := checkFinite("dividends", summary.FinalWalletValue, summary.FinalMonthlyIncome); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("dividends: %d months, %d units, income %.2f/month", months, units, summary.FinalMonthlyIncome)
	return &domain.DividendResult{Summary: summary, Series: series}, nil
}
