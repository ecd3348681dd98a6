package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finance-simulator/internal/domain"
)

// DeriveFinancingRate composes a financing rate from a benchmark reference
// rate plus a bank spread, floored at zero. Callers that already know their
// financing rate pass it directly in the parameters instead.
func DeriveFinancingRate(baseRate, spread float64) float64 {
	return math.Max(0, baseRate+spread)
}

// RunRentVsBuy couples a loan amortization track ("buy") with an investment
// track ("rent") seeded with the buyer's total upfront cash. Both tracks are
// advanced in lockstep inside one loop because the month's cash-flow
// redirection depends on that same month's installment and rent: whichever
// side pays less that month invests the difference. Four monthly rates are
// in play and each is named explicitly to keep the bases apart.
func (ce *CalculationEngine) RunRentVsBuy(p domain.RentVsBuyParams) (*domain.RentVsBuyResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("rent vs buy: %w", err)
	}

	monthlyFinancingRate := MonthlyRateFromAnnual(p.FinancingRate)
	monthlyInvestmentRate := MonthlyRateFromAnnual(p.InvestmentRate)
	monthlyAppreciation := MonthlyRateFromAnnual(p.PropertyAppreciation)
	monthlyRentInflation := MonthlyRateFromAnnual(p.RentInflation)

	transferTaxCost := p.PropertyValue * p.TransferTaxRate / 100
	notaryCost := p.PropertyValue * p.NotaryRate / 100
	upfrontCash := p.DownPayment + transferTaxCost + notaryCost

	debt := p.PropertyValue - p.DownPayment
	propertyValue := p.PropertyValue
	rent := p.MonthlyRent

	sacAmortization := debt / float64(p.Months)
	fixedInstallment := priceInstallment(debt, monthlyFinancingRate, p.Months)

	// The renter starts with the cash the buyer sank into the purchase.
	renterInvestments := upfrontCash
	buyerInvestments := 0.0

	series := make([]domain.NetWorthPoint, 0, p.Months)
	for m := 1; m <= p.Months; m++ {
		rent *= 1 + monthlyRentInflation

		installment := 0.0
		if debt > 0 {
			interest := debt * monthlyFinancingRate
			var amortization float64
			if p.System == domain.SystemPrice {
				amortization = fixedInstallment - interest
			} else {
				amortization = sacAmortization
			}
			if amortization > debt {
				amortization = debt
			}
			installment = interest + amortization
			debt -= amortization
		}

		propertyValue *= 1 + monthlyAppreciation

		// Redirection rule: the side with the lower outlay this month
		// invests the difference.
		cashflowDiff := installment - rent
		if cashflowDiff > 0 {
			renterInvestments += cashflowDiff
		} else {
			buyerInvestments += -cashflowDiff
		}

		renterInvestments *= 1 + monthlyInvestmentRate
		buyerInvestments *= 1 + monthlyInvestmentRate

		series = append(series, domain.NetWorthPoint{
			Month:             m,
			Rent:              rent,
			Installment:       installment,
			RemainingDebt:     debt,
			PropertyValue:     propertyValue,
			BuyerInvestments:  buyerInvestments,
			RenterInvestments: renterInvestments,
			BuyerNetWorth:     propertyValue - debt + buyerInvestments,
			RenterNetWorth:    renterInvestments,
		})
	}

	final := series[len(series)-1]
	winner := domain.SideRent
	if final.BuyerNetWorth > final.RenterNetWorth {
		winner = domain.SideBuy
	}

	summary := domain.RentVsBuySummary{
		Winner:          winner,
		Difference:      math.Abs(final.BuyerNetWorth - final.RenterNetWorth),
		BuyerNetWorth:   final.BuyerNetWorth,
		RenterNetWorth:  final.RenterNetWorth,
		TransferTaxCost: transferTaxCost,
		NotaryCost:      notaryCost,
		UpfrontCash:     upfrontCash,
	}
	if err := checkFinite("rent vs buy", summary.BuyerNetWorth, summary.RenterNetWorth); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("rent vs buy: %d months, winner %s by %.2f", p.Months, winner, summary.Difference)
	return &domain.RentVsBuyResult{Summary: summary, Series: series}, nil
}
