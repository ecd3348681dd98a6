package calculation

import (
	"fmt"
	"sort"

	"github.com/finsim/finance-simulator/internal/domain"
)

// DebtPayoffMonthCap bounds the avalanche simulation so that minimum
// payments below the accruing interest cannot loop forever. Hitting the cap
// is reported as non-convergence, never as a real payoff date.
const DebtPayoffMonthCap = 360

// RunDebtPayoff simulates the avalanche strategy: debts ordered by interest
// rate, highest first (stable, so input order breaks ties), minimum payments
// on everything, and the extra pool thrown at the front of the order until
// it runs out each month.
func (ce *CalculationEngine) RunDebtPayoff(p domain.DebtPayoffParams) (*domain.DebtPayoffResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("debt payoff: %w", err)
	}

	type account struct {
		domain.Debt
		balance float64
	}
	accounts := make([]account, len(p.Debts))
	for i, d := range p.Debts {
		accounts[i] = account{Debt: d, balance: d.Balance}
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].MonthlyRate > accounts[j].MonthlyRate
	})

	outstanding := func() bool {
		for i := range accounts {
			if accounts[i].balance > 0 {
				return true
			}
		}
		return false
	}

	var totalInterest, totalPaid float64
	var payoffOrder []string
	var series []domain.DebtPayoffPoint

	month := 0
	for outstanding() && month < DebtPayoffMonthCap {
		month++
		var monthInterest, monthPaid float64

		for i := range accounts {
			if accounts[i].balance <= 0 {
				continue
			}
			interest := accounts[i].balance * accounts[i].MonthlyRate / 100
			accounts[i].balance += interest
			monthInterest += interest
		}

		for i := range accounts {
			if accounts[i].balance <= 0 {
				continue
			}
			payment := accounts[i].MinPayment
			if payment > accounts[i].balance {
				payment = accounts[i].balance
			}
			accounts[i].balance -= payment
			monthPaid += payment
			if accounts[i].balance == 0 {
				payoffOrder = append(payoffOrder, accounts[i].Name)
			}
		}

		pool := p.ExtraPayment
		for i := range accounts {
			if pool <= 0 {
				break
			}
			if accounts[i].balance <= 0 {
				continue
			}
			payment := pool
			if payment > accounts[i].balance {
				payment = accounts[i].balance
			}
			accounts[i].balance -= payment
			pool -= payment
			monthPaid += payment
			if accounts[i].balance == 0 {
				payoffOrder = append(payoffOrder, accounts[i].Name)
			}
		}

		totalInterest += monthInterest
		totalPaid += monthPaid

		var remaining float64
		for i := range accounts {
			remaining += accounts[i].balance
		}
		series = append(series, domain.DebtPayoffPoint{
			Month:           month,
			TotalBalance:    remaining,
			InterestAccrued: monthInterest,
			AmountPaid:      monthPaid,
		})
	}

	summary := domain.DebtPayoffSummary{
		Months:        month,
		Converged:     !outstanding(),
		TotalInterest: totalInterest,
		TotalPaid:     totalPaid,
		PayoffOrder:   payoffOrder,
	}
	if err := checkFinite("debt payoff", summary.TotalInterest, summary.TotalPaid); err != nil {
		return nil, err
	}

	if !summary.Converged {
		ce.Logger.Warnf("debt payoff: no payoff within %d months, balances still outstanding", DebtPayoffMonthCap)
	}
	return &domain.DebtPayoffResult{Summary: summary, Series: series}, nil
}
