package calculation

import (
	"testing"

	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFire_TargetCapital(t *testing.T) {
	// 5000/month at a 4% safe withdrawal rate needs exactly 1,500,000.
	engine := NewCalculationEngine()
	res, err := engine.RunFire(domain.FireParams{
		MonthlyExpense:      5000,
		SafeWithdrawalRate:  4,
		MonthlyContribution: 1000,
		AnnualReturn:        6,
	})
	require.NoError(t, err)
	assert.Equal(t, 1500000.0, res.Summary.TargetCapital)
}

func TestRunFire_AlreadyAtTarget(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunFire(domain.FireParams{
		MonthlyExpense:     1000,
		SafeWithdrawalRate: 4,
		CurrentCapital:     400000,
		AnnualReturn:       6,
	})
	require.NoError(t, err)
	assert.True(t, res.Summary.TargetReached)
	assert.Equal(t, 0, res.Summary.MonthsToTarget)
	assert.Equal(t, 100.0, res.Summary.ProgressPercent)
	assert.Len(t, res.Series, 1)
}

func TestRunFire_UnreachableTargetHitsCapDistinctly(t *testing.T) {
	// No contributions, no return: the cap is hit and the result says the
	// target was not reached rather than pretending 100 years is a date.
	engine := NewCalculationEngine()
	res, err := engine.RunFire(domain.FireParams{
		MonthlyExpense:     5000,
		SafeWithdrawalRate: 4,
		CurrentCapital:     1000,
		AnnualReturn:       0,
	})
	require.NoError(t, err)
	assert.False(t, res.Summary.TargetReached)
	assert.Equal(t, FireMonthCap, res.Summary.MonthsToTarget)
	assert.Zero(t, res.Summary.YearsToTarget)
}

func TestRunFire_ContributionsReachTarget(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunFire(domain.FireParams{
		MonthlyExpense:      1000,
		SafeWithdrawalRate:  4,
		CurrentCapital:      0,
		MonthlyContribution: 5000,
		AnnualReturn:        6,
	})
	require.NoError(t, err)
	require.True(t, res.Summary.TargetReached)
	assert.Greater(t, res.Summary.MonthsToTarget, 0)
	assert.InDelta(t, float64(res.Summary.MonthsToTarget)/12, res.Summary.YearsToTarget, 1e-9)

	// Balance path is strictly increasing under positive contributions.
	for i := 1; i < len(res.Series); i++ {
		assert.Greater(t, res.Series[i].Balance, res.Series[i-1].Balance)
	}
	final := res.Series[len(res.Series)-1]
	assert.GreaterOrEqual(t, final.Balance, res.Summary.TargetCapital)
}

func TestRunFire_RejectsInvalidInput(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunFire(domain.FireParams{MonthlyExpense: 0, SafeWithdrawalRate: 4})
	assert.True(t, isValidationError(err))

	_, err = engine.RunFire(domain.FireParams{MonthlyExpense: 5000, SafeWithdrawalRate: 0})
	assert.True(t, isValidationError(err))
}
