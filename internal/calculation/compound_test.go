package calculation

import (
	"math"
	"testing"

	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompound_ZeroRateZeroContribution(t *testing.T) {
	engine := NewCalculationEngine()
	for _, months := range []int{1, 12, 120, 420} {
		res, err := engine.RunCompound(domain.CompoundParams{
			InitialValue: 10000,
			Rate:         0,
			RateBasis:    domain.BasisAnnual,
			Months:       months,
		})
		require.NoError(t, err)
		assert.Equal(t, 10000.0, res.Summary.FinalBalance, "months=%d", months)
		assert.Equal(t, 0.0, res.Summary.TotalInterest)
		assert.Len(t, res.Series, months+1)
	}
}

func TestRunCompound_ZeroDuration(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunCompound(domain.CompoundParams{
		InitialValue: 5000,
		Rate:         10,
		RateBasis:    domain.BasisAnnual,
		Months:       0,
	})
	require.NoError(t, err)
	require.Len(t, res.Series, 1)
	assert.Equal(t, 0, res.Series[0].Month)
	assert.Equal(t, 5000.0, res.Series[0].Balance)
	assert.Equal(t, 5000.0, res.Summary.FinalBalance)
}

func TestRunCompound_InterestBeforeContribution(t *testing.T) {
	// One month at 1% monthly: interest accrues on the initial balance,
	// then the contribution lands at period end.
	engine := NewCalculationEngine()
	res, err := engine.RunCompound(domain.CompoundParams{
		InitialValue:        1000,
		MonthlyContribution: 100,
		Rate:                1,
		RateBasis:           domain.BasisMonthly,
		Months:              1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1110, res.Summary.FinalBalance, 1e-9)
	assert.InDelta(t, 10, res.Summary.TotalInterest, 1e-9)
	assert.InDelta(t, 1100, res.Summary.TotalInvested, 1e-9)
}

func TestRunCompound_TaxAppliesToInterestOnly(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunCompound(domain.CompoundParams{
		InitialValue: 1000,
		Rate:         1,
		RateBasis:    domain.BasisMonthly,
		Months:       12,
		TaxRate:      15,
	})
	require.NoError(t, err)

	wantInterest := 1000*math.Pow(1.01, 12) - 1000
	assert.InDelta(t, wantInterest, res.Summary.TotalInterest, 1e-9)
	assert.InDelta(t, wantInterest*0.15, res.Summary.TaxWithheld, 1e-9)
	assert.InDelta(t, res.Summary.FinalBalance-res.Summary.TaxWithheld, res.Summary.NetValue, 1e-9)
}

func TestRunCompound_InflationDeflatesRealValue(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunCompound(domain.CompoundParams{
		InitialValue:  1000,
		Rate:          0,
		RateBasis:     domain.BasisAnnual,
		Months:        12,
		InflationRate: 10,
	})
	require.NoError(t, err)

	// Flat nominal balance deflated by one full year of 10% inflation.
	assert.InDelta(t, 1000/1.10, res.Summary.RealValue, 1e-6)
	assert.Equal(t, 1000.0, res.Summary.FinalBalance)

	// The path deflates per month.
	mi := MonthlyRateFromAnnual(10)
	p6 := res.Series[6]
	assert.InDelta(t, 1000/math.Pow(1+mi, 6), p6.RealBalance, 1e-9)
}

func TestRunCompound_RejectsInvalidInput(t *testing.T) {
	engine := NewCalculationEngine()
	cases := []struct {
		name   string
		params domain.CompoundParams
	}{
		{"negative rate", domain.CompoundParams{InitialValue: 100, Rate: -1, RateBasis: domain.BasisAnnual, Months: 12}},
		{"negative initial value", domain.CompoundParams{InitialValue: -1, RateBasis: domain.BasisAnnual, Months: 12}},
		{"negative months", domain.CompoundParams{InitialValue: 100, RateBasis: domain.BasisAnnual, Months: -1}},
		{"bad basis", domain.CompoundParams{InitialValue: 100, RateBasis: "weekly", Months: 12}},
		{"tax above 100", domain.CompoundParams{InitialValue: 100, RateBasis: domain.BasisAnnual, Months: 12, TaxRate: 101}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.RunCompound(tc.params)
			assert.Error(t, err)
			assert.True(t, isValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestRunCompound_MonthIndexesHaveNoGaps(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunCompound(domain.CompoundParams{
		InitialValue:        500,
		MonthlyContribution: 50,
		Rate:                8,
		RateBasis:           domain.BasisAnnual,
		Months:              36,
	})
	require.NoError(t, err)
	for i, pt := range res.Series {
		assert.Equal(t, i, pt.Month)
	}
}
