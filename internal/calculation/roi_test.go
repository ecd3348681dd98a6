package calculation

import (
	"math"
	"testing"

	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRoi_DoubledInOneYear(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunRoi(domain.RoiParams{
		InitialCost: 50000,
		Revenue:     100000,
		Months:      12,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, res.Summary.Roi, 1e-9)
	assert.InDelta(t, 100, res.Summary.AnnualizedRoi, 1e-9)
	assert.InDelta(t, 50000, res.Summary.NetProfit, 1e-9)
}

func TestRunRoi_AnnualizationOverTwoYears(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunRoi(domain.RoiParams{
		InitialCost: 50000,
		Revenue:     100000,
		Months:      24,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, res.Summary.Roi, 1e-9)
	assert.InDelta(t, (math.Sqrt2-1)*100, res.Summary.AnnualizedRoi, 1e-9)
}

func TestRunRoi_AdditionalCostsCountAgainstProfit(t *testing.T) {
	engine := NewCalculationEngine()
	res, err := engine.RunRoi(domain.RoiParams{
		InitialCost:     40000,
		AdditionalCosts: 10000,
		Revenue:         100000,
		Months:          12,
	})
	require.NoError(t, err)
	assert.InDelta(t, 50000, res.Summary.TotalCost, 1e-9)
	assert.InDelta(t, 100, res.Summary.Roi, 1e-9)
}

func TestRunRoi_ZeroBranchesProduceZeroNotNaN(t *testing.T) {
	engine := NewCalculationEngine()

	// Zero cost: absolute ROI is zero, not a division by zero.
	res, err := engine.RunRoi(domain.RoiParams{Revenue: 1000, Months: 12})
	require.NoError(t, err)
	assert.Zero(t, res.Summary.Roi)
	assert.Zero(t, res.Summary.AnnualizedRoi)

	// Zero revenue: a total loss annualizes to zero rather than -100^inf.
	res, err = engine.RunRoi(domain.RoiParams{InitialCost: 1000, Months: 12})
	require.NoError(t, err)
	assert.InDelta(t, -100, res.Summary.Roi, 1e-9)
	assert.Zero(t, res.Summary.AnnualizedRoi)

	// Zero period: no annualization.
	res, err = engine.RunRoi(domain.RoiParams{InitialCost: 1000, Revenue: 2000})
	require.NoError(t, err)
	assert.InDelta(t, 100, res.Summary.Roi, 1e-9)
	assert.Zero(t, res.Summary.AnnualizedRoi)
}

func TestRunRoi_RejectsNegativeAmounts(t *testing.T) {
	engine := NewCalculationEngine()
	_, err := engine.RunRoi(domain.RoiParams{InitialCost: -1})
	assert.True(t, isValidationError(err))
}
