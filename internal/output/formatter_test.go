package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/finsim/finance-simulator/internal/calculation"
	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) *domain.SimulationReport {
	t.Helper()
	engine := calculation.NewCalculationEngine()
	report, err := engine.Run(&domain.SimulationConfig{
		Simulation: domain.KindCompoundInterest,
		Compound: &domain.CompoundParams{
			InitialValue:        10000,
			MonthlyContribution: 500,
			Rate:                10,
			RateBasis:           domain.BasisAnnual,
			Months:              24,
			TaxRate:             15,
		},
	})
	require.NoError(t, err)
	return report
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("json"))
	assert.NotNil(t, GetFormatterByName("csv"))
	assert.Nil(t, GetFormatterByName("pdf"))

	// Aliases resolve to canonical formatters.
	assert.Equal(t, "console", GetFormatterByName("TXT").Name())
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName(" Text "))
	assert.Equal(t, "csv", NormalizeFormatName("csv-series"))
	assert.Equal(t, "json", NormalizeFormatName("JSON"))
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	report := sampleReport(t)
	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.SimulationReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.Kind, decoded.Kind)
	require.NotNil(t, decoded.Compound)
	assert.Len(t, decoded.Compound.Series, 25)
}

func TestConsoleFormatter_Summary(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "COMPOUND INTEREST")
	assert.Contains(t, text, "Final Balance")
	assert.Contains(t, text, "Tax Withheld")
}

func TestConsoleFormatter_NonConvergenceIsVisible(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	report, err := engine.Run(&domain.SimulationConfig{
		Simulation: domain.KindDebtPayoff,
		DebtPayoff: &domain.DebtPayoffParams{
			Debts: []domain.Debt{{Name: "runaway", Balance: 1000, MonthlyRate: 10, MinPayment: 1}},
		},
	})
	require.NoError(t, err)

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "NOT REACHED")
}

func TestCSVFormatter_SeriesRows(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus month 0 through 24.
	assert.Len(t, lines, 26)
	assert.Equal(t, "Month,Interest,TotalInvested,TotalInterest,Balance,RealBalance", lines[0])
}

func TestFormat_EmptyReport(t *testing.T) {
	empty := &domain.SimulationReport{Kind: domain.KindFire}
	_, err := ConsoleFormatter{}.Format(empty)
	assert.Error(t, err)
	_, err = CSVFormatter{}.Format(empty)
	assert.Error(t, err)
}
