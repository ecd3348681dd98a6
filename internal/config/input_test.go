package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestLoadFromFile_CompoundInterest(t *testing.T) {
	content := "simulation: compound_interest\n" +
		"compound_interest:\n" +
		"  initial_value: 10000\n" +
		"  monthly_contribution: 500\n" +
		"  rate: 10\n" +
		"  rate_basis: annual\n" +
		"  months: 120\n" +
		"  tax_rate: 15\n" +
		"  inflation_rate: 4\n"

	path := filepath.Join(t.TempDir(), "compound.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.KindCompoundInterest, cfg.Simulation)
	require.NotNil(t, cfg.Compound)
	assert.Equal(t, 10000.0, cfg.Compound.InitialValue)
	assert.Equal(t, domain.BasisAnnual, cfg.Compound.RateBasis)
	assert.Equal(t, 120, cfg.Compound.Months)
}

func TestLoadFromFile_Missing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("/nonexistent/sim.yaml")
	assert.Error(t, err)
}

func TestParse_DebtPayoff(t *testing.T) {
	content := "simulation: debt_payoff\n" +
		"debt_payoff:\n" +
		"  extra_payment: 300\n" +
		"  debts:\n" +
		"    - name: card\n" +
		"      balance: 2000\n" +
		"      monthly_rate: 10\n" +
		"      min_payment: 100\n" +
		"    - name: loan\n" +
		"      balance: 1000\n" +
		"      monthly_rate: 5\n" +
		"      min_payment: 100\n"

	cfg, err := NewInputParser().Parse([]byte(content))
	require.NoError(t, err)
	require.NotNil(t, cfg.DebtPayoff)
	require.Len(t, cfg.DebtPayoff.Debts, 2)
	assert.Equal(t, "card", cfg.DebtPayoff.Debts[0].Name)
	assert.Equal(t, 300.0, cfg.DebtPayoff.ExtraPayment)
}

func TestParse_RejectsMissingKind(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("compound_interest:\n  initial_value: 100\n"))
	assert.ErrorContains(t, err, "no simulation kind")
}

func TestParse_RejectsUnknownKind(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("simulation: lottery\n"))
	assert.ErrorContains(t, err, "unknown simulation kind")
}

func TestParse_RejectsMissingBlock(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("simulation: fire\n"))
	assert.ErrorContains(t, err, "parameter block is missing")
}

func TestParse_RejectsMismatchedBlock(t *testing.T) {
	content := "simulation: fire\n" +
		"fire:\n" +
		"  monthly_expense: 5000\n" +
		"  safe_withdrawal_rate: 4\n" +
		"  annual_return: 6\n" +
		"roi:\n" +
		"  initial_cost: 100\n" +
		"  revenue: 200\n" +
		"  months: 12\n"
	_, err := NewInputParser().Parse([]byte(content))
	assert.ErrorContains(t, err, "does not match selected simulation")
}

func TestParse_RejectsInvalidParams(t *testing.T) {
	content := "simulation: amortization\n" +
		"amortization:\n" +
		"  principal: -100\n" +
		"  annual_rate: 10\n" +
		"  months: 120\n" +
		"  system: sac\n"
	_, err := NewInputParser().Parse([]byte(content))
	assert.ErrorContains(t, err, "invalid principal")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("simulation: [unterminated"))
	assert.Error(t, err)
}
