package domain

import "fmt"

// SimulationKind identifies one of the simulators offered by the engine.
type SimulationKind string

const (
	KindCompoundInterest SimulationKind = "compound_interest"
	KindDividends        SimulationKind = "dividends"
	KindAmortization     SimulationKind = "amortization"
	KindRentVsBuy        SimulationKind = "rent_vs_buy"
	KindDebtPayoff       SimulationKind = "debt_payoff"
	KindFire             SimulationKind = "fire"
	KindRoi              SimulationKind = "roi"
)

// Kinds returns all simulation kinds in a stable order.
func Kinds() []SimulationKind {
	return []SimulationKind{
		KindCompoundInterest, KindDividends, KindAmortization,
		KindRentVsBuy, KindDebtPayoff, KindFire, KindRoi,
	}
}

// RateBasis tags which period an interest rate refers to. Rates tagged
// monthly are consumed as-is; annual rates go through the effective
// monthly conversion exactly once, in the rate converter.
type RateBasis string

const (
	BasisAnnual  RateBasis = "annual"
	BasisMonthly RateBasis = "monthly"
)

// AmortizationSystem selects the loan repayment convention.
type AmortizationSystem string

const (
	// SystemSAC repays principal in equal parts; installments decline.
	SystemSAC AmortizationSystem = "sac"
	// SystemPrice keeps the installment fixed (annuity); the
	// interest/amortization split shifts over time.
	SystemPrice AmortizationSystem = "price"
)

// ValidationError reports a parameter rejected before any simulation runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CompoundParams drives the compound interest projector.
type CompoundParams struct {
	InitialValue        float64   `json:"initial_value" yaml:"initial_value"`
	MonthlyContribution float64   `json:"monthly_contribution" yaml:"monthly_contribution"`
	Rate                float64   `json:"rate" yaml:"rate"`
	RateBasis           RateBasis `json:"rate_basis" yaml:"rate_basis"`
	Months              int       `json:"months" yaml:"months"`
	TaxRate             float64   `json:"tax_rate,omitempty" yaml:"tax_rate"`
	InflationRate       float64   `json:"inflation_rate,omitempty" yaml:"inflation_rate"`
}

func (p *CompoundParams) Validate() error {
	if p.InitialValue < 0 {
		return invalid("initial_value", "must not be negative")
	}
	if p.MonthlyContribution < 0 {
		return invalid("monthly_contribution", "must not be negative")
	}
	if p.Rate < 0 {
		return invalid("rate", "must not be negative")
	}
	if err := validateBasis(p.RateBasis); err != nil {
		return err
	}
	if p.Months < 0 {
		return invalid("months", "must not be negative")
	}
	if p.TaxRate < 0 || p.TaxRate > 100 {
		return invalid("tax_rate", "must be between 0 and 100")
	}
	if p.InflationRate < 0 {
		return invalid("inflation_rate", "must not be negative")
	}
	return nil
}

// DividendParams drives the dividend reinvestment projector.
type DividendParams struct {
	InitialInvestment   float64 `json:"initial_investment" yaml:"initial_investment"`
	MonthlyContribution float64 `json:"monthly_contribution" yaml:"monthly_contribution"`
	AssetPrice          float64 `json:"asset_price" yaml:"asset_price"`
	MonthlyYield        float64 `json:"monthly_yield" yaml:"monthly_yield"`
	Years               int     `json:"years" yaml:"years"`
}

func (p *DividendParams) Validate() error {
	if p.InitialInvestment < 0 {
		return invalid("initial_investment", "must not be negative")
	}
	if p.MonthlyContribution < 0 {
		return invalid("monthly_contribution", "must not be negative")
	}
	if p.AssetPrice <= 0 {
		return invalid("asset_price", "must be positive")
	}
	if p.MonthlyYield < 0 {
		return invalid("monthly_yield", "must not be negative")
	}
	if p.Years <= 0 {
		return invalid("years", "must be positive")
	}
	return nil
}

// LoanParams drives the amortization scheduler.
type LoanParams struct {
	Principal  float64            `json:"principal" yaml:"principal"`
	AnnualRate float64            `json:"annual_rate" yaml:"annual_rate"`
	Months     int                `json:"months" yaml:"months"`
	System     AmortizationSystem `json:"system" yaml:"system"`
}

func (p *LoanParams) Validate() error {
	if p.Principal <= 0 {
		return invalid("principal", "must be positive")
	}
	if p.AnnualRate < 0 {
		return invalid("annual_rate", "must not be negative")
	}
	if p.Months <= 0 {
		return invalid("months", "must be positive")
	}
	return validateSystem(p.System)
}

// RentVsBuyParams drives the net worth comparator. All rates are annual
// percentages; acquisition cost rates are percentages of the property value
// and default to zero when omitted.
type RentVsBuyParams struct {
	PropertyValue        float64            `json:"property_value" yaml:"property_value"`
	MonthlyRent          float64            `json:"monthly_rent" yaml:"monthly_rent"`
	DownPayment          float64            `json:"down_payment" yaml:"down_payment"`
	TransferTaxRate      float64            `json:"transfer_tax_rate,omitempty" yaml:"transfer_tax_rate"`
	NotaryRate           float64            `json:"notary_rate,omitempty" yaml:"notary_rate"`
	FinancingRate        float64            `json:"financing_rate" yaml:"financing_rate"`
	InvestmentRate       float64            `json:"investment_rate" yaml:"investment_rate"`
	PropertyAppreciation float64            `json:"property_appreciation" yaml:"property_appreciation"`
	RentInflation        float64            `json:"rent_inflation" yaml:"rent_inflation"`
	Months               int                `json:"months" yaml:"months"`
	System               AmortizationSystem `json:"system" yaml:"system"`
}

func (p *RentVsBuyParams) Validate() error {
	if p.PropertyValue <= 0 {
		return invalid("property_value", "must be positive")
	}
	if p.MonthlyRent <= 0 {
		return invalid("monthly_rent", "must be positive")
	}
	if p.DownPayment < 0 {
		return invalid("down_payment", "must not be negative")
	}
	if p.DownPayment > p.PropertyValue {
		return invalid("down_payment", "must not exceed the property value")
	}
	if p.TransferTaxRate < 0 {
		return invalid("transfer_tax_rate", "must not be negative")
	}
	if p.NotaryRate < 0 {
		return invalid("notary_rate", "must not be negative")
	}
	if p.FinancingRate < 0 {
		return invalid("financing_rate", "must not be negative")
	}
	if p.InvestmentRate < 0 {
		return invalid("investment_rate", "must not be negative")
	}
	if p.PropertyAppreciation < 0 {
		return invalid("property_appreciation", "must not be negative")
	}
	if p.RentInflation < 0 {
		return invalid("rent_inflation", "must not be negative")
	}
	if p.Months <= 0 {
		return invalid("months", "must be positive")
	}
	return validateSystem(p.System)
}

// Debt is one liability in a payoff plan. The interest rate is a monthly
// percentage, as entered by the user.
type Debt struct {
	Name        string  `json:"name" yaml:"name"`
	Balance     float64 `json:"balance" yaml:"balance"`
	MonthlyRate float64 `json:"monthly_rate" yaml:"monthly_rate"`
	MinPayment  float64 `json:"min_payment" yaml:"min_payment"`
}

// DebtPayoffParams drives the avalanche payoff simulator.
type DebtPayoffParams struct {
	Debts        []Debt  `json:"debts" yaml:"debts"`
	ExtraPayment float64 `json:"extra_payment" yaml:"extra_payment"`
}

func (p *DebtPayoffParams) Validate() error {
	if len(p.Debts) == 0 {
		return invalid("debts", "at least one debt is required")
	}
	for i, d := range p.Debts {
		if d.Balance <= 0 {
			return invalid(fmt.Sprintf("debts[%d].balance", i), "must be positive")
		}
		if d.MonthlyRate < 0 {
			return invalid(fmt.Sprintf("debts[%d].monthly_rate", i), "must not be negative")
		}
		if d.MinPayment < 0 {
			return invalid(fmt.Sprintf("debts[%d].min_payment", i), "must not be negative")
		}
	}
	if p.ExtraPayment < 0 {
		return invalid("extra_payment", "must not be negative")
	}
	return nil
}

// FireParams drives the financial independence target calculator.
type FireParams struct {
	MonthlyExpense      float64 `json:"monthly_expense" yaml:"monthly_expense"`
	SafeWithdrawalRate  float64 `json:"safe_withdrawal_rate" yaml:"safe_withdrawal_rate"`
	CurrentCapital      float64 `json:"current_capital" yaml:"current_capital"`
	MonthlyContribution float64 `json:"monthly_contribution" yaml:"monthly_contribution"`
	AnnualReturn        float64 `json:"annual_return" yaml:"annual_return"`
}

func (p *FireParams) Validate() error {
	if p.MonthlyExpense <= 0 {
		return invalid("monthly_expense", "must be positive")
	}
	if p.SafeWithdrawalRate <= 0 {
		return invalid("safe_withdrawal_rate", "must be positive")
	}
	if p.CurrentCapital < 0 {
		return invalid("current_capital", "must not be negative")
	}
	if p.MonthlyContribution < 0 {
		return invalid("monthly_contribution", "must not be negative")
	}
	if p.AnnualReturn < 0 {
		return invalid("annual_return", "must not be negative")
	}
	return nil
}

// RoiParams drives the return-on-investment annualizer.
type RoiParams struct {
	InitialCost     float64 `json:"initial_cost" yaml:"initial_cost"`
	AdditionalCosts float64 `json:"additional_costs,omitempty" yaml:"additional_costs"`
	Revenue         float64 `json:"revenue" yaml:"revenue"`
	Months          int     `json:"months" yaml:"months"`
}

func (p *RoiParams) Validate() error {
	if p.InitialCost < 0 {
		return invalid("initial_cost", "must not be negative")
	}
	if p.AdditionalCosts < 0 {
		return invalid("additional_costs", "must not be negative")
	}
	if p.Revenue < 0 {
		return invalid("revenue", "must not be negative")
	}
	if p.Months < 0 {
		return invalid("months", "must not be negative")
	}
	return nil
}

func validateBasis(b RateBasis) error {
	switch b {
	case BasisAnnual, BasisMonthly:
		return nil
	}
	return invalid("rate_basis", fmt.Sprintf("must be %q or %q", BasisAnnual, BasisMonthly))
}

func validateSystem(s AmortizationSystem) error {
	switch s {
	case SystemSAC, SystemPrice:
		return nil
	}
	return invalid("system", fmt.Sprintf("must be %q or %q", SystemSAC, SystemPrice))
}

// SimulationConfig is the top-level shape of a simulation input file. Exactly
// one parameter block, matching the selected kind, must be present.
type SimulationConfig struct {
	Simulation SimulationKind    `json:"simulation" yaml:"simulation"`
	Compound   *CompoundParams   `json:"compound_interest,omitempty" yaml:"compound_interest"`
	Dividends  *DividendParams   `json:"dividends,omitempty" yaml:"dividends"`
	Loan       *LoanParams       `json:"amortization,omitempty" yaml:"amortization"`
	RentVsBuy  *RentVsBuyParams  `json:"rent_vs_buy,omitempty" yaml:"rent_vs_buy"`
	DebtPayoff *DebtPayoffParams `json:"debt_payoff,omitempty" yaml:"debt_payoff"`
	Fire       *FireParams       `json:"fire,omitempty" yaml:"fire"`
	Roi        *RoiParams        `json:"roi,omitempty" yaml:"roi"`
}
