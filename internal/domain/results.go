package domain

// CompoundPoint is one month of a compound interest projection. Month 0
// carries the initial state; interest for a month is accrued on the balance
// before that month's contribution lands.
type CompoundPoint struct {
	Month         int     `json:"month"`
	Interest      float64 `json:"interest"`
	TotalInvested float64 `json:"total_invested"`
	TotalInterest float64 `json:"total_interest"`
	Balance       float64 `json:"balance"`
	RealBalance   float64 `json:"real_balance"`
}

// CompoundSummary aggregates the end state of a compound projection.
// TaxWithheld applies the flat rate to accumulated nominal interest only,
// never to principal; RealValue deflates the net value into today's terms.
type CompoundSummary struct {
	FinalBalance  float64 `json:"final_balance"`
	TotalInvested float64 `json:"total_invested"`
	TotalInterest float64 `json:"total_interest"`
	TaxWithheld   float64 `json:"tax_withheld"`
	NetValue      float64 `json:"net_value"`
	RealValue     float64 `json:"real_value"`
}

// CompoundResult pairs the summary with the full monthly series.
type CompoundResult struct {
	Summary CompoundSummary `json:"summary"`
	Series  []CompoundPoint `json:"series"`
}

// DividendPoint is one month of a whole-unit reinvestment projection.
type DividendPoint struct {
	Month         int     `json:"month"`
	Units         int64   `json:"units"`
	Dividends     float64 `json:"dividends"`
	TotalInvested float64 `json:"total_invested"`
	WalletValue   float64 `json:"wallet_value"`
}

// DividendSummary aggregates a reinvestment projection. MagicNumberMonth is
// the first month dividends alone met or exceeded one unit's price, or zero
// if that never happened within the horizon.
type DividendSummary struct {
	FinalUnits         int64   `json:"final_units"`
	FinalWalletValue   float64 `json:"final_wallet_value"`
	FinalMonthlyIncome float64 `json:"final_monthly_income"`
	TotalInvested      float64 `json:"total_invested"`
	MagicNumberMonth   int     `json:"magic_number_month"`
}

// DividendResult pairs the summary with the full monthly series.
type DividendResult struct {
	Summary DividendSummary `json:"summary"`
	Series  []DividendPoint `json:"series"`
}

// Installment is one month of a loan schedule. Every month
// Installment == Interest + Amortization, and RemainingDebt reaches exactly
// zero at the final month.
type Installment struct {
	Month         int     `json:"month"`
	Installment   float64 `json:"installment"`
	Interest      float64 `json:"interest"`
	Amortization  float64 `json:"amortization"`
	RemainingDebt float64 `json:"remaining_debt"`
}

// LoanSummary aggregates a full amortization schedule.
type LoanSummary struct {
	TotalPaid        float64 `json:"total_paid"`
	TotalInterest    float64 `json:"total_interest"`
	FirstInstallment float64 `json:"first_installment"`
	FinalInstallment float64 `json:"final_installment"`
}

// LoanResult pairs the summary with the full schedule.
type LoanResult struct {
	Summary LoanSummary   `json:"summary"`
	Series  []Installment `json:"series"`
}

// Comparison winners.
const (
	SideBuy  = "buy"
	SideRent = "rent"
)

// NetWorthPoint is one month of the rent-vs-buy comparison, carrying both
// tracks' net worth plus the quantities that drove the month's cash flow.
type NetWorthPoint struct {
	Month             int     `json:"month"`
	Rent              float64 `json:"rent"`
	Installment       float64 `json:"installment"`
	RemainingDebt     float64 `json:"remaining_debt"`
	PropertyValue     float64 `json:"property_value"`
	BuyerInvestments  float64 `json:"buyer_investments"`
	RenterInvestments float64 `json:"renter_investments"`
	BuyerNetWorth     float64 `json:"buyer_net_worth"`
	RenterNetWorth    float64 `json:"renter_net_worth"`
}

// RentVsBuySummary aggregates the comparison at the horizon.
type RentVsBuySummary struct {
	Winner          string  `json:"winner"`
	Difference      float64 `json:"difference"`
	BuyerNetWorth   float64 `json:"buyer_net_worth"`
	RenterNetWorth  float64 `json:"renter_net_worth"`
	TransferTaxCost float64 `json:"transfer_tax_cost"`
	NotaryCost      float64 `json:"notary_cost"`
	UpfrontCash     float64 `json:"upfront_cash"`
}

// RentVsBuyResult pairs the summary with both full net-worth series.
type RentVsBuyResult struct {
	Summary RentVsBuySummary `json:"summary"`
	Series  []NetWorthPoint  `json:"series"`
}

// DebtPayoffPoint is one month of a payoff plan.
type DebtPayoffPoint struct {
	Month           int     `json:"month"`
	TotalBalance    float64 `json:"total_balance"`
	InterestAccrued float64 `json:"interest_accrued"`
	AmountPaid      float64 `json:"amount_paid"`
}

// DebtPayoffSummary aggregates a payoff plan. When Converged is false the
// plan hit the month cap with debt outstanding and Months is the cap, not a
// real payoff date.
type DebtPayoffSummary struct {
	Months        int      `json:"months"`
	Converged     bool     `json:"converged"`
	TotalInterest float64  `json:"total_interest"`
	TotalPaid     float64  `json:"total_paid"`
	PayoffOrder   []string `json:"payoff_order"`
}

// DebtPayoffResult pairs the summary with the monthly series.
type DebtPayoffResult struct {
	Summary DebtPayoffSummary `json:"summary"`
	Series  []DebtPayoffPoint `json:"series"`
}

// FirePoint is one month of the accumulation search.
type FirePoint struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

// FireSummary aggregates the target search. When TargetReached is false the
// search hit its iteration cap and MonthsToTarget carries no meaning as a
// date.
type FireSummary struct {
	TargetCapital   float64 `json:"target_capital"`
	TargetReached   bool    `json:"target_reached"`
	MonthsToTarget  int     `json:"months_to_target"`
	YearsToTarget   float64 `json:"years_to_target"`
	ProgressPercent float64 `json:"progress_percent"`
}

// FireResult pairs the summary with the balance path.
type FireResult struct {
	Summary FireSummary `json:"summary"`
	Series  []FirePoint `json:"series"`
}

// RoiSummary holds absolute and annualized return on investment. Both are
// percentages; the annualized figure is only computed when cost, revenue and
// period are all positive, and is zero otherwise.
type RoiSummary struct {
	NetProfit     float64 `json:"net_profit"`
	TotalCost     float64 `json:"total_cost"`
	Roi           float64 `json:"roi"`
	AnnualizedRoi float64 `json:"annualized_roi"`
}

// RoiResult carries only a summary; this calculator has no time series.
type RoiResult struct {
	Summary RoiSummary `json:"summary"`
}

// SimulationReport is the union consumed by the output layer: the kind plus
// exactly one populated result.
type SimulationReport struct {
	Kind       SimulationKind    `json:"kind"`
	Compound   *CompoundResult   `json:"compound_interest,omitempty"`
	Dividends  *DividendResult   `json:"dividends,omitempty"`
	Loan       *LoanResult       `json:"amortization,omitempty"`
	RentVsBuy  *RentVsBuyResult  `json:"rent_vs_buy,omitempty"`
	DebtPayoff *DebtPayoffResult `json:"debt_payoff,omitempty"`
	Fire       *FireResult       `json:"fire,omitempty"`
	Roi        *RoiResult        `json:"roi,omitempty"`
}
