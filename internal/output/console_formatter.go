package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/finsim/finance-simulator/pkg/money"
)

// ConsoleFormatter renders a concise human-readable summary of one
// simulation report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	title := strings.ToUpper(strings.ReplaceAll(string(report.Kind), "_", " "))
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))

	switch {
	case report.Compound != nil:
		writeCompound(&buf, report.Compound)
	case report.Dividends != nil:
		writeDividends(&buf, report.Dividends)
	case report.Loan != nil:
		writeLoan(&buf, report.Loan)
	case report.RentVsBuy != nil:
		writeRentVsBuy(&buf, report.RentVsBuy)
	case report.DebtPayoff != nil:
		writeDebtPayoff(&buf, report.DebtPayoff)
	case report.Fire != nil:
		writeFire(&buf, report.Fire)
	case report.Roi != nil:
		writeRoi(&buf, report.Roi)
	default:
		return nil, fmt.Errorf("report carries no result")
	}
	return buf.Bytes(), nil
}

func writeCompound(buf *bytes.Buffer, r *domain.CompoundResult) {
	s := r.Summary
	fmt.Fprintf(buf, "Final Balance:   %s\n", money.Currency(s.FinalBalance))
	fmt.Fprintf(buf, "Total Invested:  %s\n", money.Currency(s.TotalInvested))
	fmt.Fprintf(buf, "Total Interest:  %s\n", money.Currency(s.TotalInterest))
	fmt.Fprintf(buf, "Tax Withheld:    %s\n", money.Currency(s.TaxWithheld))
	fmt.Fprintf(buf, "Net Value:       %s\n", money.Currency(s.NetValue))
	fmt.Fprintf(buf, "Real Value:      %s\n", money.Currency(s.RealValue))
	fmt.Fprintf(buf, "Months:          %d\n", len(r.Series)-1)
}

func writeDividends(buf *bytes.Buffer, r *domain.DividendResult) {
	s := r.Summary
	fmt.Fprintf(buf, "Final Units:          %d\n", s.FinalUnits)
	fmt.Fprintf(buf, "Wallet Value:         %s\n", money.Currency(s.FinalWalletValue))
	fmt.Fprintf(buf, "Monthly Income:       %s\n", money.Currency(s.FinalMonthlyIncome))
	fmt.Fprintf(buf, "Total Invested:       %s\n", money.Currency(s.TotalInvested))
	if s.MagicNumberMonth > 0 {
		fmt.Fprintf(buf, "Self-Funding Month:   %d\n", s.MagicNumberMonth)
	} else {
		fmt.Fprintln(buf, "Self-Funding Month:   not reached")
	}
}

func writeLoan(buf *bytes.Buffer, r *domain.LoanResult) {
	s := r.Summary
	fmt.Fprintf(buf, "Months:            %d\n", len(r.Series))
	fmt.Fprintf(buf, "First Installment: %s\n", money.Currency(s.FirstInstallment))
	fmt.Fprintf(buf, "Final Installment: %s\n", money.Currency(s.FinalInstallment))
	fmt.Fprintf(buf, "Total Interest:    %s\n", money.Currency(s.TotalInterest))
	fmt.Fprintf(buf, "Total Paid:        %s\n", money.Currency(s.TotalPaid))
}

func writeRentVsBuy(buf *bytes.Buffer, r *domain.RentVsBuyResult) {
	s := r.Summary
	fmt.Fprintf(buf, "Winner:           %s\n", strings.ToUpper(s.Winner))
	fmt.Fprintf(buf, "Difference:       %s\n", money.Currency(s.Difference))
	fmt.Fprintf(buf, "Buyer Net Worth:  %s\n", money.Currency(s.BuyerNetWorth))
	fmt.Fprintf(buf, "Renter Net Worth: %s\n", money.Currency(s.RenterNetWorth))
	fmt.Fprintf(buf, "Upfront Cash:     %s (transfer tax %s, notary %s)\n",
		money.Currency(s.UpfrontCash), money.Currency(s.TransferTaxCost), money.Currency(s.NotaryCost))
}

func writeDebtPayoff(buf *bytes.Buffer, r *domain.DebtPayoffResult) {
	s := r.Summary
	if s.Converged {
		fmt.Fprintf(buf, "Debt-Free In:    %d months\n", s.Months)
	} else {
		fmt.Fprintf(buf, "Debt-Free In:    NOT REACHED within %d months\n", s.Months)
	}
	fmt.Fprintf(buf, "Total Interest:  %s\n", money.Currency(s.TotalInterest))
	fmt.Fprintf(buf, "Total Paid:      %s\n", money.Currency(s.TotalPaid))
	if len(s.PayoffOrder) > 0 {
		fmt.Fprintf(buf, "Payoff Order:    %s\n", strings.Join(s.PayoffOrder, ", "))
	}
}

func writeFire(buf *bytes.Buffer, r *domain.FireResult) {
	s := r.Summary
	fmt.Fprintf(buf, "Target Capital:  %s\n", money.Currency(s.TargetCapital))
	if s.TargetReached {
		fmt.Fprintf(buf, "Time To Target:  %d months (%.1f years)\n", s.MonthsToTarget, s.YearsToTarget)
	} else {
		fmt.Fprintf(buf, "Time To Target:  NOT REACHED within %d months\n", s.MonthsToTarget)
	}
	fmt.Fprintf(buf, "Progress:        %s\n", money.Percent(s.ProgressPercent))
}

func writeRoi(buf *bytes.Buffer, r *domain.RoiResult) {
	s := r.Summary
	fmt.Fprintf(buf, "Total Cost:      %s\n", money.Currency(s.TotalCost))
	fmt.Fprintf(buf, "Net Profit:      %s\n", money.Currency(s.NetProfit))
	fmt.Fprintf(buf, "ROI:             %s\n", money.Percent(s.Roi))
	fmt.Fprintf(buf, "Annualized ROI:  %s\n", money.Percent(s.AnnualizedRoi))
}
