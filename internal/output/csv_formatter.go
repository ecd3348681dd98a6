package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/finsim/finance-simulator/internal/domain"
	"github.com/finsim/finance-simulator/pkg/money"
)

// CSVFormatter exports the monthly series as CSV, one row per month with
// columns matching the simulator's data points. The ROI calculator has no
// series, so it exports its summary as a single row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var err error
	switch {
	case report.Compound != nil:
		err = writeCompoundCSV(w, report.Compound)
	case report.Dividends != nil:
		err = writeDividendsCSV(w, report.Dividends)
	case report.Loan != nil:
		err = writeLoanCSV(w, report.Loan)
	case report.RentVsBuy != nil:
		err = writeRentVsBuyCSV(w, report.RentVsBuy)
	case report.DebtPayoff != nil:
		err = writeDebtPayoffCSV(w, report.DebtPayoff)
	case report.Fire != nil:
		err = writeFireCSV(w, report.Fire)
	case report.Roi != nil:
		err = writeRoiCSV(w, report.Roi)
	default:
		return nil, fmt.Errorf("report carries no result")
	}
	if err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeCompoundCSV(w *csv.Writer, r *domain.CompoundResult) error {
	if err := w.Write([]string{"Month", "Interest", "TotalInvested", "TotalInterest", "Balance", "RealBalance"}); err != nil {
		return err
	}
	for _, pt := range r.Series {
		if err := w.Write([]string{
			strconv.Itoa(pt.Month),
			money.String(pt.Interest),
			money.String(pt.TotalInvested),
			money.String(pt.TotalInterest),
			money.String(pt.Balance),
			money.String(pt.RealBalance),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeDividendsCSV(w *csv.Writer, r *domain.DividendResult) error {
	if err := w.Write([]string{"Month", "Units", "Dividends", "TotalInvested", "WalletValue"}); err != nil {
		return err
	}
	for _, pt := range r.Series {
		if err := w.Write([]string{
			strconv.Itoa(pt.Month),
			strconv.FormatInt(pt.Units, 10),
			money.String(pt.Dividends),
			money.String(pt.TotalInvested),
			money.String(pt.WalletValue),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeLoanCSV(w *csv.Writer, r *domain.LoanResult) error {
	if err := w.Write([]string{"Month", "Installment", "Interest", "Amortization", "RemainingDebt"}); err != nil {
		return err
	}
	for _, pt := range r.Series {
		if err := w.Write([]string{
			strconv.Itoa(pt.Month),
			money.String(pt.Installment),
			money.String(pt.Interest),
			money.String(pt.Amortization),
			money.String(pt.RemainingDebt),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeRentVsBuyCSV(w *csv.Writer, r *domain.RentVsBuyResult) error {
	if err := w.Write([]string{"Month", "Rent", "Installment", "RemainingDebt", "PropertyValue", "BuyerNetWorth", "RenterNetWorth"}); err != nil {
		return err
	}
	for _, pt := range r.Series {
		if err := w.Write([]string{
			strconv.Itoa(pt.Month),
			money.String(pt.Rent),
			money.String(pt.Installment),
			money.String(pt.RemainingDebt),
			money.String(pt.PropertyValue),
			money.String(pt.BuyerNetWorth),
			money.String(pt.RenterNetWorth),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeDebtPayoffCSV(w *csv.Writer, r *domain.DebtPayoffResult) error {
	if err := w.Write([]string{"Month", "TotalBalance", "InterestAccrued", "AmountPaid"}); err != nil {
		return err
	}
	for _, pt := range r.Series {
		if err := w.Write([]string{
			strconv.Itoa(pt.Month),
			money.String(pt.TotalBalance),
			money.String(pt.InterestAccrued),
			money.String(pt.AmountPaid),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFireCSV(w *csv.Writer, r *domain.FireResult) error {
	if err := w.Write([]string{"Month", "Balance"}); err != nil {
		return err
	}
	for _, pt := range r.Series {
		if err := w.Write([]string{strconv.Itoa(pt.Month), money.String(pt.Balance)}); err != nil {
			return err
		}
	}
	return nil
}

func writeRoiCSV(w *csv.Writer, r *domain.RoiResult) error {
	if err := w.Write([]string{"TotalCost", "NetProfit", "Roi", "AnnualizedRoi"}); err != nil {
		return err
	}
	s := r.Summary
	return w.Write([]string{
		money.String(s.TotalCost),
		money.String(s.NetProfit),
		money.String(s.Roi),
		money.String(s.AnnualizedRoi),
	})
}
