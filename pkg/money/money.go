// Package money provides display-precision helpers for the output layer.
// The simulation engine itself works in plain float64 magnitudes; this
// package rounds and formats them deterministically for reports.
package money

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to cents.
func Round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// String renders an amount with exactly two decimals, e.g. "1234.50".
func String(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// Currency renders an amount with a currency symbol prefix.
func Currency(value float64) string {
	d := decimal.NewFromFloat(value)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Percent renders a percentage with two decimals and a trailing sign.
func Percent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2) + "%"
}
