// Package format holds pure display formatting for numeric dataset fields.
package format

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	trillion = decimal.NewFromInt(1_000_000_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	million  = decimal.NewFromInt(1_000_000)
)

// MarketCap renders a market capitalization with a magnitude suffix:
// "$1.23T", "$45.60B", "$789.00M". Bucket boundaries are inclusive, so
// exactly 1e12 formats as trillions. Values below one million are rendered
// raw with no decimal normalization ("$500").
func MarketCap(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case v >= 1e12:
		return "$" + d.Div(trillion).StringFixed(2) + "T"
	case v >= 1e9:
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case v >= 1e6:
		return "$" + d.Div(million).StringFixed(2) + "M"
	default:
		return "$" + strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Fixed renders a value with exactly two decimal places, rounding half away
// from zero.
func Fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Percent renders a percentage field as a fixed two-decimal string with a
// trailing percent sign.
func Percent(v float64) string {
	return Fixed(v) + "%"
}
