// Package format renders calculator values as display strings.
package format

import (
	"strings"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	d := roundedCents(amount)
	formatted := groupThousands(d.Abs().StringFixed(constants.CurrencyPlaces))
	if d.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a percentage value with the given number of decimals (e.g., "3.85%").
func Percent(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places) + "%"
}

// Fraction renders a 0-1 fraction as a whole-number percentage (e.g., 0.95 -> "95%").
func Fraction(value float64) string {
	return decimal.NewFromFloat(value).Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}

// Ratio renders a coverage ratio with a multiplication sign (e.g., "1.10x").
func Ratio(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(constants.CurrencyPlaces) + "x"
}

// roundedCents rounds half away from zero on the decimal representation, so
// values such as 1.005 become 1.01 instead of the binary-float 1.00.
func roundedCents(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(constants.CurrencyPlaces)
}

func groupThousands(formatted string) string {
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
