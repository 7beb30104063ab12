package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencyNGN = "NGN"
	CurrencyUSD = "USD"
)

// CurrencySymbol maps a currency code to its display symbol. Codes are not
// validated: anything other than NGN renders as "$".
func CurrencySymbol(code string) string {
	if strings.ToUpper(strings.TrimSpace(code)) == CurrencyNGN {
		return "₦"
	}
	return "$"
}

// RoundAmount rounds half away from zero to two decimal places.
func RoundAmount(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// FormatAmount renders amount with the currency symbol, thousands
// separators and two decimals, e.g. "₦1,234.50" or "-$15.00".
func FormatAmount(amount float64, currency string) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + CurrencySymbol(currency) + groupThousands(intPart) + "." + frac
}

// ConvertAmount converts an NGN amount into the display currency using a
// caller-supplied rate (NGN per USD). Any other target, or a non-positive
// rate, returns the amount unchanged.
func ConvertAmount(amount float64, target string, rate float64) float64 {
	if strings.ToUpper(strings.TrimSpace(target)) != CurrencyUSD || rate <= 0 {
		return amount
	}
	f, _ := decimal.NewFromFloat(amount).Div(decimal.NewFromFloat(rate)).Float64()
	return f
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
