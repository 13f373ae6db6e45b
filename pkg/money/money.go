// Package money converts the wizard's raw cent inputs into currency amounts
// and renders amounts the way the Brazilian UI shows them.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxDigits caps raw inputs so a cents string always fits a float64 exactly.
const MaxDigits = 15

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Digits strips every non-digit rune and truncates to MaxDigits.
func Digits(raw string) string {
	out := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(out) > MaxDigits {
		out = out[:MaxDigits]
	}
	return out
}

// FromCents turns a digit string holding cents into reais. Empty or
// malformed input is zero.
func FromCents(digits string) float64 {
	if digits == "" {
		return 0
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return 0
	}
	return d.Shift(-2).InexactFloat64()
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatBRL renders v as "R$ 1.234,56".
func FormatBRL(v float64) string {
	return brl.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}
