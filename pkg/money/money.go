// Package money holds the two-decimal rupee arithmetic shared by the
// derivation engine, document assembler, and message templates.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds to two decimal places, the resolution every stored and
// displayed amount uses.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Parse converts user input into a decimal. Garbage is never coerced to
// zero; the caller decides how to surface the error. Whitespace is
// tolerated.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Format renders an amount with exactly two decimals, e.g. "1500.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Rupees prefixes the formatted amount with the rupee sign for plain-text
// messages. The PDF assembler uses "Rs" instead because the built-in PDF
// fonts have no glyph for the sign.
func Rupees(d decimal.Decimal) string {
	return "₹" + Format(d)
}
