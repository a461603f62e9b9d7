package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePercent converts a free-text percentage into a decimal value.
// Extraction output is untrusted, so anything unparsable becomes zero instead
// of an error: "7", "7%", "7,5 %" and " 7.5" all parse, garbage parses to 0.
// Negative values are clamped to zero as well; a cashback rate below zero
// never means anything.
func ParsePercent(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}

// FormatPercent renders a percentage for display: "7%" rather than "7.00%".
func FormatPercent(p decimal.Decimal) string {
	return p.String() + "%"
}
