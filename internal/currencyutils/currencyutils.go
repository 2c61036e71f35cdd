// Package currencyutils parses amount strings from CSV history files.
// Exports are tolerant of the formats banks emit: currency symbols,
// apostrophe or comma thousand separators, and comma decimal separators.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥₣₹₽₩฿₴₪CHF\s]`)

// ParseAmount parses an amount string into a decimal, accepting formats
// like "1,234.56", "1.234,56", "1'234.56" or "CHF 1234.56". Empty strings
// parse to zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(standardize(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return amount, nil
}

// standardize rewrites an amount string into the plain form accepted by
// decimal.NewFromString.
func standardize(s string) string {
	s = symbolRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// European format: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// Anglo format: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Comma as decimal separator: 1234,56
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}
