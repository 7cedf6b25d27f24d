// Package amountutils provides amount parsing and numeric-shape detection
// for e-invoice fields. Taiwan exports frequently carry full-width digits
// and separators, so every function width-normalizes its input first.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	amountChars = regexp.MustCompile(`[^0-9.\-]`)
	amountLike  = regexp.MustCompile(`^-?\d{1,3}(,\d{3})*(\.\d+)?$|^-?\d+(\.\d+)?$`)
)

// Normalize folds full-width characters to their half-width equivalents and
// applies NFKC normalization. "１２３" becomes "123".
func Normalize(s string) string {
	return norm.NFKC.String(width.Narrow.String(s))
}

// ParseAmount parses a textual amount into a decimal value. Everything but
// digits, '.' and '-' is stripped before parsing, which tolerates currency
// markers and thousand separators.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	stripped := amountChars.ReplaceAllString(Normalize(amountStr), "")
	if stripped == "" || stripped == "-" {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: no digits", amountStr)
	}

	amount, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}

	return amount, nil
}

// IsAmountLike reports whether a field is purely numeric: an optional
// leading '-', digits with optional comma grouping and an optional decimal
// part. Detail rows use this to disambiguate the item-name/amount order.
func IsAmountLike(s string) bool {
	return amountLike.MatchString(strings.TrimSpace(Normalize(s)))
}
