// Package money holds the monetary value rules shared by the whole
// verifier: exact decimal parsing of raw cell values and cent rounding.
// Monetary arithmetic never touches binary floating point, since a float64
// in a conversion path can shift a midpoint case to the wrong side of the
// cent.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNonNumeric is returned by Parse for cell values that do not represent
// a decimal number (text, booleans, empty cells). Callers treat it as
// "skip this cell", never as a fatal condition.
var ErrNonNumeric = errors.New("non-numeric value")

// Parse converts a raw cell value into an exact decimal. Spreadsheet
// artifacts are normalized first: embedded spaces are stripped (thousands
// grouping) and a comma decimal separator becomes a dot, matching how the
// finance sheets this tool checks are formatted.
func Parse(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Decimal{}, ErrNonNumeric
	}
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, ErrNonNumeric
	}
	return d, nil
}

// IsNumeric reports whether a raw cell value parses as a decimal number.
func IsNumeric(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// RoundToCents rounds to 2 decimal places with midpoints going away from
// zero (10.005 -> 10.01, -10.005 -> -10.01). Both the computed expected
// value and the reported target value pass through here, so comparisons
// are always cent-to-cent even when the file carries extra digits.
func RoundToCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
