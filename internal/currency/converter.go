package currency

import (
	"github.com/shopspring/decimal"

	"github.com/levcheck/verifier/internal/money"
)

// BGNPerEUR is the fixed, legally defined conversion rate:
// 1 EUR = 1.95583 BGN. Changing it is a deployment decision, so it is a
// compile-time constant and not part of any runtime configuration surface.
var BGNPerEUR = decimal.RequireFromString("1.95583")

// Converter applies a fixed BGN-per-EUR rate. The rate is set at
// construction and immutable afterwards, so tests can substitute an
// alternate rate without touching shared state.
type Converter struct {
	rate decimal.Decimal
}

// New creates a converter with the given BGN-per-EUR rate.
func New(rate decimal.Decimal) *Converter {
	return &Converter{rate: rate}
}

// Default creates a converter with the fixed legal rate.
func Default() *Converter {
	return New(BGNPerEUR)
}

// Rate returns the BGN-per-EUR rate this converter applies.
func (c *Converter) Rate() decimal.Decimal {
	return c.rate
}

// BGNToEUR converts a BGN amount to the expected EUR amount: exact decimal
// division by the rate, then rounding to the cent with midpoints away from
// zero. DivRound keeps the quotient exact up to the rounding digit, so
// exact midpoints land on the correct side (195583 BGN -> 100000.00 EUR).
func (c *Converter) BGNToEUR(bgn decimal.Decimal) decimal.Decimal {
	return bgn.DivRound(c.rate, 2)
}

// RoundToCents re-exports the shared cent rounding so callers comparing
// reported values round the same way the converter does.
func (c *Converter) RoundToCents(d decimal.Decimal) decimal.Decimal {
	return money.RoundToCents(d)
}
