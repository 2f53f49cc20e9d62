package domain

import "github.com/shopspring/decimal"

type DiscrepancyReason string

const (
	// ReasonValueMismatch: target carries a different EUR amount than the
	// fixed-rate conversion of the source BGN amount.
	ReasonValueMismatch DiscrepancyReason = "VALUE_MISMATCH"
	// ReasonTargetEmpty: source cell is numeric but the target cell is
	// empty, typically a formula that did not propagate.
	ReasonTargetEmpty DiscrepancyReason = "TARGET_EMPTY"
	// ReasonNonNumeric: source cell is numeric but the target cell holds
	// non-numeric data.
	ReasonNonNumeric DiscrepancyReason = "NON_NUMERIC"
	// ReasonRowCountMismatch: the two grids have different row counts.
	// Emitted once per run, not per cell.
	ReasonRowCountMismatch DiscrepancyReason = "ROW_COUNT_MISMATCH"
)

// Discrepancy is one defect found by a verification run. RowIndex is the
// zero-based data row (the first row under the header is 0). Amounts are
// cent-rounded EUR values; Delta = actual - expected.
type Discrepancy struct {
	RowIndex    int               `json:"row_index"`
	Column      string            `json:"column,omitempty"`
	Reason      DiscrepancyReason `json:"reason"`
	ExpectedEUR decimal.Decimal   `json:"expected_eur"`
	ActualEUR   decimal.Decimal   `json:"actual_eur"`
	Delta       decimal.Decimal   `json:"delta"`
	Description string            `json:"description"`
}
