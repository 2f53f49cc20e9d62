package verification

import (
	"fmt"

	"github.com/levcheck/verifier/internal/domain"
	"github.com/levcheck/verifier/internal/money"
)

// UnknownColumnError means an explicitly selected column is missing from
// one of the grids. It is fatal: a partial check against a misconfigured
// column set is worse than no check.
type UnknownColumnError struct {
	Column string
	Grid   string // "source" or "target"
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q not found in %s grid", e.Column, e.Grid)
}

// ResolveColumns turns a column selection into the ordered column list a
// run will compare.
//
// Explicit selections must resolve in both grids. In all-numeric mode the
// source grid is scanned in column order and every column with numeric
// data in at least one row is selected; a discovered column absent from
// the target grid is kept, so its cells surface as TARGET_EMPTY
// discrepancies instead of aborting the run.
func ResolveColumns(source, target domain.Grid, sel domain.ColumnSelection) ([]string, error) {
	switch sel.Mode {
	case domain.SelectionExplicit:
		if len(sel.Columns) == 0 {
			return nil, fmt.Errorf("explicit column selection is empty")
		}
		for _, col := range sel.Columns {
			if !source.HasColumn(col) {
				return nil, &UnknownColumnError{Column: col, Grid: "source"}
			}
			if !target.HasColumn(col) {
				return nil, &UnknownColumnError{Column: col, Grid: "target"}
			}
		}
		columns := make([]string, len(sel.Columns))
		copy(columns, sel.Columns)
		return columns, nil

	case domain.SelectionAllNumeric:
		var columns []string
		for _, col := range source.Columns {
			for _, row := range source.Rows {
				if money.IsNumeric(row[col]) {
					columns = append(columns, col)
					break
				}
			}
		}
		return columns, nil

	default:
		return nil, fmt.Errorf("unsupported selection mode %q", sel.Mode)
	}
}

// AlignRows pairs rows by position and returns the number of comparable
// rows: min(source, target). Count differences are the caller's to report.
func AlignRows(source, target domain.Grid) int {
	if len(source.Rows) < len(target.Rows) {
		return len(source.Rows)
	}
	return len(target.Rows)
}

// Pairs produces cell pairs row-major: all resolved columns of row 0,
// then row 1, and so on. The ordering is load-bearing: discrepancy order
// in the report must be reproducible and match the sheet's natural
// top-to-bottom reading order.
func Pairs(source, target domain.Grid, columns []string, rows int) []domain.CellPair {
	pairs := make([]domain.CellPair, 0, rows*len(columns))
	for r := 0; r < rows; r++ {
		for _, col := range columns {
			pairs = append(pairs, domain.CellPair{
				RowIndex:  r,
				Column:    col,
				SourceRaw: source.Cell(r, col),
				TargetRaw: target.Cell(r, col),
			})
		}
	}
	return pairs
}
