package verification

import (
	"fmt"
	"log"
	"strings"

	"github.com/levcheck/verifier/internal/currency"
	"github.com/levcheck/verifier/internal/domain"
	"github.com/levcheck/verifier/internal/money"
)

// Service runs fixed-rate conversion checks between a BGN source grid and
// its EUR target copy. A Service is stateless apart from its converter;
// concurrent Verify calls are safe as long as the grids are not mutated
// during the call.
type Service struct {
	converter *currency.Converter
}

// NewService creates a verification service using the given converter.
func NewService(converter *currency.Converter) *Service {
	return &Service{converter: converter}
}

// Verify compares the target grid against the fixed-rate conversion of the
// source grid over the selected columns and returns the full report.
//
// Only configuration problems (unresolvable columns) return an error. Data
// quality findings (mismatched values, empty or non-numeric target cells,
// differing row counts) are report content: finding them is the job.
func (s *Service) Verify(source, target domain.Grid, sel domain.ColumnSelection) (*domain.Report, error) {
	columns, err := ResolveColumns(source, target, sel)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Discrepancies: []domain.Discrepancy{},
		Columns:       columns,
	}

	rows := AlignRows(source, target)
	report.RowsCompared = rows

	if len(source.Rows) != len(target.Rows) {
		report.Discrepancies = append(report.Discrepancies, domain.Discrepancy{
			RowIndex: rows,
			Reason:   domain.ReasonRowCountMismatch,
			Description: fmt.Sprintf(
				"source has %d data rows, target has %d; cells checked over the first %d rows only",
				len(source.Rows), len(target.Rows), rows,
			),
		})
	}

	for _, pair := range Pairs(source, target, columns, rows) {
		s.checkPair(pair, report)
	}

	report.Pass = len(report.Discrepancies) == 0

	log.Printf("[verification] checked=%d skipped=%d discrepancies=%d pass=%v",
		report.CellsChecked, report.CellsSkipped, len(report.Discrepancies), report.Pass)

	return report, nil
}

// checkPair applies the per-cell rules to one aligned pair and records the
// outcome on the report.
func (s *Service) checkPair(pair domain.CellPair, report *domain.Report) {
	bgn, err := money.Parse(pair.SourceRaw)
	if err != nil {
		// Mixed label/amount columns are normal; a non-numeric source
		// cell is skipped, never reported.
		report.CellsSkipped++
		return
	}

	expected := s.converter.BGNToEUR(bgn)

	if strings.TrimSpace(pair.TargetRaw) == "" {
		report.Discrepancies = append(report.Discrepancies, domain.Discrepancy{
			RowIndex:    pair.RowIndex,
			Column:      pair.Column,
			Reason:      domain.ReasonTargetEmpty,
			ExpectedEUR: expected,
			Delta:       expected.Neg(),
			Description: fmt.Sprintf(
				"row %d column %q: source has %s BGN but the target cell is empty",
				pair.RowIndex, pair.Column, bgn,
			),
		})
		return
	}

	eur, err := money.Parse(pair.TargetRaw)
	if err != nil {
		report.Discrepancies = append(report.Discrepancies, domain.Discrepancy{
			RowIndex:    pair.RowIndex,
			Column:      pair.Column,
			Reason:      domain.ReasonNonNumeric,
			ExpectedEUR: expected,
			Delta:       expected.Neg(),
			Description: fmt.Sprintf(
				"row %d column %q: target cell %q is not numeric (expected %s EUR)",
				pair.RowIndex, pair.Column, pair.TargetRaw, expected,
			),
		})
		return
	}

	actual := money.RoundToCents(eur)
	report.CellsChecked++

	if !expected.Equal(actual) {
		report.Discrepancies = append(report.Discrepancies, domain.Discrepancy{
			RowIndex:    pair.RowIndex,
			Column:      pair.Column,
			Reason:      domain.ReasonValueMismatch,
			ExpectedEUR: expected,
			ActualEUR:   actual,
			Delta:       actual.Sub(expected),
			Description: fmt.Sprintf(
				"row %d column %q: %s BGN converts to %s EUR, file has %s EUR (delta %s)",
				pair.RowIndex, pair.Column, bgn, expected, actual, actual.Sub(expected),
			),
		})
	}
}
