// Package export renders verification findings for humans: the CSV
// mismatch report offered for download by the API and written to disk by
// the CLI.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/levcheck/verifier/internal/domain"
)

var csvHeader = []string{
	"Row", "Column", "Reason", "Expected EUR", "Actual EUR", "Delta", "Description",
}

// WriteCSV writes the discrepancy list as a CSV mismatch report, one line
// per discrepancy in discovery order. Row numbers are written 1-based to
// match how a person counts data rows in the sheet.
func WriteCSV(w io.Writer, discs []domain.Discrepancy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, d := range discs {
		rec := []string{
			strconv.Itoa(d.RowIndex + 1),
			d.Column,
			string(d.Reason),
			d.ExpectedEUR.StringFixed(2),
			d.ActualEUR.StringFixed(2),
			d.Delta.StringFixed(2),
			d.Description,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
