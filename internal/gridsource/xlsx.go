package gridsource

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/levcheck/verifier/internal/domain"
)

// FromXLSX parses an XLSX workbook into a grid. excelize returns computed
// cell values, never formula text, which is exactly the contract the
// engine expects. An empty sheet name selects the first sheet.
func FromXLSX(data []byte, sheet string) (domain.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain.Grid{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return domain.Grid{}, errors.New("xlsx file has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return fromRecords(rows)
}
