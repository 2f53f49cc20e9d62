// Package gridsource loads report files into in-memory grids. The
// verification engine never touches a file format directly: adapters here
// resolve XLSX and CSV files into domain.Grid values of already-computed
// cell values.
package gridsource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/levcheck/verifier/internal/domain"
)

// ErrUnsupportedFormat is returned for file extensions no adapter handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FromFile dispatches on the file extension. The sheet name only applies
// to XLSX input; the empty string selects the first sheet.
func FromFile(filename string, data []byte, sheet string) (domain.Grid, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return FromXLSX(data, sheet)
	case ".csv":
		return FromCSV(data)
	default:
		return domain.Grid{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// fromRecords builds a grid from raw rows: the first row is the header,
// everything under it is data. Blank header cells drop their column;
// duplicate headers are a configuration error because column identifiers
// must resolve unambiguously. Data rows are kept exactly as read, empty
// ones included, so row positions stay aligned between the two files.
func fromRecords(records [][]string) (domain.Grid, error) {
	if len(records) == 0 {
		return domain.Grid{}, errors.New("no rows found in file")
	}

	header := records[0]
	var columns []string
	colIdx := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		if _, dup := colIdx[name]; dup {
			return domain.Grid{}, fmt.Errorf("duplicate column header %q", name)
		}
		colIdx[name] = i
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return domain.Grid{}, errors.New("header row has no column names")
	}

	rows := make([]domain.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(domain.Row, len(columns))
		for _, name := range columns {
			idx := colIdx[name]
			if idx < len(rec) {
				row[name] = rec[idx]
			}
		}
		rows = append(rows, row)
	}

	return domain.Grid{Columns: columns, Rows: rows}, nil
}
