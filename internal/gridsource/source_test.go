package gridsource

import (
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFromCSV(t *testing.T) {
	data := []byte("Item,Net Amount,Total\nPOS-001,100.00,120.00\nPOS-002,50.00\n")

	grid, err := FromCSV(data)
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}

	if want := []string{"Item", "Net Amount", "Total"}; !reflect.DeepEqual(grid.Columns, want) {
		t.Errorf("columns = %v, want %v", grid.Columns, want)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(grid.Rows))
	}
	if got := grid.Cell(0, "Net Amount"); got != "100.00" {
		t.Errorf("cell(0, Net Amount) = %q, want 100.00", got)
	}
	// Ragged rows read as empty cells.
	if got := grid.Cell(1, "Total"); got != "" {
		t.Errorf("cell(1, Total) = %q, want empty", got)
	}
}

func TestFromCSVWithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Amount\n1.00\n")...)

	grid, err := FromCSV(data)
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if len(grid.Columns) != 1 || grid.Columns[0] != "Amount" {
		t.Errorf("columns = %v, want [Amount] (BOM must be stripped)", grid.Columns)
	}
}

func TestFromCSVDuplicateHeader(t *testing.T) {
	if _, err := FromCSV([]byte("Amount,Amount\n1,2\n")); err == nil {
		t.Error("duplicate headers should fail: column identifiers must be unambiguous")
	}
}

func TestFromCSVEmpty(t *testing.T) {
	if _, err := FromCSV(nil); err == nil {
		t.Error("empty input should fail")
	}
}

func TestFromXLSX(t *testing.T) {
	f := excelize.NewFile()
	cells := map[string]string{
		"A1": "Item", "B1": " Net Amount ",
		"A2": "POS-001", "B2": "100.00",
		"A3": "POS-002", "B3": "50.00",
	}
	for cell, v := range cells {
		if err := f.SetCellValue("Sheet1", cell, v); err != nil {
			t.Fatalf("SetCellValue(%s): %v", cell, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	grid, err := FromXLSX(buf.Bytes(), "")
	if err != nil {
		t.Fatalf("FromXLSX: %v", err)
	}

	// Header cells are trimmed.
	if want := []string{"Item", "Net Amount"}; !reflect.DeepEqual(grid.Columns, want) {
		t.Errorf("columns = %v, want %v", grid.Columns, want)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(grid.Rows))
	}
	if got := grid.Cell(1, "Net Amount"); got != "50.00" {
		t.Errorf("cell(1, Net Amount) = %q, want 50.00", got)
	}
}

func TestFromXLSXUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	_ = f.SetCellValue("Sheet1", "A1", "Amount")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	if _, err := FromXLSX(buf.Bytes(), "NoSuchSheet"); err == nil {
		t.Error("unknown sheet name should fail")
	}
}

func TestFromFileDispatch(t *testing.T) {
	if _, err := FromFile("report.csv", []byte("A\n1\n"), ""); err != nil {
		t.Errorf("csv dispatch failed: %v", err)
	}

	_, err := FromFile("report.pdf", nil, "")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}
