package gridsource

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/levcheck/verifier/internal/domain"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// FromCSV parses CSV data into a grid. A UTF-8 BOM is stripped and ragged
// rows are tolerated: missing trailing cells read as empty.
func FromCSV(data []byte) (domain.Grid, error) {
	reader := bufio.NewReader(bytes.NewReader(data))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return domain.Grid{}, fmt.Errorf("read csv: %w", err)
	}

	return fromRecords(records)
}
