package domain

// Row maps a column identifier (header name) to the raw cell value as it
// appeared in the file. An empty string means the cell is empty.
type Row map[string]string

// Grid is one in-memory report table: an ordered set of column identifiers
// and the data rows beneath the header. Row order is significant (row
// indices localize discrepancies) and must be preserved by adapters.
// The verification engine treats a Grid as a read-only snapshot.
type Grid struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn reports whether the grid carries the given column identifier.
func (g Grid) HasColumn(name string) bool {
	for _, c := range g.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Cell returns the raw value at (row, column). Out-of-range rows and
// unknown columns read as empty cells.
func (g Grid) Cell(row int, column string) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	return g.Rows[row][column]
}
