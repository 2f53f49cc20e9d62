package domain

type SelectionMode string

const (
	// SelectionExplicit checks exactly the listed columns, in order.
	SelectionExplicit SelectionMode = "explicit"
	// SelectionAllNumeric checks every source column that holds numeric
	// data in at least one row, in source column order.
	SelectionAllNumeric SelectionMode = "all_numeric"
)

// ColumnSelection decides which columns a verification run compares.
type ColumnSelection struct {
	Mode    SelectionMode `json:"mode"`
	Columns []string      `json:"columns,omitempty"`
}

// ExplicitColumns selects exactly the given columns, preserving order.
func ExplicitColumns(columns ...string) ColumnSelection {
	return ColumnSelection{Mode: SelectionExplicit, Columns: columns}
}

// AllNumericColumns selects every column with numeric source data.
func AllNumericColumns() ColumnSelection {
	return ColumnSelection{Mode: SelectionAllNumeric}
}
