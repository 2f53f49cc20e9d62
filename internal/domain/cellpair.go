package domain

// CellPair is one (row, column) comparison unit: the raw source and target
// values at the same logical position. Pairs live only for the duration of
// a single verification pass.
type CellPair struct {
	RowIndex  int
	Column    string
	SourceRaw string
	TargetRaw string
}
