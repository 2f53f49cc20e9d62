package domain

// Report is the single result of one verification run. Discrepancies are
// ordered by discovery: the row-count check first, then row-major over the
// resolved columns. Pass is true exactly when the list is empty.
type Report struct {
	Pass          bool          `json:"pass"`
	Discrepancies []Discrepancy `json:"discrepancies"`
	CellsChecked  int           `json:"cells_checked"`
	CellsSkipped  int           `json:"cells_skipped"`
	RowsCompared  int           `json:"rows_compared"`
	Columns       []string      `json:"columns"`
}
