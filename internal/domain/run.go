package domain

import "time"

// VerificationRun is the persisted record of one verification pass: which
// file pair was checked, with what column selection, and the aggregate
// outcome. The per-cell findings live in the discrepancies table keyed by
// the run ID.
type VerificationRun struct {
	ID               string        `json:"id"`
	SourceFile       string        `json:"source_file"`
	TargetFile       string        `json:"target_file"`
	Sheet            string        `json:"sheet,omitempty"`
	SelectionMode    SelectionMode `json:"selection_mode"`
	Columns          []string      `json:"columns"`
	Pass             bool          `json:"pass"`
	CellsChecked     int           `json:"cells_checked"`
	CellsSkipped     int           `json:"cells_skipped"`
	RowsCompared     int           `json:"rows_compared"`
	DiscrepancyCount int           `json:"discrepancy_count"`
	CreatedAt        time.Time     `json:"created_at"`
}
