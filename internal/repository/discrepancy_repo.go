package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/levcheck/verifier/internal/domain"
)

type DiscrepancyRepo struct {
	db *sql.DB
}

func NewDiscrepancyRepo(db *sql.DB) *DiscrepancyRepo {
	return &DiscrepancyRepo{db: db}
}

// BulkInsert stores a run's discrepancies, numbering them by discovery
// order so ListByRun reproduces the report ordering exactly.
func (r *DiscrepancyRepo) BulkInsert(runID string, discs []domain.Discrepancy) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO discrepancies
		(run_id, seq, row_index, column_name, reason, expected_eur,
		 actual_eur, delta, description)
		VALUES (?,?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i := range discs {
		d := &discs[i]
		_, err := stmt.Exec(
			runID, i, d.RowIndex, d.Column, string(d.Reason),
			d.ExpectedEUR.String(), d.ActualEUR.String(), d.Delta.String(),
			d.Description,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert %d: %w", i, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// ListByRun returns a run's discrepancies in discovery order.
func (r *DiscrepancyRepo) ListByRun(runID string) ([]domain.Discrepancy, error) {
	rows, err := r.db.Query(
		`SELECT row_index, column_name, reason, expected_eur, actual_eur,
		        delta, description
		 FROM discrepancies WHERE run_id = ? ORDER BY seq`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDiscrepancies(rows)
}

// CountByReason aggregates discrepancy counts across all runs.
func (r *DiscrepancyRepo) CountByReason() (map[string]int, error) {
	m := make(map[string]int)
	rows, err := r.db.Query("SELECT reason, COUNT(*) FROM discrepancies GROUP BY reason")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		var v int
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, rows.Err()
}

// ClearForRun removes a run's discrepancies (useful when re-verifying).
func (r *DiscrepancyRepo) ClearForRun(runID string) error {
	_, err := r.db.Exec("DELETE FROM discrepancies WHERE run_id = ?", runID)
	return err
}

// --- helpers ---

func scanDiscrepancies(rows *sql.Rows) ([]domain.Discrepancy, error) {
	var discs []domain.Discrepancy
	for rows.Next() {
		var d domain.Discrepancy
		var reason, expected, actual, delta string

		err := rows.Scan(
			&d.RowIndex, &d.Column, &reason, &expected, &actual, &delta,
			&d.Description,
		)
		if err != nil {
			return nil, err
		}

		d.Reason = domain.DiscrepancyReason(reason)
		if d.ExpectedEUR, err = decimal.NewFromString(expected); err != nil {
			return nil, fmt.Errorf("decode expected_eur %q: %w", expected, err)
		}
		if d.ActualEUR, err = decimal.NewFromString(actual); err != nil {
			return nil, fmt.Errorf("decode actual_eur %q: %w", actual, err)
		}
		if d.Delta, err = decimal.NewFromString(delta); err != nil {
			return nil, fmt.Errorf("decode delta %q: %w", delta, err)
		}

		discs = append(discs, d)
	}
	return discs, rows.Err()
}
