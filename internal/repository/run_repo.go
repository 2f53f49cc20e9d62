package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/levcheck/verifier/internal/domain"
)

type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

func (r *RunRepo) Insert(run *domain.VerificationRun) error {
	_, err := r.db.Exec(
		`INSERT INTO verification_runs
		(id, source_file, target_file, sheet, selection_mode, columns, pass,
		 cells_checked, cells_skipped, rows_compared, discrepancy_count, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.ID, run.SourceFile, run.TargetFile, run.Sheet,
		string(run.SelectionMode), strings.Join(run.Columns, ","),
		boolToInt(run.Pass), run.CellsChecked, run.CellsSkipped,
		run.RowsCompared, run.DiscrepancyCount,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *RunRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM verification_runs").Scan(&count)
	return count, err
}

// Stats returns the total number of runs and how many passed.
func (r *RunRepo) Stats() (total, passed int, err error) {
	err = r.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(pass),0) FROM verification_runs",
	).Scan(&total, &passed)
	return total, passed, err
}

func (r *RunRepo) GetByID(id string) (*domain.VerificationRun, error) {
	row := r.db.QueryRow("SELECT * FROM verification_runs WHERE id = ?", id)
	return scanRun(row)
}

type RunFilter struct {
	Pass  *bool
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

func (r *RunRepo) List(f RunFilter) ([]domain.VerificationRun, int, error) {
	where, args := buildRunWhere(f)

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM verification_runs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	offset := (f.Page - 1) * f.Limit

	q := "SELECT * FROM verification_runs" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, offset)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var runs []domain.VerificationRun
	for rows.Next() {
		run, err := scanRunRows(rows)
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, *run)
	}
	return runs, total, rows.Err()
}

// --- helpers ---

func buildRunWhere(f RunFilter) (string, []any) {
	var clauses []string
	var args []any

	if f.Pass != nil {
		clauses = append(clauses, "pass = ?")
		args = append(args, boolToInt(*f.Pass))
	}
	if f.From != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, f.From.Format(time.RFC3339))
	}
	if f.To != nil {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, f.To.Format(time.RFC3339))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunFields(s rowScanner) (*domain.VerificationRun, error) {
	var run domain.VerificationRun
	var mode, columns, createdAt string
	var pass int

	err := s.Scan(
		&run.ID, &run.SourceFile, &run.TargetFile, &run.Sheet, &mode,
		&columns, &pass, &run.CellsChecked, &run.CellsSkipped,
		&run.RowsCompared, &run.DiscrepancyCount, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	run.SelectionMode = domain.SelectionMode(mode)
	if columns != "" {
		run.Columns = strings.Split(columns, ",")
	}
	run.Pass = pass != 0
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &run, nil
}

func scanRun(row *sql.Row) (*domain.VerificationRun, error) {
	run, err := scanRunFields(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

func scanRunRows(rows *sql.Rows) (*domain.VerificationRun, error) {
	return scanRunFields(rows)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
