package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) a SQLite database at the given path and ensures
// all required tables exist. Pass ":memory:" for an in-memory database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS verification_runs (
			id TEXT PRIMARY KEY,
			source_file TEXT NOT NULL,
			target_file TEXT NOT NULL,
			sheet TEXT NOT NULL DEFAULT '',
			selection_mode TEXT NOT NULL,
			columns TEXT NOT NULL,
			pass INTEGER NOT NULL,
			cells_checked INTEGER NOT NULL,
			cells_skipped INTEGER NOT NULL,
			rows_compared INTEGER NOT NULL,
			discrepancy_count INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_verification_runs_pass ON verification_runs(pass)`,
		`CREATE INDEX IF NOT EXISTS idx_verification_runs_created_at ON verification_runs(created_at)`,

		// Amounts are stored as exact decimal strings, never REAL: a
		// binary float column would re-introduce the representation
		// error the engine exists to avoid.
		`CREATE TABLE IF NOT EXISTS discrepancies (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			row_index INTEGER NOT NULL,
			column_name TEXT NOT NULL,
			reason TEXT NOT NULL,
			expected_eur TEXT NOT NULL,
			actual_eur TEXT NOT NULL,
			delta TEXT NOT NULL,
			description TEXT NOT NULL,
			PRIMARY KEY (run_id, seq),
			FOREIGN KEY (run_id) REFERENCES verification_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_discrepancies_reason ON discrepancies(reason)`,
		`CREATE INDEX IF NOT EXISTS idx_discrepancies_run ON discrepancies(run_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:60], err)
		}
	}

	return nil
}
