package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the full schema. Statements are idempotent
// (CREATE IF NOT EXISTS) and re-run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workdays (
		date       TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id           TEXT PRIMARY KEY,
		workday_date TEXT NOT NULL REFERENCES workdays(date) ON DELETE CASCADE,
		started_at   TEXT NOT NULL,
		ended_at     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_workday
		ON work_sessions(workday_date, started_at)`,
}

// Migrate applies all schema statements.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
