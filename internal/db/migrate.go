package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Office pricing tables. Multiplier maps and per-discipline entries
	// are JSON documents (codes and numbers only); indirect costs and
	// commercial terms are flat columns so admins can query them.
	`CREATE TABLE IF NOT EXISTS office_pricing (
		office_id              TEXT PRIMARY KEY,
		disciplines            TEXT NOT NULL DEFAULT '{}',
		regional_multipliers   TEXT NOT NULL DEFAULT '{}',
		standard_multipliers   TEXT NOT NULL DEFAULT '{}',
		complexity_multipliers TEXT NOT NULL DEFAULT '{}',
		margin_pct             REAL NOT NULL DEFAULT 0,
		overhead_pct           REAL NOT NULL DEFAULT 0,
		tax_pct                REAL NOT NULL DEFAULT 0,
		contingency_pct        REAL NOT NULL DEFAULT 0,
		commission_pct         REAL NOT NULL DEFAULT 0,
		marketing_pct          REAL NOT NULL DEFAULT 0,
		training_pct           REAL NOT NULL DEFAULT 0,
		insurance_pct          REAL NOT NULL DEFAULT 0,
		max_discount_pct       REAL NOT NULL DEFAULT 0,
		minimum_project_value  REAL NOT NULL DEFAULT 0,
		installment_surcharge_pct REAL NOT NULL DEFAULT 0,
		updated_at             TEXT NOT NULL
	)`,

	// Per-office default discipline selection, applied when a budget has
	// no stored selection of its own.
	`CREATE TABLE IF NOT EXISTS office_default_selections (
		office_id  TEXT PRIMARY KEY REFERENCES office_pricing(office_id) ON DELETE CASCADE,
		active     TEXT NOT NULL DEFAULT '[]',
		updated_at TEXT NOT NULL
	)`,

	// Per-budget discipline selection, overrides and project parameters.
	`CREATE TABLE IF NOT EXISTS budget_selections (
		budget_id    TEXT PRIMARY KEY,
		office_id    TEXT NOT NULL,
		active       TEXT NOT NULL DEFAULT '[]',
		configs      TEXT NOT NULL DEFAULT '{}',
		area         REAL NOT NULL DEFAULT 0,
		region       TEXT NOT NULL DEFAULT '',
		standard     TEXT NOT NULL DEFAULT '',
		complexity   TEXT NOT NULL DEFAULT '',
		urgency      TEXT NOT NULL DEFAULT 'normal',
		payment_plan TEXT NOT NULL DEFAULT 'cash',
		discount_pct REAL NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_budget_selections_office ON budget_selections(office_id)`,
}
