package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felipearaujo/orcato/internal/domain"
)

// selectionColumns is the canonical SELECT column list for budget_selections.
const selectionColumns = `budget_id, office_id, active, configs,
		area, region, standard, complexity, urgency, payment_plan, discount_pct,
		created_at, updated_at`

// SQLiteSelectionRepo implements SelectionRepo using a SQLite database.
type SQLiteSelectionRepo struct {
	db *sql.DB
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(db *sql.DB) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{db: db}
}

func (r *SQLiteSelectionRepo) Get(ctx context.Context, budgetID string) (*BudgetSelection, error) {
	query := `SELECT ` + selectionColumns + ` FROM budget_selections WHERE budget_id = ?`
	row := r.db.QueryRowContext(ctx, query, budgetID)
	s, err := scanSelection(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("budget selection: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSelectionRepo) Save(ctx context.Context, s *BudgetSelection) error {
	active, err := toJSON(s.Active)
	if err != nil {
		return fmt.Errorf("encoding active disciplines: %w", err)
	}
	configs, err := toJSON(s.Configs)
	if err != nil {
		return fmt.Errorf("encoding discipline configs: %w", err)
	}

	now := nowUTC()
	query := `INSERT INTO budget_selections (` + selectionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(budget_id) DO UPDATE SET
			office_id = excluded.office_id,
			active = excluded.active,
			configs = excluded.configs,
			area = excluded.area,
			region = excluded.region,
			standard = excluded.standard,
			complexity = excluded.complexity,
			urgency = excluded.urgency,
			payment_plan = excluded.payment_plan,
			discount_pct = excluded.discount_pct,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		s.BudgetID,
		s.OfficeID,
		active,
		configs,
		s.Params.Area,
		s.Params.Region,
		s.Params.Standard,
		s.Params.Complexity,
		string(s.Params.Urgency),
		string(s.Params.PaymentPlan),
		s.Params.DiscountPct,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("saving budget selection: %w", err)
	}
	return nil
}

func (r *SQLiteSelectionRepo) Delete(ctx context.Context, budgetID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budget_selections WHERE budget_id = ?`, budgetID)
	if err != nil {
		return fmt.Errorf("deleting budget selection: %w", err)
	}
	return nil
}

func (r *SQLiteSelectionRepo) ListByOffice(ctx context.Context, officeID string) ([]*BudgetSelection, error) {
	query := `SELECT ` + selectionColumns + ` FROM budget_selections
		WHERE office_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, officeID)
	if err != nil {
		return nil, fmt.Errorf("listing budget selections: %w", err)
	}
	defer rows.Close()

	var out []*BudgetSelection
	for rows.Next() {
		s, err := scanSelection(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget selections: %w", err)
	}
	return out, nil
}

func (r *SQLiteSelectionRepo) GetOfficeDefault(ctx context.Context, officeID string) ([]string, error) {
	var activeStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT active FROM office_default_selections WHERE office_id = ?`, officeID).Scan(&activeStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("office default selection: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading office default selection: %w", err)
	}

	var active []string
	if err := fromJSON(activeStr, &active); err != nil {
		return nil, fmt.Errorf("active column: %w", err)
	}
	return active, nil
}

func (r *SQLiteSelectionRepo) SaveOfficeDefault(ctx context.Context, officeID string, active []string) error {
	activeStr, err := toJSON(active)
	if err != nil {
		return fmt.Errorf("encoding office default selection: %w", err)
	}
	query := `INSERT INTO office_default_selections (office_id, active, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(office_id) DO UPDATE SET
			active = excluded.active,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, officeID, activeStr, nowUTC()); err != nil {
		return fmt.Errorf("saving office default selection: %w", err)
	}
	return nil
}

// scanSelection scans one row via the provided scan function, shared
// between single-row and multi-row queries.
func scanSelection(scan func(...any) error) (*BudgetSelection, error) {
	var s BudgetSelection
	var activeStr, configsStr string
	var urgencyStr, planStr string
	var createdAtStr, updatedAtStr string

	err := scan(
		&s.BudgetID, &s.OfficeID, &activeStr, &configsStr,
		&s.Params.Area, &s.Params.Region, &s.Params.Standard, &s.Params.Complexity,
		&urgencyStr, &planStr, &s.Params.DiscountPct,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning budget selection: %w", err)
	}

	if err := fromJSON(activeStr, &s.Active); err != nil {
		return nil, fmt.Errorf("active column: %w", err)
	}
	if err := fromJSON(configsStr, &s.Configs); err != nil {
		return nil, fmt.Errorf("configs column: %w", err)
	}
	s.Params.Urgency = domain.Urgency(urgencyStr)
	s.Params.PaymentPlan = domain.PaymentPlan(planStr)

	if s.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	if s.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}
	return &s, nil
}
