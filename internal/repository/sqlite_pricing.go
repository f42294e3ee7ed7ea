package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felipearaujo/orcato/internal/domain"
)

// pricingColumns is the canonical SELECT column list for office_pricing.
const pricingColumns = `office_id, disciplines, regional_multipliers, standard_multipliers,
		complexity_multipliers, margin_pct, overhead_pct, tax_pct, contingency_pct,
		commission_pct, marketing_pct, training_pct, insurance_pct,
		max_discount_pct, minimum_project_value, installment_surcharge_pct, updated_at`

// SQLitePricingRepo implements PricingRepo using a SQLite database.
type SQLitePricingRepo struct {
	db *sql.DB
}

// NewSQLitePricingRepo creates a new SQLitePricingRepo.
func NewSQLitePricingRepo(db *sql.DB) *SQLitePricingRepo {
	return &SQLitePricingRepo{db: db}
}

func (r *SQLitePricingRepo) Get(ctx context.Context, officeID string) (*domain.PricingTable, error) {
	query := `SELECT ` + pricingColumns + ` FROM office_pricing WHERE office_id = ?`
	row := r.db.QueryRowContext(ctx, query, officeID)
	return r.scanTable(row)
}

func (r *SQLitePricingRepo) Save(ctx context.Context, table *domain.PricingTable) error {
	disciplines, err := toJSON(table.Disciplines)
	if err != nil {
		return fmt.Errorf("encoding disciplines: %w", err)
	}
	regional, err := toJSON(table.RegionalMultipliers)
	if err != nil {
		return fmt.Errorf("encoding regional multipliers: %w", err)
	}
	standard, err := toJSON(table.StandardMultipliers)
	if err != nil {
		return fmt.Errorf("encoding standard multipliers: %w", err)
	}
	complexity, err := toJSON(table.ComplexityMultipliers)
	if err != nil {
		return fmt.Errorf("encoding complexity multipliers: %w", err)
	}

	query := `INSERT INTO office_pricing (` + pricingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(office_id) DO UPDATE SET
			disciplines = excluded.disciplines,
			regional_multipliers = excluded.regional_multipliers,
			standard_multipliers = excluded.standard_multipliers,
			complexity_multipliers = excluded.complexity_multipliers,
			margin_pct = excluded.margin_pct,
			overhead_pct = excluded.overhead_pct,
			tax_pct = excluded.tax_pct,
			contingency_pct = excluded.contingency_pct,
			commission_pct = excluded.commission_pct,
			marketing_pct = excluded.marketing_pct,
			training_pct = excluded.training_pct,
			insurance_pct = excluded.insurance_pct,
			max_discount_pct = excluded.max_discount_pct,
			minimum_project_value = excluded.minimum_project_value,
			installment_surcharge_pct = excluded.installment_surcharge_pct,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		table.OfficeID,
		disciplines,
		regional,
		standard,
		complexity,
		table.Indirect.MarginPct,
		table.Indirect.OverheadPct,
		table.Indirect.TaxPct,
		table.Indirect.ContingencyPct,
		table.Indirect.CommissionPct,
		table.Indirect.MarketingPct,
		table.Indirect.TrainingPct,
		table.Indirect.InsurancePct,
		table.Commercial.MaxDiscountPct,
		table.Commercial.MinimumProjectValue,
		table.Commercial.InstallmentSurchargePct,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving office pricing: %w", err)
	}
	return nil
}

func (r *SQLitePricingRepo) Delete(ctx context.Context, officeID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM office_pricing WHERE office_id = ?`, officeID)
	if err != nil {
		return fmt.Errorf("deleting office pricing: %w", err)
	}
	return nil
}

func (r *SQLitePricingRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT office_id FROM office_pricing ORDER BY office_id`)
	if err != nil {
		return nil, fmt.Errorf("listing offices: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning office id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offices: %w", err)
	}
	return ids, nil
}

func (r *SQLitePricingRepo) scanTable(row *sql.Row) (*domain.PricingTable, error) {
	var t domain.PricingTable
	var disciplines, regional, standard, complexity string
	var updatedAtStr string

	err := row.Scan(
		&t.OfficeID, &disciplines, &regional, &standard, &complexity,
		&t.Indirect.MarginPct, &t.Indirect.OverheadPct, &t.Indirect.TaxPct,
		&t.Indirect.ContingencyPct, &t.Indirect.CommissionPct,
		&t.Indirect.MarketingPct, &t.Indirect.TrainingPct, &t.Indirect.InsurancePct,
		&t.Commercial.MaxDiscountPct, &t.Commercial.MinimumProjectValue,
		&t.Commercial.InstallmentSurchargePct,
		&updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("office pricing: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning office pricing: %w", err)
	}

	if err := fromJSON(disciplines, &t.Disciplines); err != nil {
		return nil, fmt.Errorf("disciplines column: %w", err)
	}
	if err := fromJSON(regional, &t.RegionalMultipliers); err != nil {
		return nil, fmt.Errorf("regional multipliers column: %w", err)
	}
	if err := fromJSON(standard, &t.StandardMultipliers); err != nil {
		return nil, fmt.Errorf("standard multipliers column: %w", err)
	}
	if err := fromJSON(complexity, &t.ComplexityMultipliers); err != nil {
		return nil, fmt.Errorf("complexity multipliers column: %w", err)
	}

	t.UpdatedAt, err = parseTime(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}
	return &t, nil
}
