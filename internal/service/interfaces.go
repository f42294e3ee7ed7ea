package service

import (
	"context"

	"github.com/felipearaujo/orcato/internal/budget"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/felipearaujo/orcato/internal/repository"
)

// PricingService manages office pricing tables and the office-level
// default discipline selection.
type PricingService interface {
	Get(ctx context.Context, officeID string) (*domain.PricingTable, error)
	Save(ctx context.Context, table *domain.PricingTable) error
	Delete(ctx context.Context, officeID string) error
	List(ctx context.Context) ([]string, error)

	// InitDefaults seeds a pricing table from catalog defaults for an
	// office that has none yet.
	InitDefaults(ctx context.Context, officeID string) (*domain.PricingTable, error)
	SetDiscipline(ctx context.Context, officeID, code string, entry domain.DisciplinePricing) error

	SetDefaultSelection(ctx context.Context, officeID string, active []string) error
	GetDefaultSelection(ctx context.Context, officeID string) ([]string, error)

	ImportFile(ctx context.Context, path string) (*domain.PricingTable, error)
	ExportFile(ctx context.Context, officeID, path string) error
}

// BudgetService opens budget sessions and manages stored selections.
type BudgetService interface {
	// Open loads or creates the budget and returns a live session. An
	// empty budgetID creates a new budget with a generated id.
	Open(ctx context.Context, budgetID, officeID string, params domain.ProjectParams) (*budget.Session, error)
	List(ctx context.Context, officeID string) ([]*repository.BudgetSelection, error)
	Delete(ctx context.Context, budgetID string) error
}
