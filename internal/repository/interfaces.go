package repository

import (
	"context"
	"errors"
	"time"

	"github.com/felipearaujo/orcato/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// BudgetSelection is the persisted discipline state of one budget:
// active codes, per-discipline overrides and the project parameters the
// budget was quoted with.
type BudgetSelection struct {
	BudgetID string
	OfficeID string
	Active   []string
	Configs  map[string]domain.DisciplineConfig
	Params   domain.ProjectParams

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricingRepo reads and writes office pricing tables. Get returns
// ErrNotFound for offices that never configured pricing; callers treat
// that as the documented degraded mode, not a failure.
type PricingRepo interface {
	Get(ctx context.Context, officeID string) (*domain.PricingTable, error)
	Save(ctx context.Context, table *domain.PricingTable) error
	Delete(ctx context.Context, officeID string) error
	List(ctx context.Context) ([]string, error)
}

// SelectionRepo reads and writes budget discipline selections and the
// office-level default selection new budgets fall back to.
type SelectionRepo interface {
	Get(ctx context.Context, budgetID string) (*BudgetSelection, error)
	Save(ctx context.Context, s *BudgetSelection) error
	Delete(ctx context.Context, budgetID string) error
	ListByOffice(ctx context.Context, officeID string) ([]*BudgetSelection, error)

	GetOfficeDefault(ctx context.Context, officeID string) ([]string, error)
	SaveOfficeDefault(ctx context.Context, officeID string, active []string) error
}
