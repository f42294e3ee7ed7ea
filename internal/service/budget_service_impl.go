package service

import (
	"context"
	"log/slog"

	"github.com/felipearaujo/orcato/internal/budget"
	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/debounce"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/felipearaujo/orcato/internal/repository"
	"github.com/google/uuid"
)

type budgetService struct {
	cat        *catalog.Catalog
	pricing    repository.PricingRepo
	selections repository.SelectionRepo
	saver      *debounce.Debouncer
	logger     *slog.Logger
	observer   UseCaseObserver
}

func NewBudgetService(cat *catalog.Catalog, pricing repository.PricingRepo, selections repository.SelectionRepo, saver *debounce.Debouncer, logger *slog.Logger, observers ...UseCaseObserver) BudgetService {
	return &budgetService{
		cat:        cat,
		pricing:    pricing,
		selections: selections,
		saver:      saver,
		logger:     logger,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *budgetService) Open(ctx context.Context, budgetID, officeID string, params domain.ProjectParams) (*budget.Session, error) {
	if budgetID == "" {
		budgetID = uuid.New().String()
	}

	var session *budget.Session
	err := observe(ctx, s.observer, "budget_open",
		map[string]any{"budget_id": budgetID, "office_id": officeID}, func() error {
			var err error
			session, err = budget.Open(ctx, budget.SessionOptions{
				BudgetID:   budgetID,
				OfficeID:   officeID,
				Catalog:    s.cat,
				Pricing:    s.pricing,
				Selections: s.selections,
				Saver:      s.saver,
				Logger:     s.logger,
				Params:     params,
			})
			return err
		})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *budgetService) List(ctx context.Context, officeID string) ([]*repository.BudgetSelection, error) {
	return s.selections.ListByOffice(ctx, officeID)
}

func (s *budgetService) Delete(ctx context.Context, budgetID string) error {
	return observe(ctx, s.observer, "budget_delete", map[string]any{"budget_id": budgetID}, func() error {
		return s.selections.Delete(ctx, budgetID)
	})
}
