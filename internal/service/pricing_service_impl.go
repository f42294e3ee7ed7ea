package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/felipearaujo/orcato/internal/importer"
	"github.com/felipearaujo/orcato/internal/repository"
)

type pricingService struct {
	pricing    repository.PricingRepo
	selections repository.SelectionRepo
	cat        *catalog.Catalog
	observer   UseCaseObserver
}

func NewPricingService(pricing repository.PricingRepo, selections repository.SelectionRepo, cat *catalog.Catalog, observers ...UseCaseObserver) PricingService {
	return &pricingService{
		pricing:    pricing,
		selections: selections,
		cat:        cat,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *pricingService) Get(ctx context.Context, officeID string) (*domain.PricingTable, error) {
	return s.pricing.Get(ctx, officeID)
}

func (s *pricingService) Save(ctx context.Context, table *domain.PricingTable) error {
	return observe(ctx, s.observer, "pricing_save", map[string]any{"office_id": table.OfficeID}, func() error {
		if errs := importer.ValidatePricingSchema(importer.Export(table)); len(errs) > 0 {
			return formatValidationErrors(errs)
		}
		return s.pricing.Save(ctx, table)
	})
}

func (s *pricingService) Delete(ctx context.Context, officeID string) error {
	return observe(ctx, s.observer, "pricing_delete", map[string]any{"office_id": officeID}, func() error {
		return s.pricing.Delete(ctx, officeID)
	})
}

func (s *pricingService) List(ctx context.Context) ([]string, error) {
	return s.pricing.List(ctx)
}

func (s *pricingService) InitDefaults(ctx context.Context, officeID string) (*domain.PricingTable, error) {
	if officeID == "" {
		return nil, errors.New("office id is required")
	}

	_, err := s.pricing.Get(ctx, officeID)
	if err == nil {
		return nil, fmt.Errorf("office %s already has a pricing table", officeID)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	table := defaultTableFromCatalog(s.cat, officeID)
	err = observe(ctx, s.observer, "pricing_init", map[string]any{"office_id": officeID}, func() error {
		return s.pricing.Save(ctx, table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *pricingService) SetDiscipline(ctx context.Context, officeID, code string, entry domain.DisciplinePricing) error {
	if _, ok := s.cat.Get(code); !ok {
		return fmt.Errorf("unknown discipline: %s", code)
	}
	if entry.BaseValue < 0 || entry.ValuePerArea < 0 || entry.HourlyRate < 0 {
		return errors.New("pricing values must not be negative")
	}

	return observe(ctx, s.observer, "pricing_set_discipline",
		map[string]any{"office_id": officeID, "discipline": code}, func() error {
			table, err := s.pricing.Get(ctx, officeID)
			if err != nil {
				return err
			}
			if table.Disciplines == nil {
				table.Disciplines = make(map[string]domain.DisciplinePricing)
			}
			table.Disciplines[code] = entry
			return s.pricing.Save(ctx, table)
		})
}

func (s *pricingService) SetDefaultSelection(ctx context.Context, officeID string, active []string) error {
	for _, code := range active {
		if _, ok := s.cat.Get(code); !ok {
			return fmt.Errorf("unknown discipline: %s", code)
		}
	}
	return s.selections.SaveOfficeDefault(ctx, officeID, active)
}

func (s *pricingService) GetDefaultSelection(ctx context.Context, officeID string) ([]string, error) {
	return s.selections.GetOfficeDefault(ctx, officeID)
}

func (s *pricingService) ImportFile(ctx context.Context, path string) (*domain.PricingTable, error) {
	schema, err := importer.LoadPricingSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading pricing file: %w", err)
	}
	if errs := importer.ValidatePricingSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	table := importer.Convert(schema)
	err = observe(ctx, s.observer, "pricing_import",
		map[string]any{"office_id": table.OfficeID, "path": path}, func() error {
			return s.pricing.Save(ctx, table)
		})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *pricingService) ExportFile(ctx context.Context, officeID, path string) error {
	table, err := s.pricing.Get(ctx, officeID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(importer.Export(table), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pricing table: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("pricing validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
