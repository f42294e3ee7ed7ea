package service

import (
	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/domain"
)

// defaultMultipliers are the starting multiplier tables for a freshly
// initialized office. Offices tune them afterwards; the keys match the
// canonical enum sets.
var (
	defaultRegionalMultipliers = map[string]float64{
		"capital": 1.2, "metropolitan": 1.1, "countryside": 0.9, "coastal": 1.15,
	}
	defaultStandardMultipliers = map[string]float64{
		"economy": 0.85, "standard": 1.0, "high": 1.3, "luxury": 1.6,
	}
	defaultComplexityMultipliers = map[string]float64{
		"low": 0.9, "medium": 1.0, "high": 1.5, "very_high": 1.9,
	}
)

// defaultTableFromCatalog seeds an office pricing table from catalog
// defaults: every discipline active at its catalog base value, standard
// multiplier tables and conservative indirect costs.
func defaultTableFromCatalog(cat *catalog.Catalog, officeID string) *domain.PricingTable {
	disciplines := make(map[string]domain.DisciplinePricing)
	for _, d := range cat.All() {
		disciplines[d.Code] = domain.DisciplinePricing{
			Active:         true,
			BaseValue:      d.BaseValue,
			EstimatedHours: d.BaseHours,
		}
	}

	return &domain.PricingTable{
		OfficeID:              officeID,
		Disciplines:           disciplines,
		RegionalMultipliers:   cloneMultipliers(defaultRegionalMultipliers),
		StandardMultipliers:   cloneMultipliers(defaultStandardMultipliers),
		ComplexityMultipliers: cloneMultipliers(defaultComplexityMultipliers),
		Indirect: domain.IndirectCosts{
			MarginPct:      20,
			OverheadPct:    10,
			TaxPct:         8,
			ContingencyPct: 5,
			CommissionPct:  3,
		},
		Commercial: domain.CommercialTerms{
			MaxDiscountPct:          10,
			MinimumProjectValue:     5000,
			InstallmentSurchargePct: 6,
		},
	}
}

func cloneMultipliers(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
