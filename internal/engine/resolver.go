package engine

import "github.com/felipearaujo/orcato/internal/domain"

// categoryFloors are the safety-net minimums applied when a discipline
// resolves to exactly zero. A zero-priced line would silently vanish
// from the breakdown; the floor keeps it visible and auditable through
// the Source tag.
var categoryFloors = map[domain.DisciplineCategory]float64{
	domain.CategoryEssential:     5000,
	domain.CategorySpecialized:   3000,
	domain.CategoryComplementary: 1500,
}

// ResolvePrice resolves the effective base amount and multipliers for one
// discipline. Precedence for the base amount, first applicable wins:
//
//  1. Per-budget value override from the discipline config.
//  2. Office pricing table entry marked active: value-per-area times the
//     project area when configured, flat base value otherwise.
//  3. Catalog default, only when the office has no pricing table at all.
//  4. Category floor, only when steps 1-3 resolved to exactly zero.
//
// It never fails: unknown region/standard/complexity codes resolve to
// neutral multipliers, and a missing table degrades to catalog defaults.
func ResolvePrice(table *domain.PricingTable, d domain.Discipline, cfg domain.DisciplineConfig, params domain.ProjectParams) domain.ResolvedPrice {
	amount, source := resolveBaseAmount(table, d, cfg, params)

	if amount == 0 {
		amount = categoryFloors[d.Category]
		source = domain.SourceCategoryFloor
	}

	return domain.ResolvedPrice{
		BaseAmount:     amount,
		RegionalMult:   regionalMultiplier(table, params.Region),
		StandardMult:   standardMultiplier(table, params.Standard),
		ComplexityMult: complexityMultiplier(table, d, cfg, params.Complexity),
		Source:         source,
	}
}

func resolveBaseAmount(table *domain.PricingTable, d domain.Discipline, cfg domain.DisciplineConfig, params domain.ProjectParams) (float64, domain.PriceSource) {
	if cfg.ValueOverride != nil && *cfg.ValueOverride > 0 {
		return *cfg.ValueOverride, domain.SourceBudgetOverride
	}

	if table == nil {
		// Degraded mode: the office never configured pricing or the fetch
		// failed. Distinct source tag so it never passes for a configured
		// table in the breakdown.
		return d.BaseValue, domain.SourceCatalogDefault
	}

	entry, ok := table.DisciplineEntry(d.Code)
	if !ok || !entry.Active {
		return 0, domain.SourceCategoryFloor
	}
	if entry.ValuePerArea > 0 {
		return entry.ValuePerArea * params.Area, domain.SourceOfficeArea
	}
	return entry.BaseValue, domain.SourceOfficeTable
}

func regionalMultiplier(table *domain.PricingTable, region string) float64 {
	if table == nil {
		return 1
	}
	return domain.MultiplierOrNeutral(table.RegionalMultipliers, region)
}

func standardMultiplier(table *domain.PricingTable, standard string) float64 {
	if table == nil {
		return 1
	}
	return domain.MultiplierOrNeutral(table.StandardMultipliers, standard)
}

// complexityMultiplier resolves: budget override, office complexity
// table, the entry's own default, neutral.
func complexityMultiplier(table *domain.PricingTable, d domain.Discipline, cfg domain.DisciplineConfig, complexity string) float64 {
	if cfg.ComplexityMultOverride != nil && *cfg.ComplexityMultOverride > 0 {
		return *cfg.ComplexityMultOverride
	}
	if table == nil {
		return 1
	}
	if m, ok := table.ComplexityMultipliers[complexity]; ok && m > 0 {
		return m
	}
	if entry, ok := table.DisciplineEntry(d.Code); ok && entry.DefaultComplexityMult > 0 {
		return entry.DefaultComplexityMult
	}
	return 1
}
