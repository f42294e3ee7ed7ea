package engine

import (
	"testing"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *domain.PricingTable {
	return &domain.PricingTable{
		OfficeID: "office-1",
		Disciplines: map[string]domain.DisciplinePricing{
			"ARCHITECTURE": {Active: true, ValuePerArea: 75},
			"STRUCTURAL":   {Active: true, BaseValue: 8000},
			"ELECTRICAL":   {Active: false, BaseValue: 5000},
		},
		RegionalMultipliers:   map[string]float64{"capital": 1.2},
		StandardMultipliers:   map[string]float64{"high": 1.3},
		ComplexityMultipliers: map[string]float64{"high": 1.5},
		Indirect: domain.IndirectCosts{
			MarginPct: 20, OverheadPct: 10, TaxPct: 8, ContingencyPct: 5, CommissionPct: 3,
		},
		Commercial: domain.CommercialTerms{
			MaxDiscountPct:          10,
			MinimumProjectValue:     5000,
			InstallmentSurchargePct: 6,
		},
	}
}

func mustGet(t *testing.T, code string) domain.Discipline {
	t.Helper()
	d, ok := catalog.Default().Get(code)
	require.True(t, ok, "catalog is missing %s", code)
	return d
}

func TestResolvePrice_ValuePerAreaWins(t *testing.T) {
	params := domain.ProjectParams{Area: 200}

	r := ResolvePrice(testTable(), mustGet(t, "ARCHITECTURE"), domain.DisciplineConfig{}, params)

	assert.Equal(t, 15000.0, r.BaseAmount, "75/m2 x 200m2")
	assert.Equal(t, domain.SourceOfficeArea, r.Source)
}

func TestResolvePrice_FlatBaseValue(t *testing.T) {
	r := ResolvePrice(testTable(), mustGet(t, "STRUCTURAL"), domain.DisciplineConfig{}, domain.ProjectParams{Area: 200})

	assert.Equal(t, 8000.0, r.BaseAmount)
	assert.Equal(t, domain.SourceOfficeTable, r.Source)
}

func TestResolvePrice_MissingTableDegradesToCatalog(t *testing.T) {
	arch := mustGet(t, "ARCHITECTURE")

	r := ResolvePrice(nil, arch, domain.DisciplineConfig{}, domain.ProjectParams{Area: 200})

	assert.Equal(t, arch.BaseValue, r.BaseAmount)
	assert.Equal(t, domain.SourceCatalogDefault, r.Source)
	assert.Equal(t, 1.0, r.RegionalMult)
	assert.Equal(t, 1.0, r.StandardMult)
	assert.Equal(t, 1.0, r.ComplexityMult)
}

func TestResolvePrice_InactiveEntryFallsToCategoryFloor(t *testing.T) {
	// Table exists but the entry is switched off: the catalog default is
	// NOT consulted (that mode is reserved for a missing table); the
	// category floor keeps the line visible.
	r := ResolvePrice(testTable(), mustGet(t, "ELECTRICAL"), domain.DisciplineConfig{}, domain.ProjectParams{Area: 200})

	assert.Equal(t, 3000.0, r.BaseAmount, "specialized category floor")
	assert.Equal(t, domain.SourceCategoryFloor, r.Source)
}

func TestResolvePrice_AbsentEntryFallsToCategoryFloor(t *testing.T) {
	r := ResolvePrice(testTable(), mustGet(t, "INTERIORS"), domain.DisciplineConfig{}, domain.ProjectParams{Area: 200})

	assert.Equal(t, 1500.0, r.BaseAmount, "complementary category floor")
	assert.Equal(t, domain.SourceCategoryFloor, r.Source)
}

func TestResolvePrice_BudgetOverrideWinsOverTable(t *testing.T) {
	cfg := domain.DisciplineConfig{ValueOverride: domain.Float64Ptr(22000)}

	r := ResolvePrice(testTable(), mustGet(t, "ARCHITECTURE"), cfg, domain.ProjectParams{Area: 200})

	assert.Equal(t, 22000.0, r.BaseAmount)
	assert.Equal(t, domain.SourceBudgetOverride, r.Source)
}

func TestResolvePrice_MultiplierLookup(t *testing.T) {
	params := domain.ProjectParams{Area: 100, Region: "capital", Standard: "high", Complexity: "high"}

	r := ResolvePrice(testTable(), mustGet(t, "STRUCTURAL"), domain.DisciplineConfig{}, params)

	assert.Equal(t, 1.2, r.RegionalMult)
	assert.Equal(t, 1.3, r.StandardMult)
	assert.Equal(t, 1.5, r.ComplexityMult)
}

func TestResolvePrice_UnknownMultiplierKeysAreNeutral(t *testing.T) {
	params := domain.ProjectParams{Area: 100, Region: "mars", Standard: "brutalist", Complexity: "impossible"}

	r := ResolvePrice(testTable(), mustGet(t, "STRUCTURAL"), domain.DisciplineConfig{}, params)

	assert.Equal(t, 1.0, r.RegionalMult)
	assert.Equal(t, 1.0, r.StandardMult)
	assert.Equal(t, 1.0, r.ComplexityMult)
}

func TestResolvePrice_ComplexityOverrideChain(t *testing.T) {
	table := testTable()
	table.Disciplines["STRUCTURAL"] = domain.DisciplinePricing{
		Active: true, BaseValue: 8000, DefaultComplexityMult: 1.1,
	}
	structural := mustGet(t, "STRUCTURAL")

	// Budget override wins over everything.
	cfg := domain.DisciplineConfig{ComplexityMultOverride: domain.Float64Ptr(2.0)}
	r := ResolvePrice(table, structural, cfg, domain.ProjectParams{Area: 100, Complexity: "high"})
	assert.Equal(t, 2.0, r.ComplexityMult)

	// Office complexity table next.
	r = ResolvePrice(table, structural, domain.DisciplineConfig{}, domain.ProjectParams{Area: 100, Complexity: "high"})
	assert.Equal(t, 1.5, r.ComplexityMult)

	// Entry default when the complexity code is unknown to the table.
	r = ResolvePrice(table, structural, domain.DisciplineConfig{}, domain.ProjectParams{Area: 100, Complexity: "medium"})
	assert.Equal(t, 1.1, r.ComplexityMult)
}

func TestResolvePrice_ZeroCatalogValueGetsFloor(t *testing.T) {
	free := domain.Discipline{Code: "FREE", Category: domain.CategoryEssential, BaseValue: 0}

	r := ResolvePrice(nil, free, domain.DisciplineConfig{}, domain.ProjectParams{Area: 100})

	assert.Equal(t, 5000.0, r.BaseAmount, "essential category floor")
	assert.Equal(t, domain.SourceCategoryFloor, r.Source)
}
