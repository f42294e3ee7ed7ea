package formatter

import (
	"testing"

	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() contract.BudgetSnapshot {
	return contract.BudgetSnapshot{
		BudgetID: "budget-1",
		OfficeID: "office-1",
		Params: domain.ProjectParams{
			Area: 200, Region: "capital", Standard: "standard", Complexity: "medium",
			Urgency: domain.UrgencyNormal, PaymentPlan: domain.PaymentCash,
		},
		Active: []domain.Discipline{
			{Code: "ARCHITECTURE", Name: "Architecture", Category: domain.CategoryEssential},
			{Code: "STRUCTURAL", Name: "Structural Engineering", Category: domain.CategorySpecialized},
		},
		Result: domain.CalculationResult{
			Subtotal:          27600,
			IndirectCostTotal: 11953.3,
			Total:             39553.3,
			Lines: map[string]domain.PriceLine{
				"ARCHITECTURE": {Base: 18000, Total: 27752.16, Source: domain.SourceOfficeArea},
				"STRUCTURAL":   {Base: 9600, Total: 14801.15, Source: domain.SourceOfficeTable},
			},
		},
	}
}

func TestFormatBudget(t *testing.T) {
	out := FormatBudget(sampleSnapshot())

	assert.Contains(t, out, "BUDGET BUDGET-1")
	assert.Contains(t, out, "Architecture")
	assert.Contains(t, out, "Structural Engineering")
	assert.Contains(t, out, "R$ 18.000,00")
	assert.Contains(t, out, "R$ 39.553,30")
	assert.Contains(t, out, "200m²")
	assert.NotContains(t, out, "catalog defaults")
}

func TestFormatBudgetDegraded(t *testing.T) {
	snap := sampleSnapshot()
	snap.Degraded = true

	out := FormatBudget(snap)
	assert.Contains(t, out, "catalog defaults")
}

func TestFormatBudgetShowsDiscount(t *testing.T) {
	snap := sampleSnapshot()
	snap.Params.DiscountPct = 7.5

	out := FormatBudget(snap)
	assert.Contains(t, out, "Discount:")
	assert.Contains(t, out, "7,5%")
}

func TestFormatDisciplineList(t *testing.T) {
	all := []domain.Discipline{
		{Code: "ARCHITECTURE", Name: "Architecture", Category: domain.CategoryEssential},
		{Code: "HVAC", Name: "HVAC", Category: domain.CategorySpecialized, Dependencies: []string{"ELECTRICAL"}},
	}
	active := map[string]bool{"ARCHITECTURE": true}

	out := FormatDisciplineList(all, func(code string) bool { return active[code] })

	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "ELECTRICAL")
}
