package testutil

import "github.com/felipearaujo/orcato/internal/domain"

// OfficePricingFixture returns a fully configured pricing table for the
// given office, aligned with the default catalog's discipline codes.
func OfficePricingFixture(officeID string) *domain.PricingTable {
	return &domain.PricingTable{
		OfficeID: officeID,
		Disciplines: map[string]domain.DisciplinePricing{
			"ARCHITECTURE": {Active: true, ValuePerArea: 75, HourlyRate: 180, EstimatedHours: 240},
			"STRUCTURAL":   {Active: true, BaseValue: 8000, HourlyRate: 160, EstimatedHours: 120},
			"ELECTRICAL":   {Active: true, BaseValue: 5600, HourlyRate: 150, EstimatedHours: 90},
			"HYDRAULIC":    {Active: true, BaseValue: 5200, HourlyRate: 150, EstimatedHours: 85},
			"INTERIORS":    {Active: true, BaseValue: 6400, HourlyRate: 140, EstimatedHours: 110},
		},
		RegionalMultipliers: map[string]float64{
			"capital": 1.2, "metropolitan": 1.1, "countryside": 0.9, "coastal": 1.15,
		},
		StandardMultipliers: map[string]float64{
			"economy": 0.85, "standard": 1.0, "high": 1.3, "luxury": 1.6,
		},
		ComplexityMultipliers: map[string]float64{
			"low": 0.9, "medium": 1.0, "high": 1.5, "very_high": 1.9,
		},
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

// ProjectParamsFixture returns valid project parameters for a mid-size
// residential project.
func ProjectParamsFixture() domain.ProjectParams {
	return domain.ProjectParams{
		Area:        200,
		Region:      "capital",
		Standard:    "standard",
		Complexity:  "medium",
		Urgency:     domain.UrgencyNormal,
		PaymentPlan: domain.PaymentCash,
	}
}
