package importer

import "github.com/felipearaujo/orcato/internal/domain"

// Convert turns a validated pricing schema into a domain pricing table.
// Call ValidatePricingSchema first; Convert assumes a clean schema.
func Convert(schema *PricingSchema) *domain.PricingTable {
	table := &domain.PricingTable{
		OfficeID:    schema.OfficeID,
		Disciplines: make(map[string]domain.DisciplinePricing, len(schema.Disciplines)),
		Indirect: domain.IndirectCosts{
			MarginPct:      schema.Indirect.MarginPct,
			OverheadPct:    schema.Indirect.OverheadPct,
			TaxPct:         schema.Indirect.TaxPct,
			ContingencyPct: schema.Indirect.ContingencyPct,
			CommissionPct:  schema.Indirect.CommissionPct,
			MarketingPct:   schema.Indirect.MarketingPct,
			TrainingPct:    schema.Indirect.TrainingPct,
			InsurancePct:   schema.Indirect.InsurancePct,
		},
		Commercial: domain.CommercialTerms{
			MaxDiscountPct:          schema.Commercial.MaxDiscountPct,
			MinimumProjectValue:     schema.Commercial.MinimumProjectValue,
			InstallmentSurchargePct: schema.Commercial.InstallmentSurchargePct,
		},
	}

	for code, e := range schema.Disciplines {
		table.Disciplines[code] = domain.DisciplinePricing{
			Active:                e.Active,
			BaseValue:             e.BaseValue,
			ValuePerArea:          e.ValuePerArea,
			HourlyRate:            e.HourlyRate,
			EstimatedHours:        e.EstimatedHours,
			DefaultComplexityMult: e.DefaultComplexityMult,
		}
	}

	if m := schema.Multipliers; m != nil {
		table.RegionalMultipliers = m.Regional
		table.StandardMultipliers = m.Standard
		table.ComplexityMultipliers = m.Complexity
	}

	return table
}

// Export maps a domain pricing table back onto the file schema, so an
// exported file round-trips through LoadPricingSchema unchanged.
func Export(table *domain.PricingTable) *PricingSchema {
	schema := &PricingSchema{
		OfficeID:    table.OfficeID,
		Disciplines: make(map[string]DisciplineImport, len(table.Disciplines)),
		Indirect: IndirectImport{
			MarginPct:      table.Indirect.MarginPct,
			OverheadPct:    table.Indirect.OverheadPct,
			TaxPct:         table.Indirect.TaxPct,
			ContingencyPct: table.Indirect.ContingencyPct,
			CommissionPct:  table.Indirect.CommissionPct,
			MarketingPct:   table.Indirect.MarketingPct,
			TrainingPct:    table.Indirect.TrainingPct,
			InsurancePct:   table.Indirect.InsurancePct,
		},
		Commercial: CommercialImport{
			MaxDiscountPct:          table.Commercial.MaxDiscountPct,
			MinimumProjectValue:     table.Commercial.MinimumProjectValue,
			InstallmentSurchargePct: table.Commercial.InstallmentSurchargePct,
		},
	}

	for code, e := range table.Disciplines {
		schema.Disciplines[code] = DisciplineImport{
			Active:                e.Active,
			BaseValue:             e.BaseValue,
			ValuePerArea:          e.ValuePerArea,
			HourlyRate:            e.HourlyRate,
			EstimatedHours:        e.EstimatedHours,
			DefaultComplexityMult: e.DefaultComplexityMult,
		}
	}

	if len(table.RegionalMultipliers) > 0 || len(table.StandardMultipliers) > 0 || len(table.ComplexityMultipliers) > 0 {
		schema.Multipliers = &MultipliersImport{
			Regional:   table.RegionalMultipliers,
			Standard:   table.StandardMultipliers,
			Complexity: table.ComplexityMultipliers,
		}
	}

	return schema
}
