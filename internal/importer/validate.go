package importer

import "fmt"

// Every percentage field must sit in [0, 100].
const maxPct = 100

// ValidatePricingSchema checks the pricing schema before conversion.
// Returns a slice of all validation errors found.
func ValidatePricingSchema(schema *PricingSchema) []error {
	var errs []error

	if schema.OfficeID == "" {
		errs = append(errs, fmt.Errorf("office_id is required"))
	}
	if len(schema.Disciplines) == 0 {
		errs = append(errs, fmt.Errorf("disciplines must not be empty"))
	}

	errs = append(errs, validateDisciplines(schema.Disciplines)...)
	errs = append(errs, validateMultipliers(schema.Multipliers)...)
	errs = append(errs, validateIndirect(&schema.Indirect)...)
	errs = append(errs, validateCommercial(&schema.Commercial)...)

	return errs
}

func validateDisciplines(entries map[string]DisciplineImport) []error {
	var errs []error

	for code, e := range entries {
		prefix := fmt.Sprintf("disciplines[%s]", code)

		if code == "" {
			errs = append(errs, fmt.Errorf("disciplines: empty discipline code"))
		}
		if e.BaseValue < 0 {
			errs = append(errs, fmt.Errorf("%s.base_value must not be negative", prefix))
		}
		if e.ValuePerArea < 0 {
			errs = append(errs, fmt.Errorf("%s.value_per_area must not be negative", prefix))
		}
		if e.HourlyRate < 0 {
			errs = append(errs, fmt.Errorf("%s.hourly_rate must not be negative", prefix))
		}
		if e.EstimatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_hours must not be negative", prefix))
		}
		if e.DefaultComplexityMult < 0 {
			errs = append(errs, fmt.Errorf("%s.default_complexity_mult must not be negative", prefix))
		}
	}

	return errs
}

func validateMultipliers(m *MultipliersImport) []error {
	if m == nil {
		return nil
	}
	var errs []error

	tables := map[string]map[string]float64{
		"regional": m.Regional, "standard": m.Standard, "complexity": m.Complexity,
	}
	for name, table := range tables {
		for key, mult := range table {
			if mult <= 0 {
				errs = append(errs, fmt.Errorf("multipliers.%s[%s] must be positive, got %.2f", name, key, mult))
			}
		}
	}

	return errs
}

func validateIndirect(in *IndirectImport) []error {
	var errs []error

	fields := map[string]float64{
		"margin_pct":      in.MarginPct,
		"overhead_pct":    in.OverheadPct,
		"tax_pct":         in.TaxPct,
		"contingency_pct": in.ContingencyPct,
		"commission_pct":  in.CommissionPct,
		"marketing_pct":   in.MarketingPct,
		"training_pct":    in.TrainingPct,
		"insurance_pct":   in.InsurancePct,
	}
	for name, pct := range fields {
		if pct < 0 || pct > maxPct {
			errs = append(errs, fmt.Errorf("indirect_costs.%s must be between 0 and 100, got %.2f", name, pct))
		}
	}

	return errs
}

func validateCommercial(c *CommercialImport) []error {
	var errs []error

	if c.MaxDiscountPct < 0 || c.MaxDiscountPct > maxPct {
		errs = append(errs, fmt.Errorf("commercial.max_discount_pct must be between 0 and 100, got %.2f", c.MaxDiscountPct))
	}
	if c.MinimumProjectValue < 0 {
		errs = append(errs, fmt.Errorf("commercial.minimum_project_value must not be negative"))
	}
	if c.InstallmentSurchargePct < 0 || c.InstallmentSurchargePct > maxPct {
		errs = append(errs, fmt.Errorf("commercial.installment_surcharge_pct must be between 0 and 100, got %.2f", c.InstallmentSurchargePct))
	}

	return errs
}
