package engine

import "github.com/felipearaujo/orcato/internal/domain"

// Aggregate computes the full budget breakdown for the active
// disciplines. It is a pure function of its inputs: identical inputs
// produce an identical result.
//
// Indirect costs are distributed proportionally back onto each line
// (line total = line base x indirect multiplier), with each line rounded
// to cents independently. The sum of lines may therefore differ from
// Total by up to one cent per line; that tolerance is accepted rather
// than forcing the last line to absorb the remainder.
func Aggregate(active []domain.Discipline, configs map[string]domain.DisciplineConfig, params domain.ProjectParams, table *domain.PricingTable) domain.CalculationResult {
	params = params.Normalized()

	lines := make(map[string]domain.PriceLine, len(active))
	var subtotal float64
	for _, d := range active {
		resolved := ResolvePrice(table, d, configs[d.Code], params)
		base := resolved.BaseAmount * resolved.RegionalMult * resolved.StandardMult * resolved.ComplexityMult
		lines[d.Code] = domain.PriceLine{
			Base:   domain.RoundCents(base),
			Source: resolved.Source,
		}
		subtotal += base
	}
	subtotal = domain.RoundCents(subtotal)

	indirectMult := indirectMultiplier(table)
	total := subtotal * indirectMult

	for code, line := range lines {
		line.Total = domain.RoundCents(line.Base * indirectMult)
		lines[code] = line
	}

	if table != nil && total < table.Commercial.MinimumProjectValue {
		total = table.Commercial.MinimumProjectValue
	}
	total = applyCommercialTerms(total, params, table)
	total = domain.RoundCents(total)

	return domain.CalculationResult{
		Subtotal:          subtotal,
		IndirectCostTotal: domain.RoundCents(subtotal * (indirectMult - 1)),
		Total:             total,
		Lines:             lines,
	}
}

// indirectMultiplier compounds every configured indirect cost
// percentage. A missing table compounds nothing and returns 1.
func indirectMultiplier(table *domain.PricingTable) float64 {
	if table == nil {
		return 1
	}
	mult := 1.0
	for _, pct := range table.Indirect.Percentages() {
		if pct > 0 {
			mult *= 1 + pct/100
		}
	}
	return mult
}

// applyCommercialTerms applies the discount and financing pass to the
// total only; per-line breakdowns never reflect discounts.
func applyCommercialTerms(total float64, params domain.ProjectParams, table *domain.PricingTable) float64 {
	if table == nil {
		return total
	}

	discount := params.DiscountPct
	if discount > table.Commercial.MaxDiscountPct {
		discount = table.Commercial.MaxDiscountPct
	}
	if discount > 0 {
		total *= 1 - discount/100
	}

	// Installment plans carry the financing surcharge; cash and 50/50 do not.
	if params.PaymentPlan == domain.PaymentInstallment && table.Commercial.InstallmentSurchargePct > 0 {
		total *= 1 + table.Commercial.InstallmentSurchargePct/100
	}

	return total
}
