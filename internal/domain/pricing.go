package domain

import "time"

// DisciplinePricing is one office's pricing entry for a discipline.
type DisciplinePricing struct {
	Active                bool    `json:"active"`
	BaseValue             float64 `json:"base_value"`
	ValuePerArea          float64 `json:"value_per_area"`
	HourlyRate            float64 `json:"hourly_rate"`
	EstimatedHours        int     `json:"estimated_hours"`
	DefaultComplexityMult float64 `json:"default_complexity_mult"`
}

// IndirectCosts are the percentages applied multiplicatively over the
// direct discipline subtotal. Marketing, training and insurance are
// optional extras some offices configure; zero means absent.
type IndirectCosts struct {
	MarginPct      float64 `json:"margin_pct"`
	OverheadPct    float64 `json:"overhead_pct"`
	TaxPct         float64 `json:"tax_pct"`
	ContingencyPct float64 `json:"contingency_pct"`
	CommissionPct  float64 `json:"commission_pct"`

	MarketingPct float64 `json:"marketing_pct,omitempty"`
	TrainingPct  float64 `json:"training_pct,omitempty"`
	InsurancePct float64 `json:"insurance_pct,omitempty"`
}

// Percentages returns every configured percentage in a fixed order.
func (c IndirectCosts) Percentages() []float64 {
	return []float64{
		c.MarginPct, c.OverheadPct, c.TaxPct, c.ContingencyPct, c.CommissionPct,
		c.MarketingPct, c.TrainingPct, c.InsurancePct,
	}
}

// CommercialTerms bound discounting and floor the project total.
type CommercialTerms struct {
	MaxDiscountPct          float64 `json:"max_discount_pct"`
	MinimumProjectValue     float64 `json:"minimum_project_value"`
	InstallmentSurchargePct float64 `json:"installment_surcharge_pct"`
}

// PricingTable is an office's source of truth for base prices and
// multipliers. It is owned by office administrators; this engine only
// reads it. A nil *PricingTable means the office never configured one
// (or the fetch failed) and the engine runs in catalog-default mode.
type PricingTable struct {
	OfficeID string `json:"office_id"`

	Disciplines map[string]DisciplinePricing `json:"disciplines"`

	RegionalMultipliers   map[string]float64 `json:"regional_multipliers,omitempty"`
	StandardMultipliers   map[string]float64 `json:"standard_multipliers,omitempty"`
	ComplexityMultipliers map[string]float64 `json:"complexity_multipliers,omitempty"`

	Indirect   IndirectCosts   `json:"indirect_costs"`
	Commercial CommercialTerms `json:"commercial"`

	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DisciplineEntry returns the pricing entry for code, if present.
func (t *PricingTable) DisciplineEntry(code string) (DisciplinePricing, bool) {
	if t == nil || t.Disciplines == nil {
		return DisciplinePricing{}, false
	}
	p, ok := t.Disciplines[code]
	return p, ok
}
