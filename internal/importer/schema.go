// Package importer loads office pricing tables from JSON files,
// validates them exhaustively and converts them into domain values.
// Validation collects every problem instead of stopping at the first,
// so an administrator fixes a bad file in one round trip.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PricingSchema is the top-level JSON structure of a pricing table file.
type PricingSchema struct {
	OfficeID    string                      `json:"office_id"`
	Disciplines map[string]DisciplineImport `json:"disciplines"`
	Multipliers *MultipliersImport          `json:"multipliers,omitempty"`
	Indirect    IndirectImport              `json:"indirect_costs"`
	Commercial  CommercialImport            `json:"commercial"`
}

// DisciplineImport defines one discipline's pricing entry in the file.
// Base value and value-per-area are both optional; an entry with
// neither resolves to the category floor at calculation time.
type DisciplineImport struct {
	Active                bool    `json:"active"`
	BaseValue             float64 `json:"base_value,omitempty"`
	ValuePerArea          float64 `json:"value_per_area,omitempty"`
	HourlyRate            float64 `json:"hourly_rate,omitempty"`
	EstimatedHours        int     `json:"estimated_hours,omitempty"`
	DefaultComplexityMult float64 `json:"default_complexity_mult,omitempty"`
}

// MultipliersImport groups the three multiplier tables. Missing tables
// resolve to neutral multipliers downstream.
type MultipliersImport struct {
	Regional   map[string]float64 `json:"regional,omitempty"`
	Standard   map[string]float64 `json:"standard,omitempty"`
	Complexity map[string]float64 `json:"complexity,omitempty"`
}

// IndirectImport defines the indirect cost percentages.
type IndirectImport struct {
	MarginPct      float64 `json:"margin_pct"`
	OverheadPct    float64 `json:"overhead_pct"`
	TaxPct         float64 `json:"tax_pct"`
	ContingencyPct float64 `json:"contingency_pct"`
	CommissionPct  float64 `json:"commission_pct"`
	MarketingPct   float64 `json:"marketing_pct,omitempty"`
	TrainingPct    float64 `json:"training_pct,omitempty"`
	InsurancePct   float64 `json:"insurance_pct,omitempty"`
}

// CommercialImport defines the commercial terms.
type CommercialImport struct {
	MaxDiscountPct          float64 `json:"max_discount_pct"`
	MinimumProjectValue     float64 `json:"minimum_project_value"`
	InstallmentSurchargePct float64 `json:"installment_surcharge_pct"`
}

// LoadPricingSchema reads and parses a pricing table JSON file.
func LoadPricingSchema(path string) (*PricingSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema PricingSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing pricing file: %w", err)
	}
	return &schema, nil
}
