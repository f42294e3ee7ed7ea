package domain

type DisciplineCategory string

const (
	CategoryEssential     DisciplineCategory = "essential"
	CategorySpecialized   DisciplineCategory = "specialized"
	CategoryComplementary DisciplineCategory = "complementary"
)

// PriceSource records which configuration source produced a resolved
// price, so degraded-mode lines are distinguishable in the breakdown.
type PriceSource string

const (
	// SourceBudgetOverride: per-budget personalized value from the discipline config.
	SourceBudgetOverride PriceSource = "budget_override"
	// SourceOfficeTable: office pricing table entry, flat base value.
	SourceOfficeTable PriceSource = "office_table"
	// SourceOfficeArea: office pricing table entry, value-per-area times project area.
	SourceOfficeArea PriceSource = "office_area"
	// SourceCatalogDefault: no office table available, catalog base value used.
	SourceCatalogDefault PriceSource = "catalog_default"
	// SourceCategoryFloor: resolved amount was zero, category minimum applied.
	SourceCategoryFloor PriceSource = "category_floor"
)

type PaymentPlan string

const (
	PaymentCash        PaymentPlan = "cash"
	PaymentFiftyFifty  PaymentPlan = "50_50"
	PaymentInstallment PaymentPlan = "installments"
)

type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyFastTrack Urgency = "fast_track"
)

// PhaseID identifies one of the fixed delivery phases.
type PhaseID string

const (
	PhasePreliminaryStudy PhaseID = "preliminary_study"
	PhaseConceptualDesign PhaseID = "conceptual_design"
	PhaseExecutiveDesign  PhaseID = "executive_design"
	PhaseDetailing        PhaseID = "detailing"
	PhaseApproval         PhaseID = "approval"
)

// ValidRegions is the canonical set of accepted region codes. Unknown
// regions are not an error anywhere in the engine; multipliers default
// to neutral. The set exists for CLI input hints only.
var ValidRegions = map[string]bool{
	"capital": true, "metropolitan": true, "countryside": true, "coastal": true,
}

// ValidStandards is the canonical set of construction standard codes.
var ValidStandards = map[string]bool{
	"economy": true, "standard": true, "high": true, "luxury": true,
}

// ValidComplexities is the canonical set of complexity codes.
var ValidComplexities = map[string]bool{
	"low": true, "medium": true, "high": true, "very_high": true,
}
