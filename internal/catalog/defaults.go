package catalog

import "github.com/felipearaujo/orcato/internal/domain"

// Default returns the built-in discipline catalog. Offices can replace
// pricing per discipline through their pricing table; the catalog itself
// (codes, categories, dependencies, deliverables) ships with the product.
func Default() *Catalog {
	c, err := New(defaultDisciplines, defaultDeliverables)
	if err != nil {
		// The built-in catalog is validated by tests; a failure here is
		// a programming error, not runtime input.
		panic(err)
	}
	return c
}

var defaultDisciplines = []domain.Discipline{
	{
		Code:         "ARCHITECTURE",
		Name:         "Architectural Design",
		Category:     domain.CategoryEssential,
		DisplayOrder: 1,
		BaseValue:    18000,
		BaseHours:    240,
	},
	{
		Code:         "STRUCTURAL",
		Name:         "Structural Engineering",
		Category:     domain.CategorySpecialized,
		DisplayOrder: 2,
		BaseValue:    9500,
		BaseHours:    120,
	},
	{
		Code:         "ELECTRICAL",
		Name:         "Electrical Installations",
		Category:     domain.CategorySpecialized,
		DisplayOrder: 3,
		Dependencies: []string{"STRUCTURAL"},
		BaseValue:    6800,
		BaseHours:    90,
	},
	{
		Code:         "HYDRAULIC",
		Name:         "Hydrosanitary Installations",
		Category:     domain.CategorySpecialized,
		DisplayOrder: 4,
		Dependencies: []string{"STRUCTURAL"},
		BaseValue:    6200,
		BaseHours:    85,
	},
	{
		Code:         "HVAC",
		Name:         "Air Conditioning & Ventilation",
		Category:     domain.CategorySpecialized,
		DisplayOrder: 5,
		Dependencies: []string{"ELECTRICAL"},
		BaseValue:    5400,
		BaseHours:    70,
	},
	{
		Code:         "INTERIORS",
		Name:         "Interior Design",
		Category:     domain.CategoryComplementary,
		DisplayOrder: 6,
		BaseValue:    7500,
		BaseHours:    110,
	},
	{
		Code:         "LIGHTING",
		Name:         "Lighting Design",
		Category:     domain.CategoryComplementary,
		DisplayOrder: 7,
		Dependencies: []string{"ELECTRICAL"},
		BaseValue:    3800,
		BaseHours:    50,
	},
	{
		Code:         "LANDSCAPING",
		Name:         "Landscape Design",
		Category:     domain.CategoryComplementary,
		DisplayOrder: 8,
		BaseValue:    4200,
		BaseHours:    60,
	},
	{
		Code:         "ACOUSTICS",
		Name:         "Acoustic Consulting",
		Category:     domain.CategoryComplementary,
		DisplayOrder: 9,
		BaseValue:    3500,
		BaseHours:    45,
	},
}

// defaultDeliverables maps each discipline to the deliverables it owns
// per delivery phase. Phases with no contribution from any active
// discipline fall back to the essential discipline's generic entries.
var defaultDeliverables = DeliverableMatrix{
	"ARCHITECTURE": {
		domain.PhasePreliminaryStudy: {"Site survey report", "Program of needs", "Feasibility study"},
		domain.PhaseConceptualDesign: {"Floor plan studies", "Volumetric model", "Concept presentation"},
		domain.PhaseExecutiveDesign:  {"Executive floor plans", "Sections and elevations", "General specifications"},
		domain.PhaseDetailing:        {"Construction details", "Finishing schedule", "Door and window schedule"},
		domain.PhaseApproval:         {"City hall submission set", "Responsibility statement (ART/RRT)"},
	},
	"STRUCTURAL": {
		domain.PhaseConceptualDesign: {"Structural pre-dimensioning"},
		domain.PhaseExecutiveDesign:  {"Formwork plans", "Reinforcement drawings"},
		domain.PhaseDetailing:        {"Structural details", "Load calculation memorial"},
		domain.PhaseApproval:         {"Structural responsibility statement"},
	},
	"ELECTRICAL": {
		domain.PhaseExecutiveDesign: {"Electrical layout plans", "Single-line diagram"},
		domain.PhaseDetailing:       {"Circuit schedules", "Panel board details"},
		domain.PhaseApproval:        {"Utility company submission"},
	},
	"HYDRAULIC": {
		domain.PhaseExecutiveDesign: {"Water supply plans", "Sewage plans"},
		domain.PhaseDetailing:       {"Isometric drawings", "Fixture schedule"},
		domain.PhaseApproval:        {"Sanitation company submission"},
	},
	"HVAC": {
		domain.PhaseExecutiveDesign: {"Duct layout plans"},
		domain.PhaseDetailing:       {"Equipment schedule", "Thermal load memorial"},
	},
	"INTERIORS": {
		domain.PhaseConceptualDesign: {"Mood boards", "Layout proposals"},
		domain.PhaseExecutiveDesign:  {"Furniture plans"},
		domain.PhaseDetailing:        {"Custom furniture details", "Finishes board"},
	},
	"LIGHTING": {
		domain.PhaseExecutiveDesign: {"Lighting layout plans"},
		domain.PhaseDetailing:       {"Luminaire specification"},
	},
	"LANDSCAPING": {
		domain.PhaseConceptualDesign: {"Landscape concept plan"},
		domain.PhaseExecutiveDesign:  {"Planting plans"},
		domain.PhaseDetailing:        {"Species and irrigation schedule"},
	},
	"ACOUSTICS": {
		domain.PhaseExecutiveDesign: {"Acoustic treatment plans"},
		domain.PhaseDetailing:       {"Insulation specification"},
	},
}
