package domain

// Discipline is a catalog entry for one professional scope of work
// (architecture, structural, electrical, ...). Catalog data is immutable
// for the lifetime of a session; budgets only select which disciplines
// are active and override pricing per budget.
type Discipline struct {
	Code         string
	Name         string
	Category     DisciplineCategory
	DisplayOrder int

	// Dependencies lists discipline codes that must be active whenever
	// this discipline is active.
	Dependencies []string

	// Catalog-level pricing defaults, used when an office has no
	// pricing table configured.
	BaseValue float64
	BaseHours int
}

// DisciplineConfig holds per-budget overrides for one discipline.
// Zero-valued (nil pointer) fields fall back to the office pricing
// table, then to catalog defaults.
type DisciplineConfig struct {
	ValueOverride          *float64 `json:"value,omitempty"`
	HourlyRateOverride     *float64 `json:"hourly_rate,omitempty"`
	ComplexityMultOverride *float64 `json:"complexity_mult,omitempty"`
}

// Merge applies the non-nil fields of other on top of c.
func (c DisciplineConfig) Merge(other DisciplineConfig) DisciplineConfig {
	if other.ValueOverride != nil {
		c.ValueOverride = other.ValueOverride
	}
	if other.HourlyRateOverride != nil {
		c.HourlyRateOverride = other.HourlyRateOverride
	}
	if other.ComplexityMultOverride != nil {
		c.ComplexityMultOverride = other.ComplexityMultOverride
	}
	return c
}

// IsZero reports whether no override is set.
func (c DisciplineConfig) IsZero() bool {
	return c.ValueOverride == nil && c.HourlyRateOverride == nil && c.ComplexityMultOverride == nil
}
