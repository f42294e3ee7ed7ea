package domain

import "math"

// ResolvedPrice is the output of pricing resolution for one discipline,
// before line aggregation.
type ResolvedPrice struct {
	BaseAmount     float64
	RegionalMult   float64
	StandardMult   float64
	ComplexityMult float64
	Source         PriceSource
}

// PriceLine is one discipline's row in the budget breakdown. Total
// carries the proportionally distributed indirect costs.
type PriceLine struct {
	Base   float64
	Total  float64
	Source PriceSource
}

// Phase is one step of the delivery schedule, derived entirely from the
// active discipline set and project parameters at computation time.
type Phase struct {
	Order           int
	Name            string
	StartWeek       int
	DurationWeeks   int
	Value           float64
	PercentOfTotal  float64
	ResponsibleRole string
	Deliverables    []string
	Disciplines     []string
}

// CalculationResult is the full derived output for one budget. It is
// recomputed from scratch on every mutation and never patched
// incrementally, so the breakdown and schedule cannot drift apart.
type CalculationResult struct {
	Subtotal          float64
	IndirectCostTotal float64
	Total             float64
	Lines             map[string]PriceLine
	Schedule          []Phase
}

// LineSum returns the sum of all line totals. It may differ from Total
// by up to one cent per line because lines are rounded independently.
func (r CalculationResult) LineSum() float64 {
	var sum float64
	for _, l := range r.Lines {
		sum += l.Total
	}
	return sum
}

// RoundCents rounds a monetary amount to currency minor units.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
