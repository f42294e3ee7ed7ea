package engine

import (
	"log/slog"
	"math"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/domain"
)

// phaseSpec is one entry of the fixed delivery phase template. Duration
// and value percentages each sum to 1 across the template.
type phaseSpec struct {
	id          domain.PhaseID
	name        string
	durationPct float64
	valuePct    float64
	role        string
}

var phaseTemplate = []phaseSpec{
	{domain.PhasePreliminaryStudy, "Preliminary Study", 0.15, 0.10, "Lead Architect"},
	{domain.PhaseConceptualDesign, "Conceptual Design", 0.20, 0.20, "Lead Architect"},
	{domain.PhaseExecutiveDesign, "Executive Design", 0.30, 0.40, "Project Coordinator"},
	{domain.PhaseDetailing, "Detailing", 0.20, 0.20, "Technical Team"},
	{domain.PhaseApproval, "Approval", 0.15, 0.10, "Lead Architect"},
}

const (
	// areaPerWeek converts built area into production weeks.
	areaPerWeek = 40.0
	// baseWeeks is the fixed overhead every project carries regardless of size.
	baseWeeks = 6
)

// scheduleComplexityMult scales total duration by project complexity.
// Deliberately separate from the pricing complexity multipliers: a
// complex project gets slower before it gets more expensive.
var scheduleComplexityMult = map[string]float64{
	"low":       0.9,
	"medium":    1.0,
	"high":      1.25,
	"very_high": 1.5,
}

// fastTrackFactor compresses the timeline for fast-track projects.
const fastTrackFactor = 0.75

// BuildSchedule maps the active discipline set onto the fixed phase
// template. Pure apart from logging: identical inputs produce an
// identical schedule.
//
// Malformed parameters never propagate; the builder degrades to a
// base-weeks-only schedule and logs the fallback.
func BuildSchedule(cat *catalog.Catalog, active []domain.Discipline, params domain.ProjectParams, total float64, logger *slog.Logger) []domain.Phase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	totalWeeks, ok := totalDurationWeeks(params)
	if !ok {
		logger.Warn("schedule duration fallback",
			"reason", "malformed project parameters",
			"area", params.Area,
			"base_weeks", baseWeeks)
		totalWeeks = baseWeeks
	}

	phases := make([]domain.Phase, 0, len(phaseTemplate))
	startWeek := 0
	for i, spec := range phaseTemplate {
		duration := int(math.Ceil(totalWeeks * spec.durationPct))
		if duration < 1 {
			duration = 1
		}

		deliverables, involved := phaseDeliverables(cat, active, spec.id)

		phases = append(phases, domain.Phase{
			Order:           i + 1,
			Name:            spec.name,
			StartWeek:       startWeek,
			DurationWeeks:   duration,
			Value:           domain.RoundCents(total * spec.valuePct),
			PercentOfTotal:  spec.valuePct * 100,
			ResponsibleRole: spec.role,
			Deliverables:    deliverables,
			Disciplines:     involved,
		})
		startWeek += duration
	}
	return phases
}

// totalDurationWeeks computes the scaled project duration. ok is false
// when the parameters cannot produce a meaningful duration.
func totalDurationWeeks(params domain.ProjectParams) (float64, bool) {
	if params.Area <= 0 || math.IsNaN(params.Area) || math.IsInf(params.Area, 0) {
		return 0, false
	}

	weeks := math.Ceil(params.Area/areaPerWeek) + baseWeeks
	weeks *= domain.MultiplierOrNeutral(scheduleComplexityMult, params.Complexity)
	if params.Urgency == domain.UrgencyFastTrack {
		weeks *= fastTrackFactor
	}
	return weeks, true
}

// phaseDeliverables unions the deliverables every active discipline owns
// for the phase, de-duplicated, in catalog display order. A phase must
// never render empty while any discipline is active, so phases nobody
// contributes to fall back to the essential discipline's generic list.
func phaseDeliverables(cat *catalog.Catalog, active []domain.Discipline, phase domain.PhaseID) (deliverables []string, involved []string) {
	seen := make(map[string]bool)
	for _, d := range active {
		owned := cat.Deliverables(d.Code, phase)
		if len(owned) == 0 {
			continue
		}
		involved = append(involved, d.Code)
		for _, item := range owned {
			if !seen[item] {
				seen[item] = true
				deliverables = append(deliverables, item)
			}
		}
	}

	if len(deliverables) == 0 && len(active) > 0 {
		for _, code := range cat.EssentialCodes() {
			for _, item := range cat.Deliverables(code, phase) {
				if !seen[item] {
					seen[item] = true
					deliverables = append(deliverables, item)
				}
			}
			if len(deliverables) > 0 {
				involved = append(involved, code)
				break
			}
		}
	}
	return deliverables, involved
}
