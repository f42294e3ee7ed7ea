package catalog

import (
	"testing"

	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()

	arch, ok := c.Get("ARCHITECTURE")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryEssential, arch.Category)
	assert.Empty(t, arch.Dependencies)

	assert.Equal(t, []string{"ARCHITECTURE"}, c.EssentialCodes())
}

func TestDefaultCatalogOrdering(t *testing.T) {
	all := Default().All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].DisplayOrder, all[i].DisplayOrder,
			"disciplines must come out sorted by display order")
	}
	assert.Equal(t, "ARCHITECTURE", all[0].Code)
}

func TestNewRejectsDuplicateCodes(t *testing.T) {
	_, err := New([]domain.Discipline{
		{Code: "A", Name: "First"},
		{Code: "A", Name: "Second"},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRejectsUnknownDependency(t *testing.T) {
	_, err := New([]domain.Discipline{
		{Code: "A", Dependencies: []string{"MISSING"}},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown code")
}

func TestDeliverablesLookup(t *testing.T) {
	c := Default()

	det := c.Deliverables("STRUCTURAL", domain.PhaseDetailing)
	assert.Contains(t, det, "Structural details")

	// Discipline with no deliverables for a phase returns nil.
	assert.Nil(t, c.Deliverables("HVAC", domain.PhasePreliminaryStudy))
	assert.Nil(t, c.Deliverables("UNKNOWN", domain.PhaseDetailing))
}

func TestEveryPhaseCoveredByArchitecture(t *testing.T) {
	// The essential discipline backs the fallback for empty phases, so it
	// must own deliverables for all five phases.
	c := Default()
	phases := []domain.PhaseID{
		domain.PhasePreliminaryStudy,
		domain.PhaseConceptualDesign,
		domain.PhaseExecutiveDesign,
		domain.PhaseDetailing,
		domain.PhaseApproval,
	}
	for _, ph := range phases {
		assert.NotEmpty(t, c.Deliverables("ARCHITECTURE", ph), "phase %s", ph)
	}
}
