package engine

import (
	"errors"
	"testing"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T, initial ...string) *Graph {
	t.Helper()
	return NewGraph(catalog.Default(), initial)
}

func toggleErr(t *testing.T, err error) *contract.ToggleError {
	t.Helper()
	var te *contract.ToggleError
	require.True(t, errors.As(err, &te), "expected *contract.ToggleError, got %v", err)
	return te
}

func TestNewGraphActivatesEssentials(t *testing.T) {
	g := newTestGraph(t)

	assert.True(t, g.IsActive("ARCHITECTURE"))
	assert.Equal(t, []string{"ARCHITECTURE"}, g.ActiveCodes())
}

func TestToggleActivateStandalone(t *testing.T) {
	g := newTestGraph(t)

	res, err := g.Toggle("STRUCTURAL")
	require.NoError(t, err)

	assert.Equal(t, []string{"STRUCTURAL"}, res.Activated)
	assert.Empty(t, res.Deactivated)
	assert.True(t, g.IsActive("STRUCTURAL"))
}

func TestToggleDeactivateEssentialRejected(t *testing.T) {
	g := newTestGraph(t)

	_, err := g.Toggle("ARCHITECTURE")
	te := toggleErr(t, err)

	assert.Equal(t, contract.ToggleEssentialLocked, te.Code)
	assert.Contains(t, te.Reason, "essential")
	assert.True(t, g.IsActive("ARCHITECTURE"), "rejected toggle must not mutate")
}

func TestToggleUnknownDisciplineRejected(t *testing.T) {
	g := newTestGraph(t)

	_, err := g.Toggle("TELEPATHY")
	te := toggleErr(t, err)

	assert.Equal(t, contract.ToggleUnknownDiscipline, te.Code)
	assert.Contains(t, te.Reason, "TELEPATHY")
}

func TestToggleActivatesDependencyClosure(t *testing.T) {
	g := newTestGraph(t)

	// HVAC -> ELECTRICAL -> STRUCTURAL
	res, err := g.Toggle("HVAC")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"HVAC", "ELECTRICAL", "STRUCTURAL"}, res.Activated)
	assert.Empty(t, g.Verify(), "closure invariant must hold")
}

func TestToggleDeactivateWithActiveDependentsRejected(t *testing.T) {
	g := newTestGraph(t)
	_, err := g.Toggle("ELECTRICAL")
	require.NoError(t, err)

	_, err = g.Toggle("STRUCTURAL")
	te := toggleErr(t, err)

	assert.Equal(t, contract.ToggleHasDependents, te.Code)
	assert.Contains(t, te.Reason, "ELECTRICAL", "rejection must name the blocking dependents")
	assert.True(t, g.IsActive("STRUCTURAL"))
}

func TestToggleNoAutoDeactivation(t *testing.T) {
	g := newTestGraph(t)
	_, err := g.Toggle("ELECTRICAL")
	require.NoError(t, err)

	// Deactivating ELECTRICAL leaves STRUCTURAL active even though it was
	// only pulled in as a dependency; it must be toggled off explicitly.
	res, err := g.Toggle("ELECTRICAL")
	require.NoError(t, err)
	assert.Equal(t, []string{"ELECTRICAL"}, res.Deactivated)
	assert.True(t, g.IsActive("STRUCTURAL"))

	res, err = g.Toggle("STRUCTURAL")
	require.NoError(t, err)
	assert.Equal(t, []string{"STRUCTURAL"}, res.Deactivated)
}

func TestCanToggleIsPure(t *testing.T) {
	g := newTestGraph(t)

	require.NoError(t, g.CanToggle("STRUCTURAL"))
	assert.False(t, g.IsActive("STRUCTURAL"), "CanToggle must not mutate")

	err := g.CanToggle("ARCHITECTURE")
	assert.Equal(t, contract.ToggleEssentialLocked, toggleErr(t, err).Code)
}

func TestNewGraphClosesInitialSelection(t *testing.T) {
	// A stored selection may predate a catalog edit that added a
	// dependency; construction restores the closure.
	g := newTestGraph(t, "HVAC")

	assert.True(t, g.IsActive("ELECTRICAL"))
	assert.True(t, g.IsActive("STRUCTURAL"))
	assert.Empty(t, g.Verify())
}

func TestNewGraphIgnoresUnknownInitialCodes(t *testing.T) {
	g := newTestGraph(t, "REMOVED_DISCIPLINE", "STRUCTURAL")

	assert.False(t, g.IsActive("REMOVED_DISCIPLINE"))
	assert.True(t, g.IsActive("STRUCTURAL"))
}

func TestGraphCycleSafety(t *testing.T) {
	cyclic, err := catalog.New([]domain.Discipline{
		{Code: "ARQ", Category: domain.CategoryEssential, DisplayOrder: 1},
		{Code: "A", Category: domain.CategorySpecialized, DisplayOrder: 2, Dependencies: []string{"B"}},
		{Code: "B", Category: domain.CategorySpecialized, DisplayOrder: 3, Dependencies: []string{"A"}},
	}, nil)
	require.NoError(t, err)

	g := NewGraph(cyclic, nil)
	res, err := g.Toggle("A")
	require.NoError(t, err, "cycle must not hang or fail activation")
	assert.ElementsMatch(t, []string{"A", "B"}, res.Activated)
}

func TestActiveDisciplinesSortedByDisplayOrder(t *testing.T) {
	g := newTestGraph(t)
	_, err := g.Toggle("LIGHTING") // pulls ELECTRICAL and STRUCTURAL
	require.NoError(t, err)

	var codes []string
	for _, d := range g.ActiveDisciplines() {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []string{"ARCHITECTURE", "STRUCTURAL", "ELECTRICAL", "LIGHTING"}, codes)
}
