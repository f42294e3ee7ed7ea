package budget

import (
	"context"
	"testing"
	"time"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/debounce"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/felipearaujo/orcato/internal/repository"
	"github.com/felipearaujo/orcato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionEnv struct {
	pricing    repository.PricingRepo
	selections repository.SelectionRepo
	saver      *debounce.Debouncer
	opts       SessionOptions
}

// newSessionEnv wires a session against an in-memory database with the
// office pricing fixture installed. The debounce window is effectively
// infinite; tests drive persistence through Flush.
func newSessionEnv(t *testing.T) *sessionEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &sessionEnv{
		pricing:    repository.NewSQLitePricingRepo(database),
		selections: repository.NewSQLiteSelectionRepo(database),
		saver:      debounce.New(time.Hour),
	}
	t.Cleanup(env.saver.Close)

	require.NoError(t, env.pricing.Save(context.Background(), testutil.OfficePricingFixture("office-1")))

	env.opts = SessionOptions{
		BudgetID:   "budget-1",
		OfficeID:   "office-1",
		Catalog:    catalog.Default(),
		Pricing:    env.pricing,
		Selections: env.selections,
		Saver:      env.saver,
		Params:     testutil.ProjectParamsFixture(),
	}
	return env
}

func (e *sessionEnv) open(t *testing.T) *Session {
	t.Helper()
	s, err := Open(context.Background(), e.opts)
	require.NoError(t, err)
	return s
}

func TestOpenNewBudgetStartsWithEssentials(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	active := s.ActiveDisciplines()
	require.Len(t, active, 1)
	assert.Equal(t, "ARCHITECTURE", active[0].Code)
	assert.False(t, s.Degraded())
	assert.Greater(t, s.Total(), 0.0)
}

func TestOpenFallsBackToOfficeDefault(t *testing.T) {
	env := newSessionEnv(t)
	require.NoError(t, env.selections.SaveOfficeDefault(context.Background(),
		"office-1", []string{"ARCHITECTURE", "STRUCTURAL", "HYDRAULIC"}))

	s := env.open(t)

	assert.True(t, s.IsActive("STRUCTURAL"))
	assert.True(t, s.IsActive("HYDRAULIC"))
}

func TestOpenRestoresStoredSelection(t *testing.T) {
	env := newSessionEnv(t)
	ctx := context.Background()

	params := testutil.ProjectParamsFixture()
	params.Area = 350
	require.NoError(t, env.selections.Save(ctx, &repository.BudgetSelection{
		BudgetID: "budget-1",
		OfficeID: "office-1",
		Active:   []string{"ARCHITECTURE", "STRUCTURAL", "ELECTRICAL"},
		Configs: map[string]domain.DisciplineConfig{
			"ELECTRICAL": {ValueOverride: domain.Float64Ptr(7000)},
		},
		Params: params,
	}))

	s := env.open(t)

	assert.True(t, s.IsActive("ELECTRICAL"))
	assert.True(t, s.IsActive("STRUCTURAL"))
	assert.Equal(t, 350.0, s.Params().Area)

	cfg, ok := s.Config("ELECTRICAL")
	require.True(t, ok)
	assert.Equal(t, 7000.0, *cfg.ValueOverride)
	assert.Equal(t, domain.SourceBudgetOverride, s.Result().Lines["ELECTRICAL"].Source)
}

func TestOpenEssentialOnlySelectionFallsBackToDefault(t *testing.T) {
	env := newSessionEnv(t)
	ctx := context.Background()

	// A stored selection that adds nothing over the baseline is treated
	// as never customized.
	require.NoError(t, env.selections.Save(ctx, &repository.BudgetSelection{
		BudgetID: "budget-1",
		OfficeID: "office-1",
		Active:   []string{"ARCHITECTURE"},
	}))
	require.NoError(t, env.selections.SaveOfficeDefault(ctx,
		"office-1", []string{"ARCHITECTURE", "STRUCTURAL"}))

	s := env.open(t)
	assert.True(t, s.IsActive("STRUCTURAL"))
}

func TestOpenWithoutPricingRunsDegraded(t *testing.T) {
	env := newSessionEnv(t)
	env.opts.OfficeID = "office-without-pricing"

	s := env.open(t)

	assert.True(t, s.Degraded())
	assert.True(t, s.Snapshot().Degraded)
	assert.Equal(t, domain.SourceCatalogDefault, s.Result().Lines["ARCHITECTURE"].Source)
}

func TestToggleActivatesDependencyClosure(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	res, err := s.ToggleDiscipline("HVAC")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"HVAC", "ELECTRICAL", "STRUCTURAL"}, res.Activated)
	assert.True(t, s.IsActive("ELECTRICAL"))
	assert.True(t, s.IsActive("STRUCTURAL"))
}

func TestToggleDeactivationBlockedByDependents(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	_, err := s.ToggleDiscipline("HVAC")
	require.NoError(t, err)

	_, err = s.ToggleDiscipline("ELECTRICAL")
	var toggleErr *contract.ToggleError
	require.ErrorAs(t, err, &toggleErr)
	assert.Equal(t, contract.ToggleHasDependents, toggleErr.Code)
	assert.Contains(t, toggleErr.Reason, "HVAC")

	// Removing the dependent first unblocks the dependency.
	_, err = s.ToggleDiscipline("HVAC")
	require.NoError(t, err)
	_, err = s.ToggleDiscipline("ELECTRICAL")
	assert.NoError(t, err)
}

func TestToggleEssentialRejected(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	_, err := s.ToggleDiscipline("ARCHITECTURE")
	var toggleErr *contract.ToggleError
	require.ErrorAs(t, err, &toggleErr)
	assert.Equal(t, contract.ToggleEssentialLocked, toggleErr.Code)
	assert.NoError(t, s.CanToggle("STRUCTURAL"))
}

func TestToggleRecomputesTotal(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	before := s.Total()
	_, err := s.ToggleDiscipline("STRUCTURAL")
	require.NoError(t, err)

	assert.Greater(t, s.Total(), before)

	_, err = s.ToggleDiscipline("STRUCTURAL")
	require.NoError(t, err)
	assert.InDelta(t, before, s.Total(), 0.01)
}

func TestUpdateConfigOverridesAndClears(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	require.NoError(t, s.UpdateConfig("ARCHITECTURE",
		domain.DisciplineConfig{ValueOverride: domain.Float64Ptr(20000)}))

	line := s.Result().Lines["ARCHITECTURE"]
	assert.Equal(t, domain.SourceBudgetOverride, line.Source)
	// 20000 x 1.2 regional.
	assert.InDelta(t, 24000, line.Base, 0.01)

	require.NoError(t, s.UpdateConfig("ARCHITECTURE", domain.DisciplineConfig{}))
	line = s.Result().Lines["ARCHITECTURE"]
	assert.Equal(t, domain.SourceOfficeArea, line.Source)
	// 75/m2 x 200m2 x 1.2 regional.
	assert.InDelta(t, 18000, line.Base, 0.01)
}

func TestUpdateConfigUnknownDiscipline(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	err := s.UpdateConfig("TOPOGRAPHY",
		domain.DisciplineConfig{ValueOverride: domain.Float64Ptr(1000)})
	assert.Error(t, err)
}

func TestUpdateParamsValidatesAndRecomputes(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	bad := testutil.ProjectParamsFixture()
	bad.Area = 0
	assert.Error(t, s.UpdateParams(bad))
	assert.Equal(t, 200.0, s.Params().Area)

	smallDuration := scheduleWeeks(s.Schedule())

	bigger := testutil.ProjectParamsFixture()
	bigger.Area = 800
	require.NoError(t, s.UpdateParams(bigger))

	assert.Equal(t, 800.0, s.Params().Area)
	assert.Greater(t, scheduleWeeks(s.Schedule()), smallDuration)
}

func TestMutationsCoalesceIntoOneSave(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)
	ctx := context.Background()

	_, err := s.ToggleDiscipline("STRUCTURAL")
	require.NoError(t, err)
	_, err = s.ToggleDiscipline("HYDRAULIC")
	require.NoError(t, err)
	require.NoError(t, s.UpdateConfig("HYDRAULIC",
		domain.DisciplineConfig{ValueOverride: domain.Float64Ptr(5000)}))

	// Three mutations, one pending write.
	assert.Equal(t, 1, env.saver.Pending())

	env.saver.Flush()

	stored, err := env.selections.Get(ctx, "budget-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ARCHITECTURE", "STRUCTURAL", "HYDRAULIC"}, stored.Active)
	require.Contains(t, stored.Configs, "HYDRAULIC")
	assert.Equal(t, 5000.0, *stored.Configs["HYDRAULIC"].ValueOverride)
}

func TestSaveNowPersistsImmediately(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)
	ctx := context.Background()

	_, err := s.ToggleDiscipline("INTERIORS")
	require.NoError(t, err)
	require.NoError(t, s.SaveNow(ctx))

	stored, err := env.selections.Get(ctx, "budget-1")
	require.NoError(t, err)
	assert.Contains(t, stored.Active, "INTERIORS")
	assert.Equal(t, 200.0, stored.Params.Area)
}

func TestScheduleFollowsActiveDisciplines(t *testing.T) {
	env := newSessionEnv(t)
	s := env.open(t)

	detailing := phaseByName(t, s.Schedule(), "Detailing")
	assert.NotContains(t, detailing.Deliverables, "Structural details")

	_, err := s.ToggleDiscipline("STRUCTURAL")
	require.NoError(t, err)

	detailing = phaseByName(t, s.Schedule(), "Detailing")
	assert.Contains(t, detailing.Deliverables, "Structural details")
	assert.Contains(t, detailing.Disciplines, "STRUCTURAL")
}

func scheduleWeeks(phases []domain.Phase) int {
	total := 0
	for _, p := range phases {
		total += p.DurationWeeks
	}
	return total
}

func phaseByName(t *testing.T, phases []domain.Phase, name string) domain.Phase {
	t.Helper()
	for _, p := range phases {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("phase %q not found", name)
	return domain.Phase{}
}
