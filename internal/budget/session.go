// Package budget orchestrates one budget's discipline selection,
// pricing computation and persistence. A Session is the single writer
// for its budget: every mutation recomputes the full result
// synchronously and schedules a debounced save, so readers always see
// a result consistent with the current selection while rapid edits
// coalesce into one write.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/debounce"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/felipearaujo/orcato/internal/engine"
	"github.com/felipearaujo/orcato/internal/repository"
)

// SessionOptions carries the collaborators a Session needs. Catalog,
// Selections and Saver are required; Pricing may be nil only in tests
// that exercise degraded mode directly.
type SessionOptions struct {
	BudgetID string
	OfficeID string

	Catalog    *catalog.Catalog
	Pricing    repository.PricingRepo
	Selections repository.SelectionRepo
	Saver      *debounce.Debouncer
	Logger     *slog.Logger

	// Params seeds the project parameters for budgets that have no
	// stored selection yet.
	Params domain.ProjectParams
}

// Session holds the live state of one open budget. All exported methods
// are safe for concurrent use; mutations serialize on an internal mutex
// and recompute before returning.
type Session struct {
	mu sync.Mutex

	budgetID string
	officeID string

	cat     *catalog.Catalog
	graph   *engine.Graph
	configs map[string]domain.DisciplineConfig
	params  domain.ProjectParams

	table    *domain.PricingTable
	degraded bool
	result   domain.CalculationResult

	selections repository.SelectionRepo
	saver      *debounce.Debouncer
	logger     *slog.Logger
}

// Open loads the budget's stored selection and pricing context and
// returns a ready session. A missing pricing table is not an error: the
// session runs degraded on catalog defaults and says so in every
// snapshot. The stored selection falls back to the office default when
// it is empty or adds nothing over the essential baseline, and to the
// essential baseline when no default exists either.
func Open(ctx context.Context, opts SessionOptions) (*Session, error) {
	if opts.BudgetID == "" {
		return nil, errors.New("budget id is required")
	}
	if opts.OfficeID == "" {
		return nil, errors.New("office id is required")
	}
	if opts.Catalog == nil || opts.Selections == nil || opts.Saver == nil {
		return nil, errors.New("catalog, selection store and saver are required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("budget_id", opts.BudgetID, "office_id", opts.OfficeID)

	s := &Session{
		budgetID:   opts.BudgetID,
		officeID:   opts.OfficeID,
		cat:        opts.Catalog,
		configs:    make(map[string]domain.DisciplineConfig),
		params:     opts.Params.Normalized(),
		selections: opts.Selections,
		saver:      opts.Saver,
		logger:     logger,
	}

	if err := s.loadPricing(ctx, opts.Pricing); err != nil {
		return nil, err
	}

	initial, err := s.loadSelection(ctx)
	if err != nil {
		return nil, err
	}

	s.graph = engine.NewGraph(s.cat, initial)
	s.recompute()
	return s, nil
}

func (s *Session) loadPricing(ctx context.Context, pricing repository.PricingRepo) error {
	if pricing == nil {
		s.degraded = true
		return nil
	}

	table, err := pricing.Get(ctx, s.officeID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.degraded = true
		s.logger.Warn("office pricing unavailable, using catalog defaults")
	case err != nil:
		return fmt.Errorf("failed to load office pricing: %w", err)
	default:
		s.table = table
	}
	return nil
}

// loadSelection resolves the initial active set: stored budget
// selection, then office default, then nothing (the graph constructor
// supplies the essential baseline).
func (s *Session) loadSelection(ctx context.Context) ([]string, error) {
	stored, err := s.selections.Get(ctx, s.budgetID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load budget selection: %w", err)
	}

	if stored != nil {
		if stored.Configs != nil {
			s.configs = stored.Configs
		}
		if stored.Params.Area > 0 {
			s.params = stored.Params.Normalized()
		}
		if s.addsOverBaseline(stored.Active) {
			return stored.Active, nil
		}
	}

	active, err := s.selections.GetOfficeDefault(ctx, s.officeID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load office default selection: %w", err)
	}
	return active, nil
}

// addsOverBaseline reports whether the stored codes activate anything
// beyond the always-on essential disciplines.
func (s *Session) addsOverBaseline(codes []string) bool {
	for _, code := range codes {
		d, ok := s.cat.Get(code)
		if ok && d.Category != domain.CategoryEssential {
			return true
		}
	}
	return false
}

// recompute rebuilds the cached result and schedule from the current
// selection. Caller holds the lock (or has exclusive access during Open).
func (s *Session) recompute() {
	active := s.graph.ActiveDisciplines()
	s.result = engine.Aggregate(active, s.configs, s.params, s.table)
	s.result.Schedule = engine.BuildSchedule(s.cat, active, s.params, s.result.Total, s.logger)
}

// scheduleSave queues a debounced persistence of the selection, keyed
// by budget id. The callback reads the then-current state so the write
// that eventually fires always reflects the latest edits.
func (s *Session) scheduleSave() {
	s.saver.Schedule(s.budgetID, func() {
		if err := s.SaveNow(context.Background()); err != nil {
			s.logger.Error("failed to persist budget selection", "error", err)
		}
	})
}

// SaveNow persists the current selection immediately, bypassing the
// debounce window.
func (s *Session) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	sel := &repository.BudgetSelection{
		BudgetID: s.budgetID,
		OfficeID: s.officeID,
		Active:   s.graph.ActiveCodes(),
		Configs:  cloneConfigs(s.configs),
		Params:   s.params,
	}
	s.mu.Unlock()

	return s.selections.Save(ctx, sel)
}

// ToggleDiscipline flips the activation state of code, recomputes and
// queues a save. The error, when non-nil, is a *contract.ToggleError.
func (s *Session) ToggleDiscipline(code string) (contract.ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.graph.Toggle(code)
	if err != nil {
		return contract.ToggleResult{}, err
	}

	s.recompute()
	s.scheduleSave()
	return res, nil
}

// CanToggle reports whether toggling code would be accepted, without
// changing anything.
func (s *Session) CanToggle(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.CanToggle(code)
}

// UpdateConfig replaces the per-discipline override for code. A zero
// config clears the override.
func (s *Session) UpdateConfig(code string, cfg domain.DisciplineConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cat.Get(code); !ok {
		return fmt.Errorf("unknown discipline: %s", code)
	}

	if cfg.IsZero() {
		delete(s.configs, code)
	} else {
		s.configs[code] = cfg
	}

	s.recompute()
	s.scheduleSave()
	return nil
}

// UpdateParams replaces the project parameters after validation.
func (s *Session) UpdateParams(params domain.ProjectParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.params = params.Normalized()
	s.recompute()
	s.scheduleSave()
	return nil
}

// Snapshot returns a read-only view of the session for presentation.
func (s *Session) Snapshot() contract.BudgetSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return contract.BudgetSnapshot{
		BudgetID: s.budgetID,
		OfficeID: s.officeID,
		Params:   s.params,
		Active:   s.graph.ActiveDisciplines(),
		Result:   s.result,
		Degraded: s.degraded,
	}
}

// Result returns the cached calculation result.
func (s *Session) Result() domain.CalculationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Total returns the cached final project value.
func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.Total
}

// Schedule returns the cached phase plan.
func (s *Session) Schedule() []domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.Schedule
}

// ActiveDisciplines returns the active disciplines in display order.
func (s *Session) ActiveDisciplines() []domain.Discipline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.ActiveDisciplines()
}

// IsActive reports whether code is active.
func (s *Session) IsActive(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.IsActive(code)
}

// Config returns the override stored for code, if any.
func (s *Session) Config(code string) (domain.DisciplineConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[code]
	return cfg, ok
}

// Params returns the current project parameters.
func (s *Session) Params() domain.ProjectParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Degraded reports whether the session is running on catalog defaults.
func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// BudgetID returns the budget this session is bound to.
func (s *Session) BudgetID() string { return s.budgetID }

// OfficeID returns the owning office.
func (s *Session) OfficeID() string { return s.officeID }

func cloneConfigs(in map[string]domain.DisciplineConfig) map[string]domain.DisciplineConfig {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]domain.DisciplineConfig, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
