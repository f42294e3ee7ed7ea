package engine

import (
	"sort"
	"strings"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/domain"
)

// Graph holds the discipline activation set for one budget and enforces
// the dependency invariants on every mutation: every dependency of an
// active discipline is itself active, and essential disciplines cannot
// be deactivated. The graph never auto-deactivates a discipline; a code
// that was pulled in as a dependency stays active until the caller
// toggles it off explicitly, which is only allowed once nothing active
// depends on it.
type Graph struct {
	catalog *catalog.Catalog
	active  map[string]bool
}

// NewGraph builds a graph with the essential disciplines active. Codes
// in initial that are unknown to the catalog are ignored; dependencies
// of known codes are activated transitively so the closure invariant
// holds from the start.
func NewGraph(cat *catalog.Catalog, initial []string) *Graph {
	g := &Graph{catalog: cat, active: make(map[string]bool)}
	for _, code := range cat.EssentialCodes() {
		g.active[code] = true
	}
	for _, code := range initial {
		if _, ok := cat.Get(code); ok {
			g.activateClosure(code)
		}
	}
	return g
}

// CanToggle reports whether toggling code is allowed, without mutating
// the graph. The returned error is a *contract.ToggleError carrying a
// machine code and a human-readable reason.
func (g *Graph) CanToggle(code string) error {
	d, ok := g.catalog.Get(code)
	if !ok {
		return &contract.ToggleError{
			Code:   contract.ToggleUnknownDiscipline,
			Reason: "unknown discipline: " + code,
		}
	}

	if !g.active[code] {
		return nil // activation is always allowed for cataloged codes
	}

	if d.Category == domain.CategoryEssential {
		return &contract.ToggleError{
			Code:   contract.ToggleEssentialLocked,
			Reason: "essential disciplines cannot be deactivated",
		}
	}

	if blockers := g.activeDependents(code); len(blockers) > 0 {
		return &contract.ToggleError{
			Code:   contract.ToggleHasDependents,
			Reason: "deactivate " + strings.Join(blockers, ", ") + " first",
		}
	}
	return nil
}

// Toggle flips the activation state of code. Activation transitively
// activates missing dependencies; deactivation removes only code itself.
func (g *Graph) Toggle(code string) (contract.ToggleResult, error) {
	if err := g.CanToggle(code); err != nil {
		return contract.ToggleResult{}, err
	}

	if g.active[code] {
		delete(g.active, code)
		return contract.ToggleResult{Deactivated: []string{code}}, nil
	}

	activated := g.activateClosure(code)
	return contract.ToggleResult{Activated: activated}, nil
}

// activateClosure activates code and every transitive dependency not yet
// active, returning the newly activated codes. The visited set keeps it
// safe against cycles a future catalog edit could introduce.
func (g *Graph) activateClosure(code string) []string {
	var activated []string
	visited := make(map[string]bool)

	var visit func(string)
	visit = func(c string) {
		if visited[c] {
			return
		}
		visited[c] = true

		d, ok := g.catalog.Get(c)
		if !ok {
			return
		}
		if !g.active[c] {
			g.active[c] = true
			activated = append(activated, c)
		}
		for _, dep := range d.Dependencies {
			visit(dep)
		}
	}
	visit(code)

	return activated
}

// activeDependents returns the active disciplines that list code as a
// dependency, sorted by display order for stable error messages.
func (g *Graph) activeDependents(code string) []string {
	var dependents []string
	for _, d := range g.catalog.All() {
		if !g.active[d.Code] {
			continue
		}
		for _, dep := range d.Dependencies {
			if dep == code {
				dependents = append(dependents, d.Code)
				break
			}
		}
	}
	return dependents
}

// IsActive reports whether code is currently active.
func (g *Graph) IsActive(code string) bool {
	return g.active[code]
}

// ActiveCodes returns the active codes sorted by catalog display order.
func (g *Graph) ActiveCodes() []string {
	var codes []string
	for _, d := range g.catalog.All() {
		if g.active[d.Code] {
			codes = append(codes, d.Code)
		}
	}
	return codes
}

// ActiveDisciplines returns the active catalog entries sorted by
// display order.
func (g *Graph) ActiveDisciplines() []domain.Discipline {
	var out []domain.Discipline
	for _, d := range g.catalog.All() {
		if g.active[d.Code] {
			out = append(out, d)
		}
	}
	return out
}

// Verify checks the closure invariant and returns the violating pairs,
// if any. Used by tests and by the session's consistency assertions.
func (g *Graph) Verify() []string {
	var violations []string
	for code := range g.active {
		d, ok := g.catalog.Get(code)
		if !ok {
			continue
		}
		for _, dep := range d.Dependencies {
			if !g.active[dep] {
				violations = append(violations, code+"->"+dep)
			}
		}
	}
	sort.Strings(violations)
	return violations
}
