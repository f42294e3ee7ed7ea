package catalog

import (
	"fmt"
	"sort"

	"github.com/felipearaujo/orcato/internal/domain"
)

// Catalog holds the discipline catalog for a session, indexed by code.
// Catalogs are immutable after construction.
type Catalog struct {
	byCode       map[string]domain.Discipline
	ordered      []domain.Discipline
	deliverables DeliverableMatrix
}

// DeliverableMatrix maps discipline code -> phase id -> deliverable names.
type DeliverableMatrix map[string]map[domain.PhaseID][]string

// New builds a catalog from discipline entries, validating that codes are
// unique and every dependency refers to a cataloged discipline.
func New(disciplines []domain.Discipline, deliverables DeliverableMatrix) (*Catalog, error) {
	byCode := make(map[string]domain.Discipline, len(disciplines))
	for _, d := range disciplines {
		if d.Code == "" {
			return nil, fmt.Errorf("discipline with empty code: %q", d.Name)
		}
		if _, exists := byCode[d.Code]; exists {
			return nil, fmt.Errorf("duplicate discipline code %q", d.Code)
		}
		byCode[d.Code] = d
	}
	for _, d := range disciplines {
		for _, dep := range d.Dependencies {
			if _, ok := byCode[dep]; !ok {
				return nil, fmt.Errorf("discipline %q depends on unknown code %q", d.Code, dep)
			}
		}
	}

	ordered := make([]domain.Discipline, len(disciplines))
	copy(ordered, disciplines)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	if deliverables == nil {
		deliverables = DeliverableMatrix{}
	}

	return &Catalog{byCode: byCode, ordered: ordered, deliverables: deliverables}, nil
}

// Get returns the discipline for code.
func (c *Catalog) Get(code string) (domain.Discipline, bool) {
	d, ok := c.byCode[code]
	return d, ok
}

// All returns every discipline sorted by display order.
func (c *Catalog) All() []domain.Discipline {
	out := make([]domain.Discipline, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// EssentialCodes returns the codes of all essential disciplines, in
// display order.
func (c *Catalog) EssentialCodes() []string {
	var codes []string
	for _, d := range c.ordered {
		if d.Category == domain.CategoryEssential {
			codes = append(codes, d.Code)
		}
	}
	return codes
}

// Deliverables returns the deliverable names a discipline owns for a
// phase. The returned slice must not be mutated.
func (c *Catalog) Deliverables(code string, phase domain.PhaseID) []string {
	byPhase, ok := c.deliverables[code]
	if !ok {
		return nil
	}
	return byPhase[phase]
}
