package contract

import "github.com/felipearaujo/orcato/internal/domain"

// ToggleErrorCode classifies why a discipline toggle was rejected.
// Rejections are expected control flow, not failures; callers surface
// the Reason to the user.
type ToggleErrorCode string

const (
	ToggleUnknownDiscipline ToggleErrorCode = "UNKNOWN_DISCIPLINE"
	ToggleEssentialLocked   ToggleErrorCode = "ESSENTIAL_LOCKED"
	ToggleHasDependents     ToggleErrorCode = "HAS_ACTIVE_DEPENDENTS"
)

// ToggleError is a validation rejection of a toggle request.
type ToggleError struct {
	Code   ToggleErrorCode
	Reason string
}

func (e *ToggleError) Error() string {
	return string(e.Code) + ": " + e.Reason
}

// ToggleResult reports the activation changes one toggle produced.
// Activating a discipline may activate several codes (its dependency
// closure); deactivating removes exactly one.
type ToggleResult struct {
	Activated   []string
	Deactivated []string
}

// Selection is the JSON-serializable persistence payload for one
// budget's discipline state: codes and numbers only.
type Selection struct {
	Active  []string                           `json:"active"`
	Configs map[string]domain.DisciplineConfig `json:"configs,omitempty"`
}

// BudgetSnapshot is a read-only view of a session for presentation.
type BudgetSnapshot struct {
	BudgetID string
	OfficeID string
	Params   domain.ProjectParams
	Active   []domain.Discipline
	Result   domain.CalculationResult

	// Degraded is set when the office pricing table was unavailable and
	// the computation ran on catalog defaults.
	Degraded bool
}
