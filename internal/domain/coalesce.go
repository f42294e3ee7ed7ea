package domain

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// MultiplierOrNeutral looks up key in a multiplier table, defaulting to 1.
// Unknown keys are never an error; they must not block computation.
func MultiplierOrNeutral(table map[string]float64, key string) float64 {
	if table == nil {
		return 1
	}
	if m, ok := table[key]; ok && m > 0 {
		return m
	}
	return 1
}

// Float64Ptr returns a pointer to v. Convenience for building configs.
func Float64Ptr(v float64) *float64 {
	p := v
	return &p
}
