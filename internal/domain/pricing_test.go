package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplierOrNeutral(t *testing.T) {
	table := map[string]float64{"capital": 1.2, "countryside": 0.9}

	assert.Equal(t, 1.2, MultiplierOrNeutral(table, "capital"))
	assert.Equal(t, 0.9, MultiplierOrNeutral(table, "countryside"))
	assert.Equal(t, 1.0, MultiplierOrNeutral(table, "unknown-region"))
	assert.Equal(t, 1.0, MultiplierOrNeutral(nil, "capital"))
}

func TestMultiplierOrNeutral_ZeroEntryIsNeutral(t *testing.T) {
	// A zero multiplier would erase a line; treat it as unset.
	table := map[string]float64{"economy": 0}
	assert.Equal(t, 1.0, MultiplierOrNeutral(table, "economy"))
}

func TestDisciplineConfigMerge(t *testing.T) {
	base := DisciplineConfig{ValueOverride: Float64Ptr(12000)}
	patch := DisciplineConfig{ComplexityMultOverride: Float64Ptr(1.4)}

	merged := base.Merge(patch)

	assert.Equal(t, 12000.0, *merged.ValueOverride)
	assert.Equal(t, 1.4, *merged.ComplexityMultOverride)
	assert.Nil(t, merged.HourlyRateOverride)
}

func TestProjectParamsValidate(t *testing.T) {
	valid := ProjectParams{Area: 200}
	assert.NoError(t, valid.Validate())

	assert.Error(t, ProjectParams{Area: 0}.Validate())
	assert.Error(t, ProjectParams{Area: -10}.Validate())
	assert.Error(t, ProjectParams{Area: 100, DiscountPct: -5}.Validate())
}

func TestProjectParamsNormalized(t *testing.T) {
	p := ProjectParams{Area: 100}.Normalized()
	assert.Equal(t, UrgencyNormal, p.Urgency)
	assert.Equal(t, PaymentCash, p.PaymentPlan)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.56, RoundCents(10.555))
	assert.Equal(t, 10.55, RoundCents(10.554))
	assert.Equal(t, 0.0, RoundCents(0))
}
