package domain

import "fmt"

// ProjectParams are the project-level inputs to pricing and scheduling.
type ProjectParams struct {
	Area       float64
	Region     string
	Standard   string
	Complexity string
	Urgency    Urgency

	PaymentPlan PaymentPlan
	DiscountPct float64
}

// Validate checks the fields a budget cannot be computed without.
// Unknown region/standard/complexity codes are accepted; they resolve
// to neutral multipliers downstream.
func (p ProjectParams) Validate() error {
	if p.Area <= 0 {
		return fmt.Errorf("project area must be positive, got %.2f", p.Area)
	}
	if p.DiscountPct < 0 {
		return fmt.Errorf("discount percent must not be negative, got %.2f", p.DiscountPct)
	}
	return nil
}

// Normalized returns a copy with defaults applied for empty enum fields.
func (p ProjectParams) Normalized() ProjectParams {
	if p.Urgency == "" {
		p.Urgency = UrgencyNormal
	}
	if p.PaymentPlan == "" {
		p.PaymentPlan = PaymentCash
	}
	return p
}
