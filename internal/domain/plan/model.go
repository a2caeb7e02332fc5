package plan

import (
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/shopspring/decimal"
)

// Plan is the immutable billing descriptor a subscription points at. The engine
// reads price, frequency and due day; everything else is administrative.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price per cycle. A non-positive price means a free plan: no cycles are ever
	// projected for subscriptions on it.
	Price     decimal.Decimal        `json:"price"`
	Frequency types.BillingFrequency `json:"frequency"`
	// DueDay is the calendar day of month a cycle falls due on, 1-31, clamped to
	// the length of the target month. Ignored for weekly plans.
	DueDay *int `json:"due_day,omitempty"`
	types.BaseModel
}

func (p *Plan) Validate() error {
	if p.Name == "" {
		return ierr.NewError("plan name is required").
			WithHint("Plan name is required").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("plan price cannot be negative").
			WithHint("Plan price cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if err := p.Frequency.Validate(); err != nil {
		return err
	}
	if p.DueDay != nil && (*p.DueDay < 1 || *p.DueDay > 31) {
		return ierr.NewError("plan due day out of range").
			WithHint("Due day must be between 1 and 31").
			Mark(ierr.ErrValidation)
	}
	return nil
}
