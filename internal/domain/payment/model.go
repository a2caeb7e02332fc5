package payment

import (
	"time"

	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/shopspring/decimal"
)

// Payment is a recorded payment transaction in the ledger. Payments are
// historical facts: once recorded they are never updated or deleted, and the
// billing engine only ever links to them, it does not own them.
type Payment struct {
	ID             string          `json:"id"`
	SubscriptionID string          `json:"subscription_id"`
	Amount         decimal.Decimal `json:"amount"`
	// DueDate is the projected cycle date this payment was recorded against,
	// when the billing run knew it.
	DueDate *time.Time `json:"due_date,omitempty"`
	// PaidAt is when the payment settled. Presence implies the payment counts
	// toward a cycle.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// MonthReference is a fallback match key for monthly-multiple cadences: a
	// payment recorded against "the month" rather than an exact projected day.
	MonthReference *time.Time `json:"month_reference,omitempty"`
	types.BaseModel
}

func (p *Payment) Validate() error {
	if p.SubscriptionID == "" {
		return ierr.NewError("payment subscription id is required").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation)
	}
	if p.Amount.IsNegative() {
		return ierr.NewError("payment amount cannot be negative").
			WithHint("Payment amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if p.DueDate == nil && p.MonthReference == nil {
		return ierr.NewError("payment needs a due date or month reference").
			WithHint("Provide a due date or a month reference so the payment can be reconciled").
			Mark(ierr.ErrValidation)
	}
	return nil
}
