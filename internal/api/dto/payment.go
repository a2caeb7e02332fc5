package dto

import (
	"context"
	"time"

	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	// DueDate is the projected cycle date the payment settles, YYYY-MM-DD.
	DueDate string `json:"due_date,omitempty"`
	// MonthReference is any date inside the calendar month the payment was
	// recorded against, YYYY-MM-DD. Used as a fallback match key.
	MonthReference string     `json:"month_reference,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

func (r *RecordPaymentRequest) ToPayment(ctx context.Context, subscriptionID string) (*payment.Payment, error) {
	p := &payment.Payment{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		SubscriptionID: subscriptionID,
		Amount:         r.Amount,
		PaidAt:         r.PaidAt,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	if r.PaidAt == nil {
		now := time.Now().UTC()
		p.PaidAt = &now
	}
	if r.DueDate != "" {
		dueDate, err := ParseDate(r.DueDate)
		if err != nil {
			return nil, err
		}
		p.DueDate = &dueDate
	}
	if r.MonthReference != "" {
		monthRef, err := ParseDate(r.MonthReference)
		if err != nil {
			return nil, err
		}
		p.MonthReference = &monthRef
	}
	return p, nil
}

type PaymentResponse struct {
	*payment.Payment
}

type ListPaymentsResponse struct {
	Items []*PaymentResponse `json:"items"`
	Total int                `json:"total"`
}
