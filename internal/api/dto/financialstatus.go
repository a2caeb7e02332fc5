package dto

import (
	"time"

	"github.com/coachbill/coachbill/internal/billing"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/shopspring/decimal"
)

// CycleResponse is one classified billing cycle as rendered to the caller.
type CycleResponse struct {
	Date      time.Time         `json:"date"`
	Amount    decimal.Decimal   `json:"amount"`
	Status    types.CycleStatus `json:"status"`
	PaymentID string            `json:"payment_id,omitempty"`
}

type ReminderResponse struct {
	Date         time.Time `json:"date"`
	DaysUntilDue int       `json:"days_until_due"`
	Message      string    `json:"message"`
}

// FinancialStatusResponse is the full read-model for a subscription's billing
// state: the rollup signals, the ordered cycle list for upcoming-charges UI,
// and the actionable reminders.
type FinancialStatusResponse struct {
	SubscriptionID string               `json:"subscription_id"`
	AsOf           time.Time            `json:"as_of"`
	Overall        types.FinancialState `json:"overall"`
	OverdueCount   int                  `json:"overdue_count"`
	NextDueDate    *time.Time           `json:"next_due_date,omitempty"`
	Cycles         []CycleResponse      `json:"cycles"`
	Reminders      []ReminderResponse   `json:"reminders"`
}

func NewFinancialStatusResponse(subscriptionID string, asOf time.Time, status *billing.FinancialStatus, cycles []*billing.ProjectedCycle, reminders []billing.Reminder) *FinancialStatusResponse {
	resp := &FinancialStatusResponse{
		SubscriptionID: subscriptionID,
		AsOf:           asOf,
		Overall:        status.Overall,
		OverdueCount:   status.OverdueCount,
		Cycles:         make([]CycleResponse, 0, len(cycles)),
		Reminders:      make([]ReminderResponse, 0, len(reminders)),
	}
	if status.NextCycle != nil {
		nextDue := status.NextCycle.Date
		resp.NextDueDate = &nextDue
	}
	for _, cycle := range cycles {
		item := CycleResponse{
			Date:   cycle.Date,
			Amount: cycle.Amount,
			Status: cycle.Status,
		}
		if cycle.Payment != nil {
			item.PaymentID = cycle.Payment.ID
		}
		resp.Cycles = append(resp.Cycles, item)
	}
	for _, reminder := range reminders {
		resp.Reminders = append(resp.Reminders, ReminderResponse{
			Date:         reminder.Cycle.Date,
			DaysUntilDue: reminder.DaysUntilDue,
			Message:      reminder.Message,
		})
	}
	return resp
}

// NewUnknownFinancialStatusResponse is the shape returned for a subscriber
// with no usable plan/subscription configuration. Absence of configuration is
// a valid state, never an error.
func NewUnknownFinancialStatusResponse(subscriptionID string, asOf time.Time) *FinancialStatusResponse {
	return &FinancialStatusResponse{
		SubscriptionID: subscriptionID,
		AsOf:           asOf,
		Overall:        types.FinancialStateUnknown,
		Cycles:         make([]CycleResponse, 0),
		Reminders:      make([]ReminderResponse, 0),
	}
}
