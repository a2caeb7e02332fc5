package billing

import (
	"time"

	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/domain/plan"
	"github.com/coachbill/coachbill/internal/domain/subscription"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testPlan(price string, frequency types.BillingFrequency, dueDay *int) *plan.Plan {
	return &plan.Plan{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:      "Test Plan",
		Price:     decimal.RequireFromString(price),
		Frequency: frequency,
		DueDay:    dueDay,
	}
}

func testSubscription(startDate time.Time, dueDayOverride *int) *subscription.Subscription {
	return &subscription.Subscription{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		ClientID:       "client-1",
		PlanID:         "plan-1",
		StartDate:      lo.ToPtr(startDate),
		DueDayOverride: dueDayOverride,
	}
}

func testPayment(dueDate, monthReference *time.Time) *payment.Payment {
	return &payment.Payment{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		SubscriptionID: "subs-1",
		Amount:         decimal.NewFromInt(100),
		DueDate:        dueDate,
		MonthReference: monthReference,
		PaidAt:         lo.ToPtr(time.Now().UTC()),
	}
}

func defaultParams(today time.Time) ProjectionParams {
	return ProjectionParams{
		Today:         today,
		HorizonMonths: 6,
		DefaultDueDay: 10,
	}
}

func cycleDates(cycles []*ProjectedCycle) []time.Time {
	return lo.Map(cycles, func(c *ProjectedCycle, _ int) time.Time {
		return c.Date
	})
}
