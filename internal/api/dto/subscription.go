package dto

import (
	"context"
	"time"

	"github.com/coachbill/coachbill/internal/domain/subscription"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/types"
)

// DateFormat is the wire format for calendar dates. Cycle projection works at
// day precision, so the API never accepts timestamps where a date is meant.
const DateFormat = "2006-01-02"

type CreateSubscriptionRequest struct {
	ClientID       string `json:"client_id" validate:"required"`
	PlanID         string `json:"plan_id" validate:"required"`
	StartDate      string `json:"start_date,omitempty"`
	DueDayOverride *int   `json:"due_day_override,omitempty" validate:"omitempty,gte=1,lte=31"`
}

func (r *CreateSubscriptionRequest) ToSubscription(ctx context.Context) (*subscription.Subscription, error) {
	sub := &subscription.Subscription{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		ClientID:       r.ClientID,
		PlanID:         r.PlanID,
		DueDayOverride: r.DueDayOverride,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	if r.StartDate != "" {
		startDate, err := ParseDate(r.StartDate)
		if err != nil {
			return nil, err
		}
		sub.StartDate = &startDate
	}
	return sub, nil
}

type SubscriptionResponse struct {
	*subscription.Subscription
}

type ListSubscriptionsResponse struct {
	Items []*SubscriptionResponse `json:"items"`
	Total int                     `json:"total"`
}

// ParseDate parses a YYYY-MM-DD wire date into a UTC calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("Date %s must be in YYYY-MM-DD format", value).
			Mark(ierr.ErrValidation)
	}
	return parsed.UTC(), nil
}
