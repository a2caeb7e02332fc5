package subscription

import (
	"time"

	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/types"
)

// Subscription links a client to a plan and anchors the projected cycle sequence.
type Subscription struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	PlanID   string `json:"plan_id"`
	// StartDate anchors the first cycle. A nil start date is a valid
	// "billing not configured" state, not an error.
	StartDate *time.Time `json:"start_date,omitempty"`
	// DueDayOverride takes precedence over the plan's due day when set.
	DueDayOverride *int `json:"due_day_override,omitempty"`
	types.BaseModel
}

func (s *Subscription) Validate() error {
	if s.ClientID == "" {
		return ierr.NewError("subscription client id is required").
			WithHint("Client ID is required").
			Mark(ierr.ErrValidation)
	}
	if s.PlanID == "" {
		return ierr.NewError("subscription plan id is required").
			WithHint("Plan ID is required").
			Mark(ierr.ErrValidation)
	}
	if s.DueDayOverride != nil && (*s.DueDayOverride < 1 || *s.DueDayOverride > 31) {
		return ierr.NewError("subscription due day override out of range").
			WithHint("Due day override must be between 1 and 31").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// EffectiveDueDay resolves the due day for cycle generation: the subscription
// override wins over the plan's due day, and defaultDueDay fills in when
// neither is present.
func (s *Subscription) EffectiveDueDay(planDueDay *int, defaultDueDay int) int {
	if s.DueDayOverride != nil {
		return *s.DueDayOverride
	}
	if planDueDay != nil {
		return *planDueDay
	}
	return defaultDueDay
}
