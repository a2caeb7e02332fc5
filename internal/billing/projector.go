package billing

import (
	"time"

	"github.com/coachbill/coachbill/internal/domain/plan"
	"github.com/coachbill/coachbill/internal/domain/subscription"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/types"
)

// maxProjectionSteps bounds the projection walk so malformed inputs can never
// loop forever. Hitting it is an internal invariant violation, not a business
// rule; the partial cycle list is still returned.
const maxProjectionSteps = 1000

// ProjectionParams carries the injected reference date and the configured
// projection tunables.
type ProjectionParams struct {
	// Today is the single reference date for the whole computation.
	Today time.Time
	// HorizonMonths bounds forward projection: no cycle is emitted past
	// Today + HorizonMonths months (inclusive).
	HorizonMonths int
	// DefaultDueDay fills in when neither the subscription nor the plan
	// carries a due day.
	DefaultDueDay int
}

// ProjectCycles derives the ordered sequence of billing cycles for a
// subscription from its start date up to the projection horizon. A missing
// start date or a non-positive plan price is a valid "no billing" state and
// yields an empty sequence. Cycles come back strictly ascending by date with
// no duplicates, status pending and amount copied from the plan.
//
// The returned error is non-nil only when the defensive iteration cap was hit;
// the partial cycle list generated up to that point is returned alongside it.
func ProjectCycles(sub *subscription.Subscription, p *plan.Plan, params ProjectionParams) ([]*ProjectedCycle, error) {
	if sub == nil || p == nil || sub.StartDate == nil || !p.Price.IsPositive() {
		return []*ProjectedCycle{}, nil
	}

	start := types.DateOnly(*sub.StartDate)
	horizon := types.AddClampedDate(types.DateOnly(params.Today), 0, params.HorizonMonths, 0)

	if p.Frequency.IsWeekly() {
		return projectWeekly(start, horizon, p)
	}
	return projectMonthMultiple(sub, p, start, horizon, params.DefaultDueDay)
}

func projectWeekly(start, horizon time.Time, p *plan.Plan) ([]*ProjectedCycle, error) {
	cycles := make([]*ProjectedCycle, 0)
	date := start
	for steps := 0; !date.After(horizon); steps++ {
		if steps >= maxProjectionSteps {
			return cycles, capError(p)
		}
		cycles = append(cycles, newPendingCycle(date, p))
		date = types.AddClampedDate(date, 0, 0, 7)
	}
	return cycles, nil
}

// projectMonthMultiple walks month-by-month from the anchor month and emits a
// cycle on every interval boundary, with the day-of-month clamped to both the
// effective due day and the length of the target month.
func projectMonthMultiple(sub *subscription.Subscription, p *plan.Plan, start, horizon time.Time, defaultDueDay int) ([]*ProjectedCycle, error) {
	interval := p.Frequency.IntervalMonths()
	if interval <= 0 {
		return []*ProjectedCycle{}, ierr.NewError("invalid billing frequency interval").
			WithHintf("Billing frequency %s has no month interval", p.Frequency).
			Mark(ierr.ErrSystem)
	}

	dueDay := sub.EffectiveDueDay(p.DueDay, defaultDueDay)
	cycles := make([]*ProjectedCycle, 0)

	// cursor walks the first of each month from the anchor month onward; a
	// cycle is emitted whenever the months elapsed since the anchor hit an
	// interval boundary.
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	cursor := anchor
	for steps := 0; ; steps++ {
		if steps >= maxProjectionSteps {
			return cycles, capError(p)
		}
		if types.MonthsElapsed(anchor, cursor)%interval == 0 {
			day := dueDay
			if last := types.LastDayOfMonth(cursor.Year(), cursor.Month()); day > last {
				day = last
			}
			date := time.Date(cursor.Year(), cursor.Month(), day, 0, 0, 0, 0, time.UTC)
			if date.After(horizon) {
				break
			}
			cycles = append(cycles, newPendingCycle(date, p))
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return cycles, nil
}

func newPendingCycle(date time.Time, p *plan.Plan) *ProjectedCycle {
	return &ProjectedCycle{
		Date:   date,
		Amount: p.Price,
		Status: types.CycleStatusPending,
	}
}

func capError(p *plan.Plan) error {
	return ierr.NewError("cycle projection iteration cap reached").
		WithHintf("Projection aborted after %d steps for frequency %s", maxProjectionSteps, p.Frequency).
		Mark(ierr.ErrSystem)
}
