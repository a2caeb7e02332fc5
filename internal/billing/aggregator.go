package billing

import (
	"time"

	"github.com/coachbill/coachbill/internal/types"
	"github.com/samber/lo"
)

// Aggregate folds a classified cycle sequence into the subscriber-level
// financial signals. Overall is overdue as soon as one cycle is overdue,
// regular otherwise; the unknown state is decided upstream for subscribers
// with no plan linkage at all and never produced here.
func Aggregate(cycles []*ProjectedCycle, today time.Time) *FinancialStatus {
	overdueCount := lo.CountBy(cycles, func(c *ProjectedCycle) bool {
		return c.Status == types.CycleStatusOverdue
	})

	overall := types.FinancialStateRegular
	if overdueCount > 0 {
		overall = types.FinancialStateOverdue
	}

	refDate := types.DateOnly(today)
	nextCycle, _ := lo.Find(cycles, func(c *ProjectedCycle) bool {
		return !c.Date.Before(refDate)
	})

	return &FinancialStatus{
		Overall:      overall,
		OverdueCount: overdueCount,
		NextCycle:    nextCycle,
	}
}
