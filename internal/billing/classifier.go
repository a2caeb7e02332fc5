package billing

import (
	"time"

	"github.com/coachbill/coachbill/internal/types"
)

// Classify returns the settlement state of a single annotated cycle relative
// to the reference date. A matched payment always wins, even for future-dated
// cycles paid in advance. An unpaid cycle is overdue only when its date is
// strictly before the reference date, so a cycle due today stays pending
// until the day has passed.
func Classify(cycle *ProjectedCycle, today time.Time) types.CycleStatus {
	if cycle.Payment != nil {
		return types.CycleStatusPaid
	}
	if cycle.Date.Before(types.DateOnly(today)) {
		return types.CycleStatusOverdue
	}
	return types.CycleStatusPending
}

// ClassifyCycles applies Classify across the sequence, returning fresh cycle
// values with Status set.
func ClassifyCycles(cycles []*ProjectedCycle, today time.Time) []*ProjectedCycle {
	classified := make([]*ProjectedCycle, len(cycles))
	for i, cycle := range cycles {
		next := *cycle
		next.Status = Classify(cycle, today)
		classified[i] = &next
	}
	return classified
}
