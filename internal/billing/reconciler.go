package billing

import (
	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/types"
)

// Reconcile pairs each projected cycle with at most one recorded payment.
// Matching runs in priority order, first match wins and a payment is consumed
// by at most one cycle:
//
//  1. exact date match on the payment's due date
//  2. month-reference fallback, for monthly-multiple cadences only: a payment
//     recorded against the cycle's calendar month. Weekly cadences skip this
//     because several weekly cycles can share a month.
//
// The input slices are never mutated; fresh cycle values are returned holding
// read-only links to the matched ledger records.
func Reconcile(cycles []*ProjectedCycle, payments []*payment.Payment, frequency types.BillingFrequency) []*ProjectedCycle {
	annotated := make([]*ProjectedCycle, len(cycles))
	consumed := make(map[int]bool, len(payments))

	for i, cycle := range cycles {
		next := *cycle
		if idx := matchExactDate(cycle, payments, consumed); idx >= 0 {
			next.Payment = payments[idx]
			consumed[idx] = true
		} else if !frequency.IsWeekly() {
			if idx := matchMonthReference(cycle, payments, consumed); idx >= 0 {
				next.Payment = payments[idx]
				consumed[idx] = true
			}
		}
		annotated[i] = &next
	}
	return annotated
}

func matchExactDate(cycle *ProjectedCycle, payments []*payment.Payment, consumed map[int]bool) int {
	for i, p := range payments {
		if consumed[i] || p.DueDate == nil {
			continue
		}
		if types.DateOnly(*p.DueDate).Equal(cycle.Date) {
			return i
		}
	}
	return -1
}

func matchMonthReference(cycle *ProjectedCycle, payments []*payment.Payment, consumed map[int]bool) int {
	for i, p := range payments {
		if consumed[i] || p.MonthReference == nil {
			continue
		}
		if types.SameYearMonth(*p.MonthReference, cycle.Date) {
			return i
		}
	}
	return -1
}
