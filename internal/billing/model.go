// Package billing implements the recurring charge projection and reconciliation
// engine: a pipeline of pure functions that derives a subscription's billing
// cycles from its plan, matches them against the payment ledger, classifies
// each cycle's settlement state and folds the result into subscriber-level
// signals. Nothing in this package performs I/O or reads the system clock; the
// reference date is injected everywhere so every computation is deterministic
// and safe to rerun.
package billing

import (
	"time"

	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/shopspring/decimal"
)

// ProjectedCycle is one expected charge in a subscription's billing sequence.
// Cycles are recomputed on every read and never persisted. Payment is a
// read-only link back to a ledger record supplied by the caller; the cycle
// does not own it.
type ProjectedCycle struct {
	Date    time.Time         `json:"date"`
	Amount  decimal.Decimal   `json:"amount"`
	Status  types.CycleStatus `json:"status"`
	Payment *payment.Payment  `json:"payment,omitempty"`
}

// FinancialStatus is the subscriber-level rollup of a classified cycle sequence.
type FinancialStatus struct {
	Overall      types.FinancialState `json:"overall"`
	OverdueCount int                  `json:"overdue_count"`
	// NextCycle is the first cycle falling on or after the reference date,
	// nil when the projection produced nothing ahead of it.
	NextCycle *ProjectedCycle `json:"next_cycle,omitempty"`
}

// Reminder is a pending cycle inside the reminder lead-time window.
type Reminder struct {
	Cycle        *ProjectedCycle `json:"cycle"`
	DaysUntilDue int             `json:"days_until_due"`
	Message      string          `json:"message"`
}
