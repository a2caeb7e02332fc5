package types

// Status is the lifecycle status of a stored record
type Status string

const (
	StatusPublished Status = "published"
	StatusDeleted   Status = "deleted"
	StatusArchived  Status = "archived"
)

// CycleStatus is the settlement state of a single projected billing cycle
type CycleStatus string

const (
	CycleStatusPaid    CycleStatus = "paid"
	CycleStatusPending CycleStatus = "pending"
	CycleStatusOverdue CycleStatus = "overdue"
)

// FinancialState is the subscriber-level rollup derived from classified cycles.
// FinancialStateUnknown means no plan/subscription is configured at all, which is
// distinct from a configured subscriber that is current on payments.
type FinancialState string

const (
	FinancialStateRegular FinancialState = "regular"
	FinancialStateOverdue FinancialState = "overdue"
	FinancialStateUnknown FinancialState = "unknown"
)
