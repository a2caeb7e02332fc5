package types

import (
	ierr "github.com/coachbill/coachbill/internal/errors"
)

// BillingFrequency is the cadence at which a plan's charges recur.
// Every cadence except WEEKLY is a whole multiple of calendar months.
type BillingFrequency string

const (
	BILLING_FREQUENCY_WEEKLY     BillingFrequency = "WEEKLY"
	BILLING_FREQUENCY_MONTHLY    BillingFrequency = "MONTHLY"
	BILLING_FREQUENCY_BIMONTHLY  BillingFrequency = "BIMONTHLY"
	BILLING_FREQUENCY_QUARTERLY  BillingFrequency = "QUARTERLY"
	BILLING_FREQUENCY_SEMIANNUAL BillingFrequency = "SEMIANNUAL"
	BILLING_FREQUENCY_ANNUAL     BillingFrequency = "ANNUAL"
)

var billingFrequencyIntervalMonths = map[BillingFrequency]int{
	BILLING_FREQUENCY_MONTHLY:    1,
	BILLING_FREQUENCY_BIMONTHLY:  2,
	BILLING_FREQUENCY_QUARTERLY:  3,
	BILLING_FREQUENCY_SEMIANNUAL: 6,
	BILLING_FREQUENCY_ANNUAL:     12,
}

func (f BillingFrequency) Validate() error {
	if f == BILLING_FREQUENCY_WEEKLY {
		return nil
	}
	if _, ok := billingFrequencyIntervalMonths[f]; !ok {
		return ierr.NewError("invalid billing frequency").
			WithHintf("Billing frequency %s is not supported", f).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (f BillingFrequency) IsWeekly() bool {
	return f == BILLING_FREQUENCY_WEEKLY
}

// IntervalMonths returns the month multiple for the frequency, 0 for WEEKLY.
func (f BillingFrequency) IntervalMonths() int {
	return billingFrequencyIntervalMonths[f]
}
