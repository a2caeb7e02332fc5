package types

import (
	"testing"
)

func TestBillingFrequency_IntervalMonths(t *testing.T) {
	tests := []struct {
		frequency BillingFrequency
		want      int
	}{
		{BILLING_FREQUENCY_WEEKLY, 0},
		{BILLING_FREQUENCY_MONTHLY, 1},
		{BILLING_FREQUENCY_BIMONTHLY, 2},
		{BILLING_FREQUENCY_QUARTERLY, 3},
		{BILLING_FREQUENCY_SEMIANNUAL, 6},
		{BILLING_FREQUENCY_ANNUAL, 12},
	}

	for _, tt := range tests {
		if got := tt.frequency.IntervalMonths(); got != tt.want {
			t.Errorf("IntervalMonths(%s) = %d, want %d", tt.frequency, got, tt.want)
		}
	}
}

func TestBillingFrequency_Validate(t *testing.T) {
	for _, f := range []BillingFrequency{
		BILLING_FREQUENCY_WEEKLY,
		BILLING_FREQUENCY_MONTHLY,
		BILLING_FREQUENCY_BIMONTHLY,
		BILLING_FREQUENCY_QUARTERLY,
		BILLING_FREQUENCY_SEMIANNUAL,
		BILLING_FREQUENCY_ANNUAL,
	} {
		if err := f.Validate(); err != nil {
			t.Errorf("Validate(%s) returned error: %v", f, err)
		}
	}

	if err := BillingFrequency("FORTNIGHTLY").Validate(); err == nil {
		t.Error("expected error for unsupported frequency")
	}
}
