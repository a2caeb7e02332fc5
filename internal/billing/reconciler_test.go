package billing

import (
	"testing"
	"time"

	"github.com/coachbill/coachbill/internal/domain/payment"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_ExactDateMatch(t *testing.T) {
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.January, 10)},
		{Date: date(2024, time.February, 10)},
	}
	paid := testPayment(lo.ToPtr(date(2024, time.February, 10)), nil)

	annotated := Reconcile(cycles, []*payment.Payment{paid}, types.BILLING_FREQUENCY_MONTHLY)

	require.Len(t, annotated, 2)
	assert.Nil(t, annotated[0].Payment)
	require.NotNil(t, annotated[1].Payment)
	assert.Equal(t, paid.ID, annotated[1].Payment.ID)
}

func TestReconcile_MonthReferenceFallback(t *testing.T) {
	// A payment recorded against "February" and not any exact projected day
	// still settles the February cycle.
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.January, 10)},
		{Date: date(2024, time.February, 10)},
	}
	paid := testPayment(nil, lo.ToPtr(date(2024, time.February, 15)))

	annotated := Reconcile(cycles, []*payment.Payment{paid}, types.BILLING_FREQUENCY_MONTHLY)

	assert.Nil(t, annotated[0].Payment)
	require.NotNil(t, annotated[1].Payment)
	assert.Equal(t, paid.ID, annotated[1].Payment.ID)
}

func TestReconcile_ExactDateBeatsMonthReference(t *testing.T) {
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.February, 10)},
	}
	byMonth := testPayment(nil, lo.ToPtr(date(2024, time.February, 1)))
	byDate := testPayment(lo.ToPtr(date(2024, time.February, 10)), nil)

	annotated := Reconcile(cycles, []*payment.Payment{byMonth, byDate}, types.BILLING_FREQUENCY_MONTHLY)

	require.NotNil(t, annotated[0].Payment)
	assert.Equal(t, byDate.ID, annotated[0].Payment.ID)
}

func TestReconcile_PaymentConsumedOnce(t *testing.T) {
	// Two cycles in the same month: a single month-referenced payment settles
	// only the first.
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.February, 10)},
		{Date: date(2024, time.February, 25)},
	}
	paid := testPayment(nil, lo.ToPtr(date(2024, time.February, 1)))

	annotated := Reconcile(cycles, []*payment.Payment{paid}, types.BILLING_FREQUENCY_MONTHLY)

	require.NotNil(t, annotated[0].Payment)
	assert.Nil(t, annotated[1].Payment)
}

func TestReconcile_WeeklySkipsMonthFallback(t *testing.T) {
	// Several weekly cycles share March; month references must not match any
	// of them, only exact dates count.
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.March, 4)},
		{Date: date(2024, time.March, 11)},
		{Date: date(2024, time.March, 18)},
	}
	byMonthA := testPayment(nil, lo.ToPtr(date(2024, time.March, 1)))
	byMonthB := testPayment(nil, lo.ToPtr(date(2024, time.March, 15)))
	byDate := testPayment(lo.ToPtr(date(2024, time.March, 11)), nil)

	annotated := Reconcile(cycles, []*payment.Payment{byMonthA, byMonthB, byDate}, types.BILLING_FREQUENCY_WEEKLY)

	assert.Nil(t, annotated[0].Payment)
	require.NotNil(t, annotated[1].Payment)
	assert.Equal(t, byDate.ID, annotated[1].Payment.ID)
	assert.Nil(t, annotated[2].Payment)
}

func TestReconcile_MonthReferenceDistinguishesYears(t *testing.T) {
	cycles := []*ProjectedCycle{
		{Date: date(2025, time.February, 10)},
	}
	lastYear := testPayment(nil, lo.ToPtr(date(2024, time.February, 15)))

	annotated := Reconcile(cycles, []*payment.Payment{lastYear}, types.BILLING_FREQUENCY_MONTHLY)
	assert.Nil(t, annotated[0].Payment)
}

func TestReconcile_InputsNotMutated(t *testing.T) {
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.February, 10)},
	}
	paid := testPayment(lo.ToPtr(date(2024, time.February, 10)), nil)
	payments := []*payment.Payment{paid}

	annotated := Reconcile(cycles, payments, types.BILLING_FREQUENCY_MONTHLY)

	require.NotNil(t, annotated[0].Payment)
	// The source cycle slice stays untouched; only the returned copies are
	// annotated.
	assert.Nil(t, cycles[0].Payment)
	assert.Len(t, payments, 1)
}

func TestReconcile_PaymentDueDateTimeOfDayIgnored(t *testing.T) {
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.February, 10)},
	}
	dueAt := time.Date(2024, time.February, 10, 18, 30, 0, 0, time.UTC)
	paid := testPayment(&dueAt, nil)

	annotated := Reconcile(cycles, []*payment.Payment{paid}, types.BILLING_FREQUENCY_MONTHLY)
	require.NotNil(t, annotated[0].Payment)
}
