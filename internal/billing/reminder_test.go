package billing

import (
	"testing"
	"time"

	"github.com/coachbill/coachbill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateReminders_Window(t *testing.T) {
	today := date(2024, time.March, 10)
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.February, 10), Status: types.CycleStatusOverdue},
		{Date: date(2024, time.March, 10), Status: types.CycleStatusPending},
		{Date: date(2024, time.March, 11), Status: types.CycleStatusPending},
		{Date: date(2024, time.March, 15), Status: types.CycleStatusPending},
		{Date: date(2024, time.March, 16), Status: types.CycleStatusPending},
		{Date: date(2024, time.April, 10), Status: types.CycleStatusPaid},
	}

	reminders := EvaluateReminders(cycles, today, 5)

	require.Len(t, reminders, 3)
	assert.Equal(t, 0, reminders[0].DaysUntilDue)
	assert.Equal(t, "Due today", reminders[0].Message)
	assert.Equal(t, 1, reminders[1].DaysUntilDue)
	assert.Equal(t, "Due in 1 day", reminders[1].Message)
	assert.Equal(t, 5, reminders[2].DaysUntilDue)
	assert.Equal(t, "Due in 5 days", reminders[2].Message)
}

func TestEvaluateReminders_OnlyPendingCycles(t *testing.T) {
	today := date(2024, time.March, 10)
	cycles := []*ProjectedCycle{
		// Paid cycle inside the window: pre-paid cycles need no reminder.
		{Date: date(2024, time.March, 12), Status: types.CycleStatusPaid},
		// Overdue cycles surface through the overdue count, never reminders.
		{Date: date(2024, time.March, 9), Status: types.CycleStatusOverdue},
	}

	reminders := EvaluateReminders(cycles, today, 5)
	assert.Empty(t, reminders)
}

func TestEvaluateReminders_Containment(t *testing.T) {
	today := date(2024, time.March, 10)
	leadDays := 5

	sub := testSubscription(date(2024, time.January, 10), nil)
	p := testPlan("100", types.BILLING_FREQUENCY_WEEKLY, nil)
	cycles, err := ProjectCycles(sub, p, defaultParams(today))
	require.NoError(t, err)
	cycles = ClassifyCycles(cycles, today)

	for _, reminder := range EvaluateReminders(cycles, today, leadDays) {
		assert.Equal(t, types.CycleStatusPending, reminder.Cycle.Status)
		days := types.WholeDaysBetween(today, reminder.Cycle.Date)
		assert.GreaterOrEqual(t, days, 0)
		assert.LessOrEqual(t, days, leadDays)
	}
}

func TestEvaluateReminders_ZeroLeadDays(t *testing.T) {
	today := date(2024, time.March, 10)
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.March, 10), Status: types.CycleStatusPending},
		{Date: date(2024, time.March, 11), Status: types.CycleStatusPending},
	}

	reminders := EvaluateReminders(cycles, today, 0)
	require.Len(t, reminders, 1)
	assert.Equal(t, "Due today", reminders[0].Message)
}
