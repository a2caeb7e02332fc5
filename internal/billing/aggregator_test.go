package billing

import (
	"testing"
	"time"

	"github.com/coachbill/coachbill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_OverdueRollup(t *testing.T) {
	today := date(2024, time.March, 10)
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.January, 10), Status: types.CycleStatusOverdue},
		{Date: date(2024, time.February, 10), Status: types.CycleStatusOverdue},
		{Date: date(2024, time.March, 10), Status: types.CycleStatusPending},
		{Date: date(2024, time.April, 10), Status: types.CycleStatusPending},
	}

	status := Aggregate(cycles, today)

	assert.Equal(t, types.FinancialStateOverdue, status.Overall)
	assert.Equal(t, 2, status.OverdueCount)
	require.NotNil(t, status.NextCycle)
	// The cycle due today counts as the next one, not the April cycle.
	assert.Equal(t, date(2024, time.March, 10), status.NextCycle.Date)
}

func TestAggregate_RegularWhenNothingOverdue(t *testing.T) {
	today := date(2024, time.March, 10)
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.January, 10), Status: types.CycleStatusPaid},
		{Date: date(2024, time.February, 10), Status: types.CycleStatusPaid},
		{Date: date(2024, time.April, 10), Status: types.CycleStatusPending},
	}

	status := Aggregate(cycles, today)

	assert.Equal(t, types.FinancialStateRegular, status.Overall)
	assert.Equal(t, 0, status.OverdueCount)
	require.NotNil(t, status.NextCycle)
	assert.Equal(t, date(2024, time.April, 10), status.NextCycle.Date)
}

func TestAggregate_NoFutureCycle(t *testing.T) {
	today := date(2024, time.March, 10)
	cycles := []*ProjectedCycle{
		{Date: date(2024, time.January, 10), Status: types.CycleStatusPaid},
	}

	status := Aggregate(cycles, today)

	assert.Equal(t, types.FinancialStateRegular, status.Overall)
	assert.Nil(t, status.NextCycle)
}

func TestAggregate_EmptyCycles(t *testing.T) {
	status := Aggregate([]*ProjectedCycle{}, date(2024, time.March, 10))

	assert.Equal(t, types.FinancialStateRegular, status.Overall)
	assert.Equal(t, 0, status.OverdueCount)
	assert.Nil(t, status.NextCycle)
}
