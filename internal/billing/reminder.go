package billing

import (
	"fmt"
	"time"

	"github.com/coachbill/coachbill/internal/types"
)

// EvaluateReminders returns the pending cycles that fall inside the lead-time
// window: due today up to leadDays from the reference date. Paid and overdue
// cycles never produce reminders; overdue cycles surface through the
// aggregated overdue count instead.
func EvaluateReminders(cycles []*ProjectedCycle, today time.Time, leadDays int) []Reminder {
	reminders := make([]Reminder, 0)
	for _, cycle := range cycles {
		if cycle.Status != types.CycleStatusPending {
			continue
		}
		days := types.WholeDaysBetween(today, cycle.Date)
		if days < 0 || days > leadDays {
			continue
		}
		reminders = append(reminders, Reminder{
			Cycle:        cycle,
			DaysUntilDue: days,
			Message:      reminderMessage(days),
		})
	}
	return reminders
}

func reminderMessage(days int) string {
	switch days {
	case 0:
		return "Due today"
	case 1:
		return "Due in 1 day"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}
