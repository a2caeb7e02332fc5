package types

import (
	"time"
)

// DateOnly strips the time-of-day from t and pins it to UTC. All cycle dates and
// date comparisons in the billing engine operate at this day precision so the
// projection anchor and the generated dates cannot drift across timezones.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	firstOfNextMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNextMonth.AddDate(0, 0, -1).Day()
}

// AddClampedDate adds the given years, months and days to t. The month
// component clamps the day-of-month to the last valid day of the target month,
// so adding one month to Jan 31 lands on Feb 28/29 instead of rolling over
// into March. The day component is applied afterwards as plain calendar days
// and crosses month boundaries normally.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	newD := d
	if lastDay := LastDayOfMonth(newY, newM); newD > lastDay {
		newD = lastDay
	}

	result := time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
	if days != 0 {
		result = result.AddDate(0, 0, days)
	}
	return result
}

// SameYearMonth reports whether a and b fall in the same calendar month and year.
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// WholeDaysBetween returns the number of whole calendar days from 'from' to 'to',
// negative when 'to' is earlier. Both operands are reduced to day precision first.
func WholeDaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// MonthsElapsed returns the number of calendar months from 'from' to 'to',
// ignoring the day-of-month of both operands.
func MonthsElapsed(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
