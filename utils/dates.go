// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// TomorrowRange returns the [start, end) window covering the calendar
// day after t, used when selecting appointments to remind.
func TomorrowRange(t time.Time) (time.Time, time.Time) {
	start := BeginningOfDay(t).AddDate(0, 0, 1)
	return start, start.AddDate(0, 0, 1)
}
