package timetable

import (
	"time"
)

const isoDate = time.DateOnly

// Today returns midnight of the calendar day now falls on in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// ParseDay parses a strict YYYY-MM-DD date. Out of range months and days are rejected.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(isoDate, s, loc)
}

// Monday returns the Monday of the week day belongs to. Weeks start on Monday.
func Monday(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WorkWeek returns Monday through Friday of the week day belongs to.
func WorkWeek(day time.Time) []time.Time {
	monday := Monday(day)
	days := make([]time.Time, 5)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}
