package timetable

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"schedulebot/pkg/telegram/parser"
)

const (
	placeholder = "—"

	labelToday    = "Сегодня"
	labelTomorrow = "Завтра"
	notFound      = "Расписание не найдено."
)

// Options tune the rendered text.
type Options struct {
	// Groups adds a line with the student groups of every event.
	Groups bool
}

// Format renders the events of day as a Telegram Markdown message.
// today decides whether the header says today, tomorrow or the date itself.
func Format(day, today time.Time, events []Event, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Расписание на %s:\n\n", parser.Bold(Label(day, today)))

	selected := Select(events, day)
	if len(selected) == 0 {
		sb.WriteString(notFound)
		return sb.String()
	}

	for _, event := range selected {
		fmt.Fprintln(&sb, parser.Bold(fmt.Sprintf("%s-%s: %s", event.Start(), event.End(), event.Subject())))
		fmt.Fprintf(&sb, "Учитель: %s\n", parser.Escape(event.Teacher()))
		fmt.Fprintf(&sb, "Класс: %s\n", parser.Escape(event.Room()))
		if opts.Groups {
			fmt.Fprintf(&sb, "Группы: %s\n", parser.Escape(event.Groups()))
		}
		sb.WriteByte('\n')
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Select keeps the events that take place on day, ordered by start time.
func Select(events []Event, day time.Time) []Event {
	date := day.Format(isoDate)
	var selected []Event
	for _, event := range events {
		if event.Day() == date {
			selected = append(selected, event)
		}
	}
	slices.SortStableFunc(selected, func(a, b Event) int {
		return cmp.Compare(a.TimeStart, b.TimeStart)
	})
	return selected
}

// Label names day relative to today.
func Label(day, today time.Time) string {
	switch date := day.Format(isoDate); date {
	case today.Format(isoDate):
		return labelToday
	case today.AddDate(0, 0, 1).Format(isoDate):
		return labelTomorrow
	default:
		return date
	}
}

// Formatter fetches the timetable and renders a single day of it.
type Formatter struct {
	Source   Source
	Location *time.Location
	Options  Options

	// Now defaults to time.Now.
	Now func() time.Time
}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// Today returns the current calendar day in the formatter's location.
func (f *Formatter) Today() time.Time {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return Today(now(), f.location())
}

// ParseDay parses a YYYY-MM-DD date in the formatter's location.
func (f *Formatter) ParseDay(s string) (time.Time, error) {
	return ParseDay(s, f.location())
}

// Render fetches the timetable once and formats day. Nothing is cached between calls.
func (f *Formatter) Render(ctx context.Context, day time.Time) (string, error) {
	events, err := f.Source.Events(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching timetable for %s: %w", day.Format(isoDate), err)
	}
	return Format(day, f.Today(), events, f.Options), nil
}
