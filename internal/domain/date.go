package domain

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by filters and JSON output.
const DateLayout = "2006-01-02"

// Layouts tried in order by ParseDate. Month-first slash dates come before
// day-first ones; the day-first layouts only match when the month-first
// reading is impossible (e.g. 25/03/2025).
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
}

// ParseDate leniently parses a date cell. It returns nil for empty or
// unparseable input and never fails.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t
		}
	}

	return nil
}

// Day truncates t to its calendar date (midnight UTC).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DurationDays returns the whole number of days between start and end,
// rounded down, or nil when either end is missing.
func DurationDays(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}

	days := int(math.Floor(end.Sub(*start).Hours() / 24))
	return &days
}
