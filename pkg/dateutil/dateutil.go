package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// layouts accepted by ParseDate, tried in order
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses a calendar date written in any of the common layouts
// (ISO, RFC3339, dd/mm/yyyy, dd-mm-yyyy, "Jan 2, 2006").
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// DateOnly drops the time of day, keeping t's calendar date at midnight UTC
// so it compares cleanly with dates from ParseDate.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween returns the number of whole calendar months from one date to
// another. A partial final month, where the day of month of to is earlier
// than that of from, is not counted. Never negative.
func MonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// SIPInstalments counts monthly instalments paid from start to end,
// including the opening instalment on start itself.
func SIPInstalments(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return MonthsBetween(start, end) + 1
}

// YearsBetween calculates the number of years between two dates
func YearsBetween(from, to time.Time) float64 {
	duration := to.Sub(from)
	return duration.Hours() / 24 / 365.25
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}
