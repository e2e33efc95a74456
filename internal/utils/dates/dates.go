// Package dates holds calendar-date helpers. A calendar date is a time.Time
// at midnight in the location it belongs to; months are identified by their
// first day.
package dates

import (
	"fmt"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// YearMonthLayout is the wire format for months (e.g. 2024-03).
const YearMonthLayout = "2006-01"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date builds a calendar date. Out-of-range days overflow into the next month.
func Date(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Truncate drops the clock part of t, keeping its location.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day(), t.Location())
}

// In re-expresses the calendar date of t in loc without shifting the day.
func In(t time.Time, loc *time.Location) time.Time {
	return Date(t.Year(), t.Month(), t.Day(), loc)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1, t.Location())
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return MonthEnd(t).Day()
}

// AddMonths shifts the first day of t's month by n months.
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// DaysBetween returns the whole number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Advance moves date forward by one interval of freq. Month and year steps
// overflow the way calendar arithmetic does: Jan 31 + 1 month is Mar 2 (or 3).
func Advance(date time.Time, freq domain.Frequency) time.Time {
	switch freq {
	case domain.FrequencyWeekly:
		return date.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		return date.AddDate(0, 1, 0)
	case domain.FrequencyYearly:
		return date.AddDate(1, 0, 0)
	default:
		return date
	}
}

// ParseYearMonth parses "YYYY-MM" into the first day of that month in loc.
func ParseYearMonth(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(YearMonthLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}
	return t, nil
}

// ParseDate parses "YYYY-MM-DD" into a calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}
