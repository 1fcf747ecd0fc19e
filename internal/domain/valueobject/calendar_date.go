// Package valueobject contains domain value objects for the Village Finance system.
package valueobject

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableDate is returned when a date value matches none of the accepted encodings.
var ErrUnparseableDate = errors.New("unparseable date")

// isoLayouts are tried in order before the positional fallback.
// US month-first layouts are deliberately absent: "05/03/2024" must reach the DD-MM-YYYY rule.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// maxYear keeps String() four digits wide so stored dates parse back to themselves.
const maxYear = 9999

// CalendarDate is a civil date without time of day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the calendar date of t as seen in t's own location.
func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseCalendarDate normalizes a loosely formatted date value.
//
// ISO-8601/RFC strings are accepted first. Anything else is split on '-' or '/'
// into exactly three numeric components; a four-digit first component means
// YYYY-MM-DD, otherwise the value is read as DD-MM-YYYY. Out-of-range months
// or days fail with ErrUnparseableDate.
func ParseCalendarDate(raw string) (CalendarDate, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return CalendarDate{}, ErrUnparseableDate
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NewCalendarDate(t), nil
		}
	}

	parts := strings.FieldsFunc(value, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 || strings.Count(value, "-")+strings.Count(value, "/") != 2 {
		return CalendarDate{}, ErrUnparseableDate
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, ok := parseDigits(p)
		if !ok {
			return CalendarDate{}, ErrUnparseableDate
		}
		nums[i] = n
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	date := CalendarDate{Year: year, Month: time.Month(month), Day: day}
	if !date.valid() {
		return CalendarDate{}, ErrUnparseableDate
	}
	return date, nil
}

// Time returns the date at midnight UTC.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier when n is negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.Time().AddDate(0, 0, n))
}

// ISOWeek returns the ISO-8601 week-year and week number of the date.
func (d CalendarDate) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) valid() bool {
	if d.Year < 0 || d.Year > maxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return d.Day <= lastDay
}

// parseDigits accepts only non-empty ASCII digit strings; strconv.Atoi alone would also take a sign.
func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
