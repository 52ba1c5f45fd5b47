// Package dates holds the calendar-key conventions shared by the journal flow,
// the store queries and the book typesetter. Days are keyed YYYY-MM-DD and
// months YYYY-MM; both sort lexicographically in chronological order.
package dates

import (
	"fmt"
	"regexp"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// DayKey returns the ISO day key for t.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// MonthKey returns the YYYY-MM key for t.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

// ValidMonthKey reports whether key is a well-formed YYYY-MM month key.
func ValidMonthKey(key string) bool {
	return monthKeyPattern.MatchString(key)
}

// MonthBounds returns the first and last day keys of the given month.
// It fails on malformed keys so callers reject bad input before any layout
// or store work happens.
func MonthBounds(key string) (first, last string, err error) {
	if !ValidMonthKey(key) {
		return "", "", fmt.Errorf("invalid month key %q, want YYYY-MM", key)
	}
	start, err := time.Parse(monthLayout, key)
	if err != nil {
		return "", "", fmt.Errorf("invalid month key %q: %w", key, err)
	}
	end := start.AddDate(0, 1, -1)
	return start.Format(dayLayout), end.Format(dayLayout), nil
}

// MonthBoundsAt returns the first and last day keys of the month containing t.
func MonthBoundsAt(t time.Time) (first, last string) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format(dayLayout), end.Format(dayLayout)
}

// MonthName renders a month key as "January 2006". It assumes a key already
// validated by ValidMonthKey and falls back to the raw key otherwise.
func MonthName(key string) string {
	t, err := time.Parse(monthLayout, key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// DisplayDate renders a day key as "Monday, January 2" for entry headings.
func DisplayDate(dayKey string) string {
	t, err := time.Parse(dayLayout, dayKey)
	if err != nil {
		return dayKey
	}
	return t.Format("Monday, January 2")
}

// DaysInMonth returns the number of calendar days in the given month key,
// or 0 for a malformed key.
func DaysInMonth(key string) int {
	t, err := time.Parse(monthLayout, key)
	if err != nil {
		return 0
	}
	return t.AddDate(0, 1, -1).Day()
}
