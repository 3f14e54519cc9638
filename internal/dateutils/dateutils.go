// Package dateutils provides calendar date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the only date format the ledger accepts and emits.
const DateLayoutISO = "2006-01-02"

// Date is a calendar date with no time-of-day component. The embedded
// time.Time is always midnight UTC, so the inherited Before/After/Equal
// comparisons are date-only no matter how the source time was produced.
type Date struct {
	time.Time
}

func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDate returns the date for the given calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location, dropping the clock.
func DateOf(t time.Time) Date {
	return Date{normalize(t)}
}

// Today returns the current calendar date in the local timezone.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a strict ISO-8601 date (YYYY-MM-DD). Surrounding
// whitespace is tolerated; any other layout is an error.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(DateLayoutISO, s)
	if err != nil {
		return Date{}, fmt.Errorf("unable to parse date %q: expected %s", s, DateLayoutISO)
	}
	return Date{normalize(t)}, nil
}

// AddDays returns the date n calendar days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// String formats the date as YYYY-MM-DD, or an empty string for the zero date.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(DateLayoutISO)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, or null when zero.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Time.Format(DateLayoutISO))), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string. Null and the empty string
// yield the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayoutISO, str)
	if err != nil {
		return fmt.Errorf("unable to parse date: %s", str)
	}
	d.Time = normalize(t)
	return nil
}
