// Package week derives Monday-to-Sunday windows from an anchor date and
// filters expense records down to one window.
package week

import (
	"fjacquet/weekledger/internal/dateutils"
	"fjacquet/weekledger/internal/models"
)

// Window is one calendar week: Start is a Monday, End the following
// Sunday, seven days with both boundaries included. Windows are derived
// from an anchor on demand and never stored.
type Window struct {
	Start dateutils.Date `json:"start"`
	End   dateutils.Date `json:"end"`
}

// WindowFor returns the week containing the anchor date. Weeks start on
// Monday, so a Sunday anchor closes its window rather than opening the
// next one.
func WindowFor(anchor dateutils.Date) Window {
	// time.Weekday numbers Sunday as 0; shift so Monday counts as 0.
	offset := (int(anchor.Weekday()) + 6) % 7
	start := anchor.AddDays(-offset)
	return Window{Start: start, End: start.AddDays(6)}
}

// Next returns the window shifted one week forward.
func (w Window) Next() Window {
	return Window{Start: w.Start.AddDays(7), End: w.End.AddDays(7)}
}

// Previous returns the window shifted one week back.
func (w Window) Previous() Window {
	return Window{Start: w.Start.AddDays(-7), End: w.End.AddDays(-7)}
}

// Contains reports whether d falls inside the window, boundaries included.
func (w Window) Contains(d dateutils.Date) bool {
	return !d.Before(w.Start.Time) && !d.After(w.End.Time)
}

// Days returns the seven dates of the window in order.
func (w Window) Days() []dateutils.Date {
	days := make([]dateutils.Date, 7)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}
	return days
}

// String renders the window as "YYYY-MM-DD .. YYYY-MM-DD".
func (w Window) String() string {
	return w.Start.String() + " .. " + w.End.String()
}

// Filter returns the records whose date falls inside the window,
// boundaries included, preserving the input order. The input slice is
// never mutated.
func Filter(records []models.Expense, w Window) []models.Expense {
	filtered := make([]models.Expense, 0, len(records))
	for _, record := range records {
		if w.Contains(record.Date) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
