// Package ledger holds the in-memory expense ledger and the service
// that coordinates mutations, week navigation and persistence.
package ledger

import (
	"fjacquet/weekledger/internal/models"
)

// Ledger is the ordered in-memory collection of expense records,
// newest insertion first.
type Ledger struct {
	records []models.Expense
}

// NewLedger creates a ledger preloaded with records in their stored order.
func NewLedger(records []models.Expense) *Ledger {
	copied := make([]models.Expense, len(records))
	copy(copied, records)
	return &Ledger{records: copied}
}

// Add prepends a record, keeping the newest insertion first.
func (l *Ledger) Add(record models.Expense) {
	l.records = append([]models.Expense{record}, l.records...)
}

// RemoveByID deletes the record with the given id and reports whether
// anything was removed. An unknown id is a no-op, not an error.
func (l *Ledger) RemoveByID(id string) bool {
	for i, record := range l.records {
		if record.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// Records returns a copy of the ledger in insertion order.
func (l *Ledger) Records() []models.Expense {
	out := make([]models.Expense, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// ReplaceAll swaps in a new record set.
func (l *Ledger) ReplaceAll(records []models.Expense) {
	copied := make([]models.Expense, len(records))
	copy(copied, records)
	l.records = copied
}
