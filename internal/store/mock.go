package store

import (
	"fjacquet/weekledger/internal/models"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	Records []models.Expense

	// Error flags for testing error conditions
	LoadErr error
	SaveErr error

	// Saves records every successful Save call, newest last.
	Saves [][]models.Expense
}

// Load returns the mock records.
func (m *MockStore) Load() ([]models.Expense, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	// Return a copy to avoid external modifications
	out := make([]models.Expense, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

// Save replaces the mock records.
func (m *MockStore) Save(records []models.Expense) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	saved := make([]models.Expense, len(records))
	copy(saved, records)
	m.Records = saved
	m.Saves = append(m.Saves, saved)
	return nil
}

// SaveCount returns how many saves succeeded.
func (m *MockStore) SaveCount() int {
	return len(m.Saves)
}
