// Package models defines the expense record, its category enumeration
// and the validating builder that is the only way to construct records.
package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/weekledger/internal/dateutils"
)

// Expense is one recorded spending entry. Records are immutable once
// built: an edit is modeled as delete plus re-add, never an in-place
// change. The JSON shape below is also the persisted shape.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Date        dateutils.Date  `json:"date"`
}
