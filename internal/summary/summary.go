// Package summary aggregates expense records into per-category totals.
package summary

import (
	"github.com/shopspring/decimal"

	"fjacquet/weekledger/internal/models"
)

// CategoryTotal is one row of a summary: a category and its exact sum.
type CategoryTotal struct {
	Category models.Category
	Total    decimal.Decimal
}

// Totals holds the per-category sums of one aggregation run. Every
// category is represented, zeros included. Sums are exact decimals;
// rounding to cents happens at display time only.
type Totals struct {
	byCategory map[models.Category]decimal.Decimal
	grand      decimal.Decimal
}

// Aggregate sums the given records per category. Records carrying a
// category outside the known set count toward CategoryOther, so no
// spending is ever dropped from the totals.
func Aggregate(records []models.Expense) Totals {
	byCategory := make(map[models.Category]decimal.Decimal, len(models.Categories()))
	for _, category := range models.Categories() {
		byCategory[category] = decimal.Zero
	}

	grand := decimal.Zero
	for _, record := range records {
		category := record.Category
		if !category.IsValid() {
			category = models.CategoryOther
		}
		byCategory[category] = byCategory[category].Add(record.Amount)
		grand = grand.Add(record.Amount)
	}

	return Totals{byCategory: byCategory, grand: grand}
}

// Get returns the exact sum for one category.
func (t Totals) Get(category models.Category) decimal.Decimal {
	total, ok := t.byCategory[category]
	if !ok {
		return decimal.Zero
	}
	return total
}

// Ordered returns one row per category in the fixed display order,
// zero rows included.
func (t Totals) Ordered() []CategoryTotal {
	rows := make([]CategoryTotal, 0, len(t.byCategory))
	for _, category := range models.Categories() {
		rows = append(rows, CategoryTotal{Category: category, Total: t.byCategory[category]})
	}
	return rows
}

// GrandTotal returns the exact sum over all records.
func (t Totals) GrandTotal() decimal.Decimal {
	return t.grand
}
