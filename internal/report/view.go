// Package report renders expense views as tables or serialized exports.
package report

import (
	"fmt"

	"fjacquet/weekledger/internal/models"
	"fjacquet/weekledger/internal/summary"
	"fjacquet/weekledger/internal/week"
)

// Row is one expense line in a view. Amounts are plain fixed-point strings
// so exports stay machine readable; the table renderer adds the currency
// symbol.
type Row struct {
	Date        string `json:"date" yaml:"date" csv:"date"`
	Description string `json:"description" yaml:"description" csv:"description"`
	Category    string `json:"category" yaml:"category" csv:"category"`
	Amount      string `json:"amount" yaml:"amount" csv:"amount"`
}

// TotalRow is one category subtotal in a view.
type TotalRow struct {
	Category string `json:"category" yaml:"category" csv:"category"`
	Total    string `json:"total" yaml:"total" csv:"total"`
}

// View is the renderable form of a set of expenses: the rows, the per
// category totals in declaration order, and the grand total. It carries
// everything a chart or export consumer needs.
type View struct {
	Title      string     `json:"title" yaml:"title"`
	Window     string     `json:"window,omitempty" yaml:"window,omitempty"`
	Rows       []Row      `json:"expenses" yaml:"expenses"`
	Totals     []TotalRow `json:"totals" yaml:"totals"`
	GrandTotal string     `json:"grand_total" yaml:"grand_total"`
	Symbol     string     `json:"-" yaml:"-"`
}

// NewWeekView builds a View for the expenses of one calendar week.
func NewWeekView(window week.Window, records []models.Expense, totals summary.Totals, symbol string) View {
	view := newView(records, totals, symbol)
	view.Window = window.String()
	view.Title = fmt.Sprintf("Week %s (%d expenses)", window, len(records))
	return view
}

// NewLedgerView builds a View over the whole ledger in insertion order.
func NewLedgerView(records []models.Expense, symbol string) View {
	view := newView(records, summary.Aggregate(records), symbol)
	view.Title = fmt.Sprintf("Ledger (%d expenses)", len(records))
	return view
}

func newView(records []models.Expense, totals summary.Totals, symbol string) View {
	rows := make([]Row, 0, len(records))
	for _, expense := range records {
		rows = append(rows, Row{
			Date:        expense.Date.String(),
			Description: expense.Description,
			Category:    expense.Category.String(),
			Amount:      expense.Amount.StringFixed(2),
		})
	}

	ordered := totals.Ordered()
	totalRows := make([]TotalRow, 0, len(ordered))
	for _, total := range ordered {
		totalRows = append(totalRows, TotalRow{
			Category: total.Category.String(),
			Total:    total.Total.StringFixed(2),
		})
	}

	return View{
		Rows:       rows,
		Totals:     totalRows,
		GrandTotal: totals.GrandTotal().StringFixed(2),
		Symbol:     symbol,
	}
}
