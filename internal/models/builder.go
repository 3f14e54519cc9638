package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/weekledger/internal/currencyutils"
	"fjacquet/weekledger/internal/dateutils"
)

// ExpenseBuilder provides a fluent API for constructing validated
// expense records. Raw string inputs are held as given and only
// interpreted by Build, so the validation order is fixed no matter in
// which order the setters were called.
type ExpenseBuilder struct {
	description string
	amount      decimal.Decimal
	amountStr   string
	amountRaw   bool
	category    Category
	date        dateutils.Date
	dateStr     string
	dateRaw     bool
}

// NewExpenseBuilder creates a builder with an empty record. The
// category defaults to CategoryOther.
func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{
		amount:   decimal.Zero,
		category: CategoryOther,
	}
}

// WithDescription sets the expense description.
func (b *ExpenseBuilder) WithDescription(description string) *ExpenseBuilder {
	b.description = description
	return b
}

// WithAmount sets a pre-parsed amount.
func (b *ExpenseBuilder) WithAmount(amount decimal.Decimal) *ExpenseBuilder {
	b.amount = amount
	b.amountRaw = false
	return b
}

// WithAmountString sets the amount from raw user input, interpreted by Build.
func (b *ExpenseBuilder) WithAmountString(amountStr string) *ExpenseBuilder {
	b.amountStr = amountStr
	b.amountRaw = true
	return b
}

// WithCategory sets a pre-parsed category.
func (b *ExpenseBuilder) WithCategory(category Category) *ExpenseBuilder {
	if category.IsValid() {
		b.category = category
	} else {
		b.category = CategoryOther
	}
	return b
}

// WithCategoryString sets the category from raw user input. Unknown
// names fold into CategoryOther; this never fails validation.
func (b *ExpenseBuilder) WithCategoryString(categoryStr string) *ExpenseBuilder {
	b.category, _ = ParseCategory(categoryStr)
	return b
}

// WithDate sets a pre-parsed date.
func (b *ExpenseBuilder) WithDate(date dateutils.Date) *ExpenseBuilder {
	b.date = date
	b.dateRaw = false
	return b
}

// WithDateString sets the date from raw user input, interpreted by Build.
func (b *ExpenseBuilder) WithDateString(dateStr string) *ExpenseBuilder {
	b.dateStr = dateStr
	b.dateRaw = true
	return b
}

// Build validates the inputs and returns the final record. Checks run
// in a fixed order and the first failure wins: description, amount
// syntax, amount sign, date. The returned error wraps one of the
// validation sentinels. A fresh time-ordered ID is assigned on success.
func (b *ExpenseBuilder) Build() (Expense, error) {
	description := strings.TrimSpace(b.description)
	if description == "" {
		return Expense{}, &ValidationError{Field: "description", Err: ErrEmptyDescription}
	}

	amount := b.amount
	if b.amountRaw {
		parsed, err := currencyutils.ParseAmount(b.amountStr)
		if err != nil {
			return Expense{}, &ValidationError{Field: "amount", Value: b.amountStr, Err: ErrAmountNotNumeric}
		}
		amount = parsed
	}
	if !amount.IsPositive() {
		return Expense{}, &ValidationError{Field: "amount", Value: amount.String(), Err: ErrAmountNotPositive}
	}

	date := b.date
	if b.dateRaw {
		parsed, err := dateutils.ParseDate(b.dateStr)
		if err != nil {
			return Expense{}, &ValidationError{Field: "date", Value: b.dateStr, Err: ErrDateInvalid}
		}
		date = parsed
	}
	if date.IsZero() {
		return Expense{}, &ValidationError{Field: "date", Err: ErrDateInvalid}
	}

	return Expense{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Description: description,
		Amount:      amount,
		Category:    b.category,
		Date:        date,
	}, nil
}
