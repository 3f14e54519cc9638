package models

import (
	"errors"
	"fmt"
)

// Validation sentinels, matchable with errors.Is through the
// ValidationError wrapper returned by Build.
var (
	ErrEmptyDescription  = errors.New("description is empty")
	ErrAmountNotNumeric  = errors.New("amount is not a valid number")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrDateInvalid       = errors.New("date is missing or not a valid calendar date")
)

// ValidationError reports which expense field failed validation and why.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid expense %s '%s': %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid expense %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
