package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter.
const (
	FieldFile        = "file_path"
	FieldExpenseID   = "expense_id"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldAnchor      = "anchor"
	FieldWindow      = "window"
	FieldFormat      = "format"
	FieldModel       = "model"
	FieldReason      = "reason"
	FieldCount       = "count"
	FieldError       = "error"
)
