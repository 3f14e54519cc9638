package models

import "strings"

// Category classifies an expense. The set is closed: every expense
// carries exactly one of the eight values below, and anything
// unrecognized is folded into CategoryOther rather than rejected.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryHousing       Category = "Housing"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryHealth        Category = "Health"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// categoryOrder is the single source of display and aggregation order.
var categoryOrder = [...]Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealth,
	CategoryShopping,
	CategoryOther,
}

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// ParseCategory matches s against the known categories, ignoring case
// and surrounding whitespace. Unknown values map to CategoryOther with
// ok set to false.
func ParseCategory(s string) (Category, bool) {
	name := strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(name, string(c)) {
			return c, true
		}
	}
	return CategoryOther, false
}

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the canonical category name.
func (c Category) String() string {
	return string(c)
}
