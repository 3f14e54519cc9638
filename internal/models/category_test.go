package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_OrderIsStable(t *testing.T) {
	expected := []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealth,
		CategoryShopping,
		CategoryOther,
	}

	assert.Equal(t, expected, Categories())
}

func TestCategories_ReturnsCopy(t *testing.T) {
	first := Categories()
	first[0] = Category("Mutated")

	assert.Equal(t, CategoryFood, Categories()[0])
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   Category
		expectedOk bool
	}{
		{"canonical", "Food", CategoryFood, true},
		{"lower case", "food", CategoryFood, true},
		{"upper case", "UTILITIES", CategoryUtilities, true},
		{"surrounding whitespace", " Health ", CategoryHealth, true},
		{"other itself", "Other", CategoryOther, true},
		{"unknown", "Groceries", CategoryOther, false},
		{"empty", "", CategoryOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := ParseCategory(tt.input)

			assert.Equal(t, tt.expected, category)
			assert.Equal(t, tt.expectedOk, ok)
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryShopping.IsValid())
	assert.True(t, CategoryOther.IsValid())
	assert.False(t, Category("Misc").IsValid())
	assert.False(t, Category("").IsValid())
}
