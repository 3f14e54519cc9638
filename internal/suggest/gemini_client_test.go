package suggest

import (
	"context"
	"testing"

	"fjacquet/weekledger/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseCategoryResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected models.Category
	}{
		{
			name:     "structured answer",
			response: "Category: Food",
			expected: models.CategoryFood,
		},
		{
			name:     "structured answer with brackets",
			response: "Category: [Transport]",
			expected: models.CategoryTransport,
		},
		{
			name:     "structured answer lower case",
			response: "category line ignored\nCategory: health",
			expected: models.CategoryHealth,
		},
		{
			name:     "free text containing a category name",
			response: "I would file this under Entertainment given the venue.",
			expected: models.CategoryEntertainment,
		},
		{
			name:     "structured answer with unknown name falls back to scan",
			response: "Category: Shopping spree",
			expected: models.CategoryShopping,
		},
		{
			name:     "nothing recognizable",
			response: "I am not sure about this one.",
			expected: models.CategoryOther,
		},
		{
			name:     "empty response",
			response: "",
			expected: models.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCategoryResponse(tt.response))
		})
	}
}

func TestGeminiClient_MissingAPIKey(t *testing.T) {
	client := NewGeminiClient("", "gemini-2.0-flash", nil)

	_, err := client.SuggestCategory(context.Background(), "coffee")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
