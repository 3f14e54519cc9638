package suggest

import (
	"context"

	"fjacquet/weekledger/internal/models"
)

// AIClient defines the interface for AI-based category suggestions.
// This abstraction allows the core suggestion logic to be tested independently
// of external API calls and provides flexibility in choosing AI providers.
type AIClient interface {
	// SuggestCategory proposes a category for a free-text expense description.
	// Implementations interact with an external AI service (e.g., Google Gemini).
	SuggestCategory(ctx context.Context, description string) (models.Category, error)
}
