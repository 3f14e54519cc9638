package suggest

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements the AIClient interface against the Google Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
	log    logging.Logger

	client   *genai.Client
	genModel *genai.GenerativeModel
}

// NewGeminiClient creates a new GeminiClient. The underlying API client is
// initialized lazily on the first request.
func NewGeminiClient(apiKey, model string, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		log:    logger,
	}
}

// ensureClient ensures the Gemini client is initialized.
func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}

	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	c.genModel = client.GenerativeModel(c.model)
	return nil
}

// SuggestCategory asks the Gemini model to pick one of the known categories
// for the given description. Answers that do not name a known category fall
// back to Other.
func (c *GeminiClient) SuggestCategory(ctx context.Context, description string) (models.Category, error) {
	if err := c.ensureClient(ctx); err != nil {
		return models.CategoryOther, err
	}

	names := make([]string, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		names = append(names, category.String())
	}

	prompt := fmt.Sprintf(`Categorize the following personal expense:
Description: %s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		description,
		strings.Join(names, ", "))

	resp, err := c.genModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.CategoryOther, fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.CategoryOther, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category := parseCategoryResponse(responseText)

	c.log.WithFields(
		logging.Field{Key: logging.FieldModel, Value: c.model},
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Gemini suggested a category")

	return category, nil
}

// parseCategoryResponse extracts the category from a model response. It first
// looks for a "Category:" line, then for any known category name in the text.
func parseCategoryResponse(response string) models.Category {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			name := strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			name = strings.Trim(name, "[]")
			if category, ok := models.ParseCategory(name); ok {
				return category
			}
		}
	}

	// No structured answer, scan for a known category name instead.
	lower := strings.ToLower(response)
	for _, category := range models.Categories() {
		if strings.Contains(lower, strings.ToLower(category.String())) {
			return category
		}
	}

	return models.CategoryOther
}
