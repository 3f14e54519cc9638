// Package suggest proposes categories for expense descriptions using
// multiple methods:
// 1. Direct description-to-category mapping from a YAML database
// 2. Built-in keyword matching, extendable from the same YAML file
// 3. AI-based suggestion using a Gemini model as a fallback
package suggest

import (
	"context"
	"strings"
	"sync"

	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"
)

// Suggester picks a category for a description and manages the learned
// mapping database.
type Suggester struct {
	mappings    map[string]models.Category // lower-cased description -> category
	keywords    map[models.Category][]string
	configMutex sync.RWMutex
	isDirty     bool
	store       MappingStore
	logger      logging.Logger
	aiClient    AIClient
}

// NewSuggester creates a Suggester with the given AIClient, MappingStore, and
// logger. A nil aiClient disables the AI tier.
func NewSuggester(aiClient AIClient, store MappingStore, logger logging.Logger) *Suggester {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	s := &Suggester{
		mappings: make(map[string]models.Category),
		keywords: make(map[models.Category][]string),
		store:    store,
		logger:   logger,
		aiClient: aiClient,
	}

	mappings, err := s.store.LoadMappings()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load suggestion mappings")
	} else {
		// Normalize keys to lowercase for case-insensitive lookup
		for key, value := range mappings {
			category, ok := models.ParseCategory(value)
			if !ok {
				s.logger.Debug("Skipping mapping with unknown category",
					logging.Field{Key: logging.FieldDescription, Value: key},
					logging.Field{Key: logging.FieldCategory, Value: value})
				continue
			}
			s.mappings[strings.ToLower(strings.TrimSpace(key))] = category
		}
	}

	keywords, err := s.store.LoadKeywords()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load suggestion keywords")
	} else {
		for name, list := range keywords {
			category, ok := models.ParseCategory(name)
			if !ok {
				s.logger.Debug("Skipping keywords with unknown category",
					logging.Field{Key: logging.FieldCategory, Value: name})
				continue
			}
			s.keywords[category] = append(s.keywords[category], list...)
		}
	}

	return s
}

// Suggest proposes a category for the description. The bool reports whether
// any method produced a match; when it is false the returned category is the
// Other fallback.
func (s *Suggester) Suggest(description string) (models.Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(description))
	if normalized == "" {
		return models.CategoryOther, false
	}

	// Step 1: Try the learned mapping database
	if category, found := s.lookupMapping(normalized); found {
		s.logger.Debug("Suggestion from learned mapping",
			logging.Field{Key: logging.FieldDescription, Value: description},
			logging.Field{Key: logging.FieldCategory, Value: category})
		return category, true
	}

	// Step 2: Try keyword matching. The keyword lists are immutable after
	// construction, so no locking is needed here.
	if category, found := matchKeyword(normalized, s.keywords); found {
		s.logger.Debug("Suggestion from keyword match",
			logging.Field{Key: logging.FieldDescription, Value: description},
			logging.Field{Key: logging.FieldCategory, Value: category})
		s.learn(normalized, category)
		return category, true
	}

	// Step 3: Fall back to the AI client
	return s.suggestWithAI(description, normalized)
}

// suggestWithAI asks the AI client for a category. Failures degrade to the
// Other fallback rather than surfacing an error.
func (s *Suggester) suggestWithAI(description, normalized string) (models.Category, bool) {
	if s.aiClient == nil {
		return models.CategoryOther, false
	}

	ctx := context.Background()
	category, err := s.aiClient.SuggestCategory(ctx, description)
	if err != nil {
		s.logger.WithError(err).Warn("AI suggestion failed",
			logging.Field{Key: logging.FieldDescription, Value: description})
		return models.CategoryOther, false
	}

	if category == models.CategoryOther {
		return models.CategoryOther, false
	}

	s.logger.Debug("Suggestion from AI",
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldCategory, Value: category})
	s.learn(normalized, category)
	return category, true
}

// lookupMapping retrieves a learned mapping if one exists.
func (s *Suggester) lookupMapping(normalized string) (models.Category, bool) {
	s.configMutex.RLock()
	defer s.configMutex.RUnlock()

	category, found := s.mappings[normalized]
	return category, found
}

// learn records a new description-to-category mapping and saves it
// immediately so similar descriptions skip the slower tiers next time.
func (s *Suggester) learn(normalized string, category models.Category) {
	s.configMutex.Lock()
	existing, exists := s.mappings[normalized]
	if exists && existing == category {
		s.configMutex.Unlock()
		return
	}
	s.mappings[normalized] = category
	s.isDirty = true
	s.configMutex.Unlock()

	if err := s.SaveMappings(); err != nil {
		s.logger.WithError(err).Warn("Failed to save suggestion mapping")
	}
}

// SaveMappings persists the mapping database if it has been modified.
func (s *Suggester) SaveMappings() error {
	s.configMutex.Lock()
	defer s.configMutex.Unlock()

	if !s.isDirty {
		return nil
	}

	mappings := make(map[string]string, len(s.mappings))
	for description, category := range s.mappings {
		mappings[description] = category.String()
	}

	if err := s.store.SaveMappings(mappings); err != nil {
		return err
	}
	s.isDirty = false
	return nil
}
