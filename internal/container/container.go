// Package container provides dependency injection for the weekledger
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/weekledger/internal/config"
	"fjacquet/weekledger/internal/ledger"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/report"
	"fjacquet/weekledger/internal/store"
	"fjacquet/weekledger/internal/suggest"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation: all fields are private
// and can only be reached through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	service   *ledger.Service
	aiClient  suggest.AIClient
	suggester *suggest.Suggester
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies. This is
// the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	// Expense service on the configured ledger file
	service := ledger.NewService(store.NewFileStore(cfg.Data.File, logger), logger)

	// Create AI client (if enabled)
	var aiClient suggest.AIClient
	if cfg.Suggest.Enabled && cfg.Suggest.APIKey != "" {
		aiClient = suggest.NewGeminiClient(cfg.Suggest.APIKey, cfg.Suggest.Model, logger)
		logger.Debug("AI suggestions enabled")
	} else {
		logger.Debug("AI suggestions disabled")
	}

	// Create suggester with all dependencies
	mappingStore := suggest.NewYAMLMappingStore(cfg.Suggest.MappingsFile, logger)
	suggester := suggest.NewSuggester(aiClient, mappingStore, logger)

	return &Container{
		logger:    logger,
		config:    cfg,
		service:   service,
		aiClient:  aiClient,
		suggester: suggester,
		generator: report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetService returns the expense service.
func (c *Container) GetService() *ledger.Service {
	return c.service
}

// GetSuggester returns the category suggester.
func (c *Container) GetSuggester() *suggest.Suggester {
	return c.suggester
}

// GetGenerator returns the report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetAIClient returns the AI client, or nil when suggestions are disabled.
func (c *Container) GetAIClient() suggest.AIClient {
	return c.aiClient
}

// Close flushes state the dependencies still hold. Today that is only
// suggestion mappings learned during the run.
func (c *Container) Close() error {
	return c.suggester.SaveMappings()
}
