package container

import (
	"path/filepath"
	"testing"

	"fjacquet/weekledger/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Data.File = filepath.Join(dir, "ledger.json")
	cfg.Currency.Symbol = "$"
	cfg.Suggest.Model = "gemini-2.0-flash"
	cfg.Suggest.MappingsFile = filepath.Join(dir, "mappings.yaml")
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		aiEnabled   bool
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config without AI",
			config: testConfig(t),
		},
		{
			name:      "valid config with AI enabled",
			config:    testConfig(t),
			aiEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.aiEnabled {
				tt.config.Suggest.Enabled = true
				tt.config.Suggest.APIKey = "test-api-key"
			}

			c, err := NewContainer(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)

			assert.NotNil(t, c.logger)
			assert.NotNil(t, c.service)
			assert.NotNil(t, c.suggester)
			assert.NotNil(t, c.generator)
			assert.Equal(t, tt.config, c.config)

			if tt.aiEnabled {
				assert.NotNil(t, c.aiClient)
			} else {
				assert.Nil(t, c.aiClient)
			}
		})
	}
}

func TestContainer_ConvenienceMethods(t *testing.T) {
	cfg := testConfig(t)

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, c.GetLogger())
	assert.Equal(t, cfg, c.GetConfig())
	assert.NotNil(t, c.GetService())
	assert.NotNil(t, c.GetSuggester())
	assert.NotNil(t, c.GetGenerator())
	assert.Nil(t, c.GetAIClient())
}

func TestContainer_Close(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	// Nothing was learned, so there is nothing to flush.
	assert.NoError(t, c.Close())
}
