// Package config provides Viper-based hierarchical configuration
// management: defaults, then an optional config file, then environment
// variables with the WEEKLEDGER_ prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/weekledger/internal/logging"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	Currency struct {
		Symbol string `mapstructure:"symbol" yaml:"symbol"`
	} `mapstructure:"currency" yaml:"currency"`

	Suggest struct {
		Enabled      bool   `mapstructure:"enabled" yaml:"enabled"`
		Model        string `mapstructure:"model" yaml:"model"`
		MappingsFile string `mapstructure:"mappings_file" yaml:"mappings_file"`
		APIKey       string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"suggest" yaml:"suggest"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.weekledger")
	v.AddConfigPath(".weekledger")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("WEEKLEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the environment, never from a file.
	if err := v.BindEnv("suggest.api_key", "GEMINI_API_KEY"); err != nil {
		log.Warnf("Failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	v.SetDefault("data.file", defaultDataFile())

	// Currency defaults
	v.SetDefault("currency.symbol", "$")

	// Suggestion defaults
	v.SetDefault("suggest.enabled", false)
	v.SetDefault("suggest.model", "gemini-2.0-flash")
	v.SetDefault("suggest.mappings_file", defaultMappingsFile())
}

// defaultDataFile is the ledger location when nothing else is configured.
func defaultDataFile() string {
	return filepath.Join(configDir(), "ledger.json")
}

// defaultMappingsFile is the suggestion mappings location when nothing
// else is configured.
func defaultMappingsFile() string {
	return filepath.Join(configDir(), "mappings.yaml")
}

func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".weekledger"
	}
	return filepath.Join(homeDir, ".weekledger")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.File == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	if config.Suggest.Enabled && config.Suggest.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when suggestions are enabled")
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the
// configured level and format.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
