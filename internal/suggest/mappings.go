package suggest

import (
	"fmt"
	"os"

	"fjacquet/weekledger/internal/fileutils"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"

	"gopkg.in/yaml.v3"
)

// MappingStore defines the interface for suggestion mapping storage.
// This allows for dependency injection and easier testing.
type MappingStore interface {
	LoadMappings() (map[string]string, error)
	LoadKeywords() (map[string][]string, error)
	SaveMappings(mappings map[string]string) error
}

// mappingsFile is the on-disk layout of the suggestion database.
type mappingsFile struct {
	Mappings map[string]string   `yaml:"mappings"`
	Keywords map[string][]string `yaml:"keywords,omitempty"`
}

// YAMLMappingStore persists description-to-category mappings and extra
// keyword lists in a single YAML file.
type YAMLMappingStore struct {
	path string
	log  logging.Logger
}

// NewYAMLMappingStore creates a store backed by the given file path.
func NewYAMLMappingStore(path string, logger logging.Logger) *YAMLMappingStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &YAMLMappingStore{path: path, log: logger}
}

// Path returns the location of the mappings file.
func (s *YAMLMappingStore) Path() string {
	return s.path
}

// LoadMappings reads the description-to-category map. A missing file is not
// an error; suggestions simply start without learned mappings.
func (s *YAMLMappingStore) LoadMappings() (map[string]string, error) {
	file, err := s.read()
	if err != nil {
		return nil, err
	}
	if file.Mappings == nil {
		return map[string]string{}, nil
	}
	return file.Mappings, nil
}

// LoadKeywords reads the user-defined keyword lists keyed by category name.
func (s *YAMLMappingStore) LoadKeywords() (map[string][]string, error) {
	file, err := s.read()
	if err != nil {
		return nil, err
	}
	if file.Keywords == nil {
		return map[string][]string{}, nil
	}
	return file.Keywords, nil
}

func (s *YAMLMappingStore) read() (mappingsFile, error) {
	var file mappingsFile

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Debug("Mappings file not found, starting empty",
			logging.Field{Key: logging.FieldFile, Value: s.path})
		return file, nil
	}
	if err != nil {
		return file, fmt.Errorf("could not read mappings file: %w", err)
	}

	structErr := yaml.Unmarshal(data, &file)
	if structErr == nil && (file.Mappings != nil || file.Keywords != nil) {
		return file, nil
	}

	// Older files held the mappings as a bare map without section keys.
	directMap := make(map[string]string)
	if directErr := yaml.Unmarshal(data, &directMap); directErr == nil && len(directMap) > 0 {
		return mappingsFile{Mappings: directMap}, nil
	}

	if structErr != nil {
		return mappingsFile{}, fmt.Errorf("could not parse mappings file: %w", structErr)
	}
	return file, nil
}

// SaveMappings writes the description-to-category map back to disk while
// preserving any user-defined keyword lists in the same file.
func (s *YAMLMappingStore) SaveMappings(mappings map[string]string) error {
	current, err := s.read()
	if err != nil {
		return err
	}

	file := mappingsFile{
		Mappings: make(map[string]string, len(mappings)),
		Keywords: current.Keywords,
	}
	for description, category := range mappings {
		file.Mappings[description] = category
	}

	header := `# Description to category mappings
# This file maps expense descriptions to their categories and is updated
# automatically when new descriptions are categorized.
# An optional keywords section extends the built-in keyword lists:
#   keywords:
#     Food: ["espresso", "deli"]

`

	yamlData, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("could not marshal mappings to YAML: %w", err)
	}

	if err := fileutils.WriteFile(s.path, []byte(header+string(yamlData)), models.PermissionDataFile); err != nil {
		return fmt.Errorf("could not write mappings file: %w", err)
	}

	s.log.Debug("Saved suggestion mappings",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(file.Mappings)})
	return nil
}
