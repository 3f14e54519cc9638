// Package store persists the expense ledger as a single JSON document.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/weekledger/internal/fileutils"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"
	"fjacquet/weekledger/internal/validation"
)

// Store is the persistence port for the ledger: load everything, save
// everything. Implementations never see partial updates.
type Store interface {
	Load() ([]models.Expense, error)
	Save(records []models.Expense) error
}

// FileStore keeps the whole ledger as one JSON array on disk.
type FileStore struct {
	path string
	log  logging.Logger
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &FileStore{path: path, log: logger}
}

// Path returns the location of the ledger file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the full ledger. A missing file is a fresh start: it
// yields an empty ledger and no error. Unreadable or unparseable
// content is returned as an error so the caller can apply its own
// fallback policy.
func (s *FileStore) Load() ([]models.Expense, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("Ledger file not found, starting empty",
				logging.Field{Key: logging.FieldFile, Value: s.path})
			return []models.Expense{}, nil
		}
		return nil, fmt.Errorf("error reading ledger file: %w", err)
	}

	if info, statErr := os.Stat(s.path); statErr == nil {
		if permErr := validation.IsValidFilePermissions(info.Mode().Perm()); permErr != nil {
			s.log.Warn("Ledger file is readable by other users",
				logging.Field{Key: logging.FieldFile, Value: s.path})
		}
	}

	var records []models.Expense
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}

	s.log.Debug("Loaded ledger",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// Save replaces the ledger file with the given records. The file stays
// private to the user; missing parent directories are created.
func (s *FileStore) Save(records []models.Expense) error {
	if records == nil {
		records = []models.Expense{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling ledger: %w", err)
	}

	if err := fileutils.WriteFile(s.path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	s.log.Debug("Saved ledger",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}
