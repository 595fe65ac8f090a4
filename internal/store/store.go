// Package store provides functionality for storing and retrieving
// user-managed application data: the registered bank accounts, blocklists,
// and category keyword groups.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/models"

	"gopkg.in/yaml.v3"
)

// Settings holds the user's pipeline configuration: registered bank
// accounts, additional bank sender identifiers, and the sender/keyword
// blocklists applied during a sync run. Read-only to the pipeline.
type Settings struct {
	BankAccounts          []models.BankAccountMapping `yaml:"bank_accounts"`
	CustomBankIdentifiers []string                    `yaml:"custom_bank_identifiers"`
	BlockedSenders        []string                    `yaml:"blocked_senders"`
	BlockedKeywords       []string                    `yaml:"blocked_keywords"`
}

// FileStore loads settings and category data from YAML files.
type FileStore struct {
	SettingsFile   string
	CategoriesFile string
	logger         logging.Logger
}

// NewFileStore creates a store over the given YAML files. Empty file names
// fall back to the default names searched in the standard locations.
func NewFileStore(settingsFile, categoriesFile string, logger logging.Logger) *FileStore {
	return &FileStore{
		SettingsFile:   settingsFile,
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *FileStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
		filepath.Join("data", filename),   // ./data/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/sms-ledger/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "sms-ledger", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadSettings loads user settings from the YAML file. A missing file is
// not an error: it yields empty settings so a fresh install syncs with
// defaults.
func (s *FileStore) LoadSettings() (*Settings, error) {
	filename := s.SettingsFile
	if filename == "" {
		filename = "settings.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Warn("Settings file not found, using empty settings")
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("error resolving settings file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("error parsing settings file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(settings.BankAccounts)},
	).Debug("Loaded settings")
	return &settings, nil
}

// SaveSettings writes user settings back to the YAML file, creating the
// parent directory if needed.
func (s *FileStore) SaveSettings(settings *Settings) error {
	filename := s.SettingsFile
	if filename == "" {
		filename = "settings.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving settings file: %w", err)
		}
		if filepath.IsAbs(filename) {
			filePath = filename
		} else {
			filePath = filepath.Join("data", filename)
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling settings: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}

	s.logger.WithField(logging.FieldFile, filePath).Debug("Saved settings")
	return nil
}

// LoadCategories loads category keyword groups from the YAML file. A
// missing file yields an empty slice, not an error; the categorizer then
// runs on its built-in groups.
func (s *FileStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Debug("Categories file not found")
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Preferred structure: "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logger.WithField(logging.FieldCount, len(categoriesConfig.Categories)).
			Debug("Loaded category groups")
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare array of groups without the top-level key.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return categories, nil
}
