// Package store provides loading and saving of category keyword data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore manages loading and saving of category keyword groups.
// Groups loaded from file are tried before the built-in taxonomy, in file
// order, so users can override or extend the default categorization.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store backed by the given categories file.
// An empty filename falls back to "categories.yaml" in standard locations.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "einvoice-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads ordered category keyword groups from the YAML file.
// A missing file is not an error; it yields an empty list and the built-in
// taxonomy alone applies.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Categories file not found, using built-in taxonomy",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Preferred layout: "categories: [{name, keywords}, ...]".
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logger.Debug("Loaded categories",
			logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)},
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare list of groups without the top-level key.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	s.logger.Debug("Loaded categories from bare list",
		logging.Field{Key: logging.FieldCount, Value: len(categories)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return categories, nil
}

// SaveCategories writes category keyword groups back to the YAML file,
// creating parent directories as needed.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving categories file: %w", err)
		}
		filePath = filename
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	s.logger.Debug("Saved categories",
		logging.Field{Key: logging.FieldCount, Value: len(categories)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return nil
}
