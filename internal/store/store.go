// Package store persists a fetched product catalog mapping to a YAML file so
// that later runs can reuse it when the catalog service is unreachable.
package store

import (
	"fmt"
	"os"

	"sales-analytics/internal/catalog"
	"sales-analytics/internal/fileutils"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CatalogStore manages loading and saving of the catalog cache file.
type CatalogStore struct {
	CacheFile string
}

// NewCatalogStore creates a store for the given cache file path.
func NewCatalogStore(cacheFile string) *CatalogStore {
	return &CatalogStore{CacheFile: cacheFile}
}

// Save writes the mapping to the cache file in YAML form.
func (s *CatalogStore) Save(mapping catalog.Mapping) error {
	if s.CacheFile == "" {
		return fmt.Errorf("no cache file configured")
	}

	data, err := yaml.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog cache: %w", err)
	}

	if err := fileutils.WriteFile(s.CacheFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  s.CacheFile,
		"count": len(mapping),
	}).Info("Saved catalog cache")
	return nil
}

// Load reads a previously saved mapping from the cache file.
func (s *CatalogStore) Load() (catalog.Mapping, error) {
	if s.CacheFile == "" {
		return nil, fmt.Errorf("no cache file configured")
	}
	if !fileutils.FileExists(s.CacheFile) {
		return nil, fmt.Errorf("catalog cache does not exist: %s", s.CacheFile)
	}

	data, err := os.ReadFile(s.CacheFile) // #nosec G304 -- cache path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var mapping catalog.Mapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse catalog cache: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  s.CacheFile,
		"count": len(mapping),
	}).Info("Loaded catalog cache")
	return mapping, nil
}
