// ABOUTME: Centralized configuration for the allergen tracker
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config holds all configuration for the tracker
type Config struct {
	// Storage settings
	DataDir string
	DBName  string

	// Export settings
	ExportFormat string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DataDir:      getEnv("ALLERGENTRACK_DATA_DIR", defaultDataDir()),
		DBName:       getEnv("ALLERGENTRACK_DB_NAME", "allergentrack.db"),
		ExportFormat: getEnv("ALLERGENTRACK_EXPORT_FORMAT", "csv"),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration values
func (c *Config) Validate() error {
	switch c.ExportFormat {
	case "csv", "yaml", "json":
	default:
		return fmt.Errorf("ALLERGENTRACK_EXPORT_FORMAT must be csv, yaml, or json, got %q", c.ExportFormat)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	return nil
}

// DBPath returns the full path to the SQLite database file
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBName)
}

// defaultDataDir resolves the XDG data directory for the tracker.
// Respects XDG_DATA_HOME environment variable override for testing.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "allergentrack")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
