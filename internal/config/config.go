// Package config handles the staffdir configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDriver is the database driver used when the config does not
// name one.
const DefaultDriver = "sqlite3"

// Config represents the flat staffdir configuration.
type Config struct {
	Driver       string `json:"driver,omitempty"`        // database/sql driver name
	DatabasePath string `json:"database_path,omitempty"` // path to the SQLite file
}

// LoadConfig reads .staffdir/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".staffdir", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Driver == "" {
		cfg.Driver = DefaultDriver
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	confDir := filepath.Join(dir, ".staffdir")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		return fmt.Errorf("failed to create .staffdir dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(confDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDatabasePath returns the default location of the employee
// database.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".staffdir", "staffdir.db"), nil
}

// Resolve fills unset fields with defaults and returns the driver and
// connection string to hand to the factory.
func (c *Config) Resolve() (driver, dsn string, err error) {
	driver = c.Driver
	if driver == "" {
		driver = DefaultDriver
	}
	dsn = c.DatabasePath
	if dsn == "" {
		dsn, err = DefaultDatabasePath()
		if err != nil {
			return "", "", err
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return "", "", fmt.Errorf("failed to create .staffdir dir: %w", err)
		}
	}
	return driver, dsn, nil
}
