// Package config loads the assistant's configuration: which storage backend
// keeps the address book, where the book file lives, and how chatty the logs
// are. Values come from a YAML file with environment variables layered on
// top; command-line flags override both at the call site.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends selectable in the config.
const (
	BackendSnapshot = "snapshot"
	BackendSQLite   = "sqlite"
)

// Default address book locations, one per backend, used when no path is
// configured.
const (
	defaultSnapshotPath = "data/addressbook.json"
	defaultSQLitePath   = "data/addressbook.db"
)

// Config holds all rolodex configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // snapshot or sqlite
	Path    string `yaml:"path"`    // address book file; empty picks the backend default
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration: a JSON snapshot under ./data
// and info-level logs.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendSnapshot},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error; the defaults apply, so a fresh checkout runs without any setup.
// Environment variables override file values either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if backend := os.Getenv("ROLODEX_STORAGE"); backend != "" {
		c.Storage.Backend = backend
	}
	if path := os.Getenv("ROLODEX_BOOK"); path != "" {
		c.Storage.Path = path
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration before any store is opened with it.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSnapshot, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (valid: %s, %s)",
			c.Storage.Backend, BackendSnapshot, BackendSQLite)
	}
	return nil
}

// BookPath returns the address book location: the configured path, or the
// chosen backend's default file under ./data.
func (c *Config) BookPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == BackendSQLite {
		return defaultSQLitePath
	}
	return defaultSnapshotPath
}
