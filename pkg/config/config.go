// Package config defines the YAML configuration that drives the
// demonstration: what gets cached, which backends run the query, and who
// subscribes to the blog. Every field has a default so the demo runs with no
// config file at all.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/patternworks/patterns/pkg/errors"
)

// Config represents the full demo configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Cache    CacheConfig    `yaml:"cache"`
	Database DatabaseConfig `yaml:"database"`
	Blog     BlogConfig     `yaml:"blog"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Colors bool   `yaml:"colors"` // Colored console output
}

// CacheConfig contains the cache demonstration script
type CacheConfig struct {
	Seed  map[string]string `yaml:"seed"`  // Entries loaded into the cache
	Probe string            `yaml:"probe"` // Key looked up but never seeded
}

// DatabaseConfig contains the adapter demonstration script
type DatabaseConfig struct {
	Query    string   `yaml:"query"`    // Query each backend executes
	Backends []string `yaml:"backends"` // Backend kinds, run in order
}

// BlogConfig contains the publish/subscribe demonstration script
type BlogConfig struct {
	Publisher   string   `yaml:"publisher"`   // Blog name
	Subscribers []string `yaml:"subscribers"` // Subscriber names, in subscription order
	Articles    []string `yaml:"articles"`    // Article titles, published in order
}

// Default returns the canonical demo configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Colors: true,
		},
		Cache: CacheConfig{
			Seed: map[string]string{
				"user:1042":         "Ada Lovelace",
				"feature:dark_mode": "enabled",
			},
			Probe: "user:9999",
		},
		Database: DatabaseConfig{
			Query:    "SELECT * FROM users",
			Backends: []string{"mysql", "postgres", "sqlite"},
		},
		Blog: BlogConfig{
			Publisher:   "Tech Blog",
			Subscribers: []string{"Alice", "Bob", "Charlie"},
			Articles: []string{
				"Design Patterns in Practice",
				"Adapters All the Way Down",
			},
		},
	}
}

// Load returns the default configuration overlaid with the YAML file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInternalError(
			fmt.Sprintf("failed to open config file %s", path), err,
		).WithOperation("config.Load")
	}
	defer f.Close()

	if err := DecodeStrict(f, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parts of the configuration that the demo cannot
// default its way around.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.NewValidationError("logging.level", "unknown log level", c.Logging.Level)
	}
	if c.Blog.Publisher == "" {
		return errors.NewValidationError("blog.publisher", "publisher name must not be empty", c.Blog.Publisher)
	}
	if c.Database.Query == "" {
		return errors.NewValidationError("database.query", "query must not be empty", c.Database.Query)
	}
	if len(c.Database.Backends) == 0 {
		return errors.NewValidationError("database.backends", "at least one backend is required", nil)
	}
	return nil
}
