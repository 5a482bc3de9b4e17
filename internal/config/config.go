package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

// Fitsim holds all configuration for the calculator.
type Fitsim struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Proficiency rank every skill is treated as trained to (0..5).
	SkillLevel int `yaml:"skill_level"`

	// Catalog lookups
	LookupConcurrency int           `yaml:"lookup_concurrency"`
	LookupTimeout     time.Duration `yaml:"lookup_timeout"` // deadline around all lookups of one fit

	Catalog  CatalogConfig  `yaml:"catalog"`
	Database DatabaseConfig `yaml:"database"`
}

// CatalogConfig selects where item data comes from.
type CatalogConfig struct {
	Source string `yaml:"source"` // embedded, yaml, postgres
	Path   string `yaml:"path"`   // yaml source only
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int32  `yaml:"max_conns"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Fitsim config with sensible defaults.
func Default() Fitsim {
	return Fitsim{
		LogLevel:          "info",
		SkillLevel:        5,
		LookupConcurrency: 8,
		LookupTimeout:     10 * time.Second,
		Catalog: CatalogConfig{
			Source: SourceEmbedded,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "fitsim",
			Password: "fitsim",
			DBName:   "fitsim",
			SSLMode:  "disable",
			MaxConns: 8,
		},
	}
}

// Validate reports the first invalid setting.
func (c Fitsim) Validate() error {
	if c.SkillLevel < 0 || c.SkillLevel > 5 {
		return fmt.Errorf("skill_level %d out of range [0, 5]", c.SkillLevel)
	}
	if c.LookupTimeout < 0 {
		return fmt.Errorf("lookup_timeout must not be negative, got %s", c.LookupTimeout)
	}
	switch c.Catalog.Source {
	case SourceEmbedded, SourcePostgres:
	case SourceYAML:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog source %q requires catalog.path", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	return nil
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Fitsim, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
