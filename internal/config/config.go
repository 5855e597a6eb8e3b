// Package config loads runtime settings from defaults, an optional config
// file and HEALTHTRACKER_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds the application settings.
type Config struct {
	Store        string        `mapstructure:"store"`
	DatabaseURL  string        `mapstructure:"database_url"`
	LogLevel     string        `mapstructure:"log_level"`
	LogFormat    string        `mapstructure:"log_format"`
	Addr         string        `mapstructure:"addr"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment are consulted.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("store", StorePostgres)
	v.SetDefault("database_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("addr", ":8080")
	v.SetDefault("query_timeout", 10*time.Second)

	v.SetEnvPrefix("HEALTHTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: database_url (or DATABASE_URL) is required for store %q", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("config: unknown store %q (allowed: %s, %s)", c.Store, StorePostgres, StoreMemory)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("config: query_timeout must be positive")
	}
	return nil
}
