package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the binary needs to run. Values come from
// .laufblocks/config.yaml when present, then environment variables
// override file values.
type Config struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	BlocksDir string `yaml:"blocks_dir"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// DatabaseURL is the PostgreSQL DSN. Empty disables the backing
	// store; analytics then degrade to no-ops.
	DatabaseURL string `yaml:"database_url"`
}

const configPath = ".laufblocks/config.yaml"

// loadConfig builds the effective configuration. A missing config file
// is not an error; everything has a default.
func loadConfig() (*Config, error) {
	cfg := &Config{
		Host:      "0.0.0.0",
		Port:      "8080",
		BlocksDir: "blocks",
		LogLevel:  "info",
		LogFormat: "json",
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", configPath, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	}

	applyEnv(&cfg.Host, "LAUFBLOCKS_HOST")
	applyEnv(&cfg.Port, "LAUFBLOCKS_PORT")
	applyEnv(&cfg.BlocksDir, "LAUFBLOCKS_BLOCKS_DIR")
	applyEnv(&cfg.LogLevel, "LAUFBLOCKS_LOG_LEVEL")
	applyEnv(&cfg.LogFormat, "LAUFBLOCKS_LOG_FORMAT")
	applyEnv(&cfg.DatabaseURL, "DATABASE_URL")

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// applyEnv overwrites dst when the environment variable is set.
func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
