package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings. The conversion rate is deliberately
// not here: it is a legal constant, not a tunable.
type Config struct {
	Port        string `yaml:"port"`
	DBPath      string `yaml:"db_path"`
	MaxUploadMB int64  `yaml:"max_upload_mb"`
}

// Load reads the YAML config at path, falling back to defaults when the
// file does not exist, then applies PORT, DB_PATH and MAX_UPLOAD_MB
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:        "8080",
		DBPath:      "levcheck.db",
		MaxUploadMB: 32,
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			cfg.MaxUploadMB = mb
		}
	}

	return cfg, nil
}

// MaxUploadBytes returns the multipart form memory limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
