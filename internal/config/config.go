package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"arise/internal/storage"
)

// Config models ~/.arise.yaml. Everything is optional: a missing file yields
// working defaults, and environment variables win over the file.
type Config struct {
	DBPath string `yaml:"db_path"`
	UserID string `yaml:"user_id"`
	Remote struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"remote"`
}

// Path returns the config file location.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".arise.yaml"), nil
}

// Load reads the config file (if present) and applies env overrides.
func Load() (*Config, error) {
	var cfg Config

	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("ARISE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ARISE_USER"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("ARISE_MONGO_URI"); v != "" {
		cfg.Remote.URI = v
	}
	if v := os.Getenv("ARISE_MONGO_DB"); v != "" {
		cfg.Remote.Database = v
	}

	if cfg.DBPath == "" {
		cfg.DBPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	if cfg.UserID == "" {
		cfg.UserID = storage.MainUserKey
	}
	if cfg.Remote.Database == "" {
		cfg.Remote.Database = "arise"
	}
	return &cfg, nil
}

// RemoteConfigured reports whether a sync target is set.
func (c *Config) RemoteConfigured() bool {
	return c.Remote.URI != ""
}
