// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret connection defaults are kept here; a full DSN with a
// password goes to the OS keychain instead.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"comptage/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string   `json:"log_level"`
	DB       DBConfig `json:"db"`
}

// DBConfig holds the connection defaults used when no DSN is provided
// through the environment or the keychain.
type DBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
}

// Default returns the built-in configuration: the fixed connection
// parameters the tool has always shipped with.
func Default() Config {
	return Config{
		LogLevel: "info",
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5414",
			Database: "dalibo",
			User:     "postgres",
		},
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
