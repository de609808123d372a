// Package xdg provides helpers to resolve XDG Base Directory paths for comptage.
// It falls back to the traditional ~/.config location when the XDG environment
// variables are not set, and creates the directory with private permissions
// since the configuration may name the database host and user.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for comptage.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/comptage when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "comptage")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
