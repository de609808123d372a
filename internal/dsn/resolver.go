// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"os"
	"strings"

	"comptage/cli/internal/config"
)

// Source says where the resolved connection string came from, mostly for
// verbose reporting.
type Source string

const (
	SourceEnv      Source = "environment"
	SourceKeychain Source = "keychain"
	SourceDefaults Source = "defaults"
)

// Store loads a previously saved connection string. Implemented by the
// keychain manager; nil is accepted when no secure storage is available.
type Store interface {
	LoadDBDSN() (string, error)
}

// Resolve picks the connection string for this run. Precedence:
// COMPTAGE_DSN, then DATABASE_URL, then the OS keychain, then a DSN built
// from the configured connection defaults.
func Resolve(db config.DBConfig, store Store) (string, Source, error) {
	if env := strings.TrimSpace(os.Getenv("COMPTAGE_DSN")); env != "" {
		normalized, err := normalize(env)
		return normalized, SourceEnv, err
	}
	if env := strings.TrimSpace(os.Getenv("DATABASE_URL")); env != "" {
		normalized, err := normalize(env)
		return normalized, SourceEnv, err
	}

	if store != nil {
		saved, err := store.LoadDBDSN()
		if err == nil && strings.TrimSpace(saved) != "" {
			normalized, err := normalize(strings.TrimSpace(saved))
			return normalized, SourceKeychain, err
		}
	}

	return Build(db.Host, db.Port, db.Database, db.User), SourceDefaults, nil
}

// normalize parses and re-encodes a raw connection string.
func normalize(raw string) (string, error) {
	info, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Normalize(info)
}
