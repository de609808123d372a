// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"errors"
	"testing"

	"comptage/cli/internal/config"
)

type fakeStore struct {
	dsn string
	err error
}

func (f *fakeStore) LoadDBDSN() (string, error) { return f.dsn, f.err }

func TestResolve(t *testing.T) {
	defaults := config.Default().DB

	tests := []struct {
		name       string
		env        map[string]string
		store      Store
		want       string
		wantSource Source
	}{
		{
			name:       "COMPTAGE_DSN wins",
			env:        map[string]string{"COMPTAGE_DSN": "postgres://u:p@h:5433/d", "DATABASE_URL": "postgres://x:y@z/other"},
			store:      &fakeStore{dsn: "postgres://k:k@k/k"},
			want:       "postgresql://u:p@h:5433/d",
			wantSource: SourceEnv,
		},
		{
			name:       "DATABASE_URL second",
			env:        map[string]string{"DATABASE_URL": "postgres://x:y@z:5432/other"},
			store:      &fakeStore{dsn: "postgres://k:k@k/k"},
			want:       "postgresql://x:y@z:5432/other",
			wantSource: SourceEnv,
		},
		{
			name:       "keychain third",
			store:      &fakeStore{dsn: "postgres://saved:s@host:6000/db"},
			want:       "postgresql://saved:s@host:6000/db",
			wantSource: SourceKeychain,
		},
		{
			name:       "keychain error falls to defaults",
			store:      &fakeStore{err: errors.New("locked")},
			want:       "postgresql://postgres@localhost:5414/dalibo",
			wantSource: SourceDefaults,
		},
		{
			name:       "no store falls to defaults",
			want:       "postgresql://postgres@localhost:5414/dalibo",
			wantSource: SourceDefaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv also isolates the vars we don't set in this case.
			t.Setenv("COMPTAGE_DSN", "")
			t.Setenv("DATABASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, source, err := Resolve(defaults, tt.store)
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestResolve_BadEnvDSN(t *testing.T) {
	t.Setenv("COMPTAGE_DSN", "not-a-dsn")
	t.Setenv("DATABASE_URL", "")

	_, _, err := Resolve(config.Default().DB, nil)
	if err == nil {
		t.Fatal("Resolve() expected error for malformed env DSN")
	}
}
