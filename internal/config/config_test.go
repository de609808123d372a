package config

import (
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", c, Default())
	}
}

func TestDefault_ConnectionParameters(t *testing.T) {
	db := Default().DB
	if db.Host != "localhost" || db.Port != "5414" || db.Database != "dalibo" || db.User != "postgres" {
		t.Errorf("unexpected defaults: %+v", db)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := Default()
	c.DB.Host = "db.example.com"
	c.DB.Port = "5433"
	c.LogLevel = "debug"

	if err := Save(c); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got != c {
		t.Errorf("Load() = %+v, want %+v", got, c)
	}
}
