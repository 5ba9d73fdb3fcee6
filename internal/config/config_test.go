package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDatabasePath(t *testing.T) {
	path, err := DefaultDatabasePath()
	if err != nil {
		t.Fatalf("DefaultDatabasePath failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".staffdir", "staffdir.db")

	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Driver:       "sqlite3",
		DatabasePath: "/tmp/test-staffdir.db",
	}
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Driver != "sqlite3" {
		t.Errorf("expected driver 'sqlite3', got %q", loaded.Driver)
	}
	if loaded.DatabasePath != "/tmp/test-staffdir.db" {
		t.Errorf("expected database path '/tmp/test-staffdir.db', got %q", loaded.DatabasePath)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadConfig_DefaultsDriver(t *testing.T) {
	dir := t.TempDir()
	if err := SaveConfig(dir, &Config{DatabasePath: "/tmp/x.db"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Driver != DefaultDriver {
		t.Errorf("expected default driver %q, got %q", DefaultDriver, loaded.Driver)
	}
}

func TestResolve_ExplicitValues(t *testing.T) {
	cfg := &Config{Driver: "sqlite3", DatabasePath: "/tmp/explicit.db"}

	driver, dsn, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if driver != "sqlite3" {
		t.Errorf("expected driver 'sqlite3', got %q", driver)
	}
	if dsn != "/tmp/explicit.db" {
		t.Errorf("expected dsn '/tmp/explicit.db', got %q", dsn)
	}
}
