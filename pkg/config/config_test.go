package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marmos91/archreg/pkg/registry/store"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing config file, got %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected default level INFO, got %q", cfg.Logging.Level)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("expected default sqlite database, got %q", cfg.Database.Type)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "debug"
  format: "json"

database:
  type: "sqlite"
  sqlite:
    path: "` + filepath.ToSlash(tmpDir) + `/registry.db"

metrics:
  enabled: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected level normalized to DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Logging.Format)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled")
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "VERBOSE"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected validation error for invalid log level")
	}
}

func TestInitConfigToPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := InitConfigToPath(configPath, false); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}

	// A second init without --force must not clobber the file
	if err := InitConfigToPath(configPath, false); err == nil {
		t.Error("expected error when config file already exists")
	}

	if err := InitConfigToPath(configPath, true); err != nil {
		t.Errorf("expected force overwrite to succeed, got %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load generated config: %v", err)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected generated config to carry defaults, got level %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		if err := Validate(GetDefaultConfig()); err != nil {
			t.Errorf("expected default config to validate, got %v", err)
		}
	})

	t.Run("bad format is rejected", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.Logging.Format = "xml"
		if err := Validate(cfg); err == nil {
			t.Error("expected validation error for xml format")
		}
	})

	t.Run("unsupported database type is rejected", func(t *testing.T) {
		cfg := GetDefaultConfig()
		cfg.Database.Type = "oracle"
		if err := Validate(cfg); err == nil {
			t.Error("expected validation error for unsupported database type")
		}
	})
}
