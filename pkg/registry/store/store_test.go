package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a throwaway SQLite store for testing. The
// database lives in the test's temp dir so every pooled connection sees
// the same data.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := New(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "registry.db"),
		},
	}, nil)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

func TestNew(t *testing.T) {
	t.Run("default config uses sqlite", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()

		if config.Type != DatabaseTypeSQLite {
			t.Errorf("expected SQLite, got %s", config.Type)
		}
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		config := &Config{
			Type: "invalid",
		}
		_, err := New(config, nil)
		if err == nil {
			t.Error("expected error for invalid config")
		}
	})

	t.Run("postgres config requires host", func(t *testing.T) {
		config := &Config{
			Type: DatabaseTypePostgres,
		}
		config.ApplyDefaults()
		if err := config.Validate(); err == nil {
			t.Error("expected error for postgres config without host")
		}
	})

	t.Run("creates sqlite store", func(t *testing.T) {
		store := createTestStore(t)
		defer store.Close()

		if err := store.Healthcheck(context.Background()); err != nil {
			t.Errorf("healthcheck failed: %v", err)
		}
	})
}

func TestPostgresDSN(t *testing.T) {
	config := &PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		Database: "registry",
		User:     "archreg",
		Password: "secret",
		SSLMode:  "disable",
	}

	want := "host=db.internal port=5432 user=archreg password=secret dbname=registry sslmode=disable"
	if got := config.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
