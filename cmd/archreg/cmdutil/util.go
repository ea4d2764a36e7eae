// Package cmdutil holds helpers shared by archreg commands.
package cmdutil

import (
	"fmt"

	"github.com/marmos91/archreg/pkg/config"
	"github.com/marmos91/archreg/pkg/metrics"
	"github.com/marmos91/archreg/pkg/registry/store"
)

// configPath is the --config value set by the root command before any
// subcommand runs.
var configPath string

// SetConfigPath records the config file path for later LoadConfig calls.
func SetConfigPath(path string) {
	configPath = path
}

// LoadConfig loads the archreg configuration honoring the --config flag.
func LoadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// OpenRegistry opens the registry store described by the configuration.
// The caller owns the returned store and must Close it.
func OpenRegistry() (*store.GORMStore, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	reg, err := store.New(&cfg.Database, metrics.NewStoreMetrics())
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	return reg, nil
}
