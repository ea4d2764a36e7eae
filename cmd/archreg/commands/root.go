// Package commands implements the archreg command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/archreg/cmd/archreg/cmdutil"
	"github.com/marmos91/archreg/cmd/archreg/commands/node"
	"github.com/marmos91/archreg/internal/logger"
	"github.com/marmos91/archreg/pkg/metrics"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "archreg",
	Short: "Archiver node registry",
	Long: `archreg manages the persistent registry of archiver nodes.

Archiver nodes are auxiliary worker nodes in a replicated system. The
registry tracks their identity (id, name, host) in a SQLite or PostgreSQL
database shared with the orchestration layer.

Examples:
  # Initialize config file
  archreg init

  # Register an archiver (name defaults to archiver_<id>)
  archreg node add --host 10.0.0.1

  # Register an archiver with an explicit name
  archreg node add --name backup-1 --host 10.0.0.2

  # Inspect and remove nodes
  archreg node get 1
  archreg node list
  archreg node remove 1

Environment Variables:
  All configuration options can be overridden using environment variables.
  Format: ARCHREG_<SECTION>_<KEY> (use underscores for nested keys)

  Examples:
    ARCHREG_LOGGING_LEVEL=DEBUG
    ARCHREG_DATABASE_TYPE=postgres`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmdutil.SetConfigPath(configFile)

		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		if err := logger.Init(logger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cfg.Logging.Output,
		}); err != nil {
			return err
		}

		if cfg.Metrics.Enabled {
			metrics.InitRegistry()
		}

		logger.Debug("configuration loaded",
			"database", cfg.Database.Type,
			"metrics", cfg.Metrics.Enabled)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to config file (default: $XDG_CONFIG_HOME/archreg/config.yaml)")

	rootCmd.AddCommand(node.Cmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
