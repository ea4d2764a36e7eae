package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/archreg/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample configuration file.

The file is written to $XDG_CONFIG_HOME/archreg/config.yaml unless --config
points elsewhere. Existing files are preserved unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	var path string
	var err error

	if configFile != "" {
		path = configFile
		err = config.InitConfigToPath(configFile, initForce)
	} else {
		path, err = config.InitConfig(initForce)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", path)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to customize your setup")
	fmt.Println("  2. Register an archiver with: archreg node add --host <host>")
	return nil
}
