package node

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/archreg/cmd/archreg/cmdutil"
)

var (
	addName string
	addHost string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new archiver node",
	Long: `Register a new archiver node.

The registry assigns the node id. When --name is omitted the node is named
archiver_<id> using the assigned id.

Examples:
  # Register with the default name
  archreg node add --host 10.0.0.1

  # Register with an explicit name
  archreg node add --name backup-1 --host 10.0.0.2`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Node name (default: archiver_<id>)")
	addCmd.Flags().StringVar(&addHost, "host", "", "Node host address (required)")
	_ = addCmd.MarkFlagRequired("host")
}

func runAdd(cmd *cobra.Command, args []string) error {
	reg, err := cmdutil.OpenRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	// Distinguish "flag not given" from "empty name": only an omitted flag
	// requests the archiver_<id> default.
	var name *string
	if cmd.Flags().Changed("name") {
		name = &addName
	}

	nodeID, err := reg.AddArchiver(cmd.Context(), name, addHost)
	if err != nil {
		return fmt.Errorf("failed to register archiver: %w", err)
	}

	node, err := reg.GetArchiver(cmd.Context(), nodeID)
	if err != nil || node == nil {
		// Registration already succeeded; reading back the name is cosmetic.
		fmt.Printf("Registered archiver %d\n", nodeID)
		return nil
	}

	fmt.Printf("Registered archiver %d (name: %s, host: %s)\n",
		nodeID, node.NodeName, node.NodeHost)
	return nil
}
