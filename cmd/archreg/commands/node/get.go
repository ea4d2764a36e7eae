package node

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marmos91/archreg/cmd/archreg/cmdutil"
	"github.com/marmos91/archreg/internal/cli/output"
)

var getCmd = &cobra.Command{
	Use:   "get <node-id>",
	Short: "Get archiver node details",
	Long: `Get detailed information about an archiver node.

Examples:
  # Show node 1
  archreg node get 1`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	nodeID, err := parseNodeID(args[0])
	if err != nil {
		return err
	}

	reg, err := cmdutil.OpenRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	node, err := reg.GetArchiver(cmd.Context(), nodeID)
	if err != nil {
		return fmt.Errorf("failed to get archiver: %w", err)
	}
	if node == nil {
		return fmt.Errorf("archiver %d not found", nodeID)
	}

	return output.SimpleTable(os.Stdout, [][2]string{
		{"Node ID", strconv.FormatInt(node.NodeID, 10)},
		{"Name", node.NodeName},
		{"Host", node.NodeHost},
	})
}
