package node

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/archreg/cmd/archreg/cmdutil"
	"github.com/marmos91/archreg/pkg/registry/models"
)

var removeCmd = &cobra.Command{
	Use:   "remove <node-id>",
	Short: "Remove an archiver node",
	Long: `Remove an archiver node from the registry.

The node id is never reused. Cleanup of any state the orchestration layer
derived from this node is the caller's responsibility.

Examples:
  # Remove node 1
  archreg node remove 1`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	nodeID, err := parseNodeID(args[0])
	if err != nil {
		return err
	}

	reg, err := cmdutil.OpenRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := reg.RemoveArchiver(cmd.Context(), nodeID); err != nil {
		if errors.Is(err, models.ErrArchiverNotFound) {
			return fmt.Errorf("archiver %d not found", nodeID)
		}
		return fmt.Errorf("failed to remove archiver: %w", err)
	}

	fmt.Printf("Removed archiver %d\n", nodeID)
	return nil
}
