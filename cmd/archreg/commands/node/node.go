// Package node implements archiver node management commands for archreg.
package node

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Cmd is the parent command for archiver node management.
var Cmd = &cobra.Command{
	Use:   "node",
	Short: "Archiver node management",
	Long: `Manage archiver nodes in the registry.

Node commands allow you to register, inspect, list, and remove archiver
nodes. Node ids are assigned by the registry and never reused.

Examples:
  # Register a node with the default archiver_<id> name
  archreg node add --host 10.0.0.1

  # Register a node with an explicit name
  archreg node add --name backup-1 --host 10.0.0.2

  # Show a node
  archreg node get 1

  # List all nodes
  archreg node list

  # Remove a node
  archreg node remove 1`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(removeCmd)
}

// parseNodeID parses a node id argument.
func parseNodeID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q: must be an integer", arg)
	}
	return id, nil
}
