package node

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marmos91/archreg/cmd/archreg/cmdutil"
	"github.com/marmos91/archreg/internal/cli/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all archiver nodes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := cmdutil.OpenRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	nodes, err := reg.ListArchivers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list archivers: %w", err)
	}

	if len(nodes) == 0 {
		fmt.Println("No archiver nodes registered.")
		return nil
	}

	table := output.NewTableData("NODE ID", "NAME", "HOST")
	for _, node := range nodes {
		table.AddRow(strconv.FormatInt(node.NodeID, 10), node.NodeName, node.NodeHost)
	}

	return output.PrintTable(os.Stdout, table)
}
