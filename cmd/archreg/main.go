package main

import (
	"fmt"
	"os"

	"github.com/marmos91/archreg/cmd/archreg/commands"

	// Import prometheus metrics to register init() functions
	_ "github.com/marmos91/archreg/pkg/metrics/prometheus"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
