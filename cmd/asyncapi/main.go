package main

import (
	"fmt"
	"os"

	"github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "asyncapi",
	Short: "Toolkit for working with AsyncAPI 3.0 documents",
	Long: `A toolkit for working with AsyncAPI 3.0 documents.

This CLI provides tools for:
- Validating AsyncAPI documents for compliance with the AsyncAPI Specification
- Converting documents between YAML and JSON renditions while preserving key order`,
	Version: version,
}

func init() {
	commands.Apply(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
