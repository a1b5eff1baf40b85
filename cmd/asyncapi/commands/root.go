// Package commands provides the asyncapi CLI commands.
package commands

import "github.com/spf13/cobra"

// Apply adds all asyncapi commands to the provided root command.
func Apply(root *cobra.Command) {
	root.AddCommand(validateCmd)
	root.AddCommand(convertCmd)
}
