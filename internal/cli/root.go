package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "snag",
	Short:   "A minimal terminal HTTP GET client",
	Version: version,
	Long: `Snag fetches a single URL with a GET request and prints the body.
It supports custom headers, a YAML client configuration file, and
JSONPath extraction from JSON responses.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
}
