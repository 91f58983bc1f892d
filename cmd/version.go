package cmd

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the archdoc version",
		Args:  cobra.ExactArgs(0),
		Run: func(c *cobra.Command, _ []string) {
			c.Printf("archdoc %s\n", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
