package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current version of todosort
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of todosort",
	Long:  "Print the version number of todosort",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todosort version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
