package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chris/todosort/internal/strategy"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the available sort keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := cfg.SortKey()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, opt := range strategy.Options() {
			marker := ""
			if opt.Key == current {
				marker = " (default)"
			}
			fmt.Fprintf(out, "%-12s %s%s\n", opt.Key, opt.Label, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
