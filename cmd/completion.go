package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris/todosort/internal/strategy"
)

func init() {
	// Register custom completions after all commands are initialized
	cobra.OnInitialize(registerCompletions)
}

func registerCompletions() {
	// --config flag: complete with supported config files
	rootCmd.RegisterFlagCompletionFunc("config", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml", "env"}, cobra.ShellCompDirectiveFilterFileExt
	})

	registerSortCompletions(listCmd)
	registerSortCompletions(tuiCmd)

	listCmd.RegisterFlagCompletionFunc("format", fixedCompletions("text", "json"))
	listCmd.RegisterFlagCompletionFunc("color", fixedCompletions("auto", "always", "never"))
}

// registerSortCompletions completes --sort with the known keys and labels
func registerSortCompletions(cmd *cobra.Command) {
	cmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sortKeyCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// sortKeyCompletions returns "key\tlabel" entries whose key starts with prefix
func sortKeyCompletions(prefix string) []string {
	var completions []string
	for _, opt := range strategy.Options() {
		if strings.HasPrefix(string(opt.Key), prefix) {
			completions = append(completions, string(opt.Key)+"\t"+opt.Label)
		}
	}
	return completions
}

func fixedCompletions(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
