package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris/todosort/internal/config"
	"github.com/chris/todosort/internal/strategy"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "todosort",
	Short: "Sort a task list with interchangeable strategies",
	Long: `A small demo of the Strategy pattern: a fixed list of tasks sorted by
title, creation time or due time, with the order chosen at runtime.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (.toml or .env)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// resolveSortKey returns the key given on the command line, or the
// configured one when the flag is empty
func resolveSortKey(flag string) (strategy.Key, error) {
	if flag == "" {
		return cfg.SortKey()
	}
	return strategy.ParseKey(flag)
}
