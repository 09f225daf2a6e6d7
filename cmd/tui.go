package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chris/todosort/internal/tui"
	"github.com/chris/todosort/pkg/models"
)

var (
	tuiSort     string
	tuiRelative bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pick a sort order interactively",
	Long: `Open an interactive view of the task list. Move through the sort orders
with j/k or jump with 1-6; the list is re-sorted as the selection changes.

Logs are written only to the configured log file, never to the screen.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVarP(&tuiSort, "sort", "s", "", "Initial sort key (default: from config, titleAsc)")
	tuiCmd.Flags().BoolVar(&tuiRelative, "relative", false, "Show due times relative to now")
}

func runTUI(cmd *cobra.Command, args []string) error {
	key, err := resolveSortKey(tuiSort)
	if err != nil {
		return err
	}
	locale, err := cfg.LocaleTag()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// No console writer: anything on stderr would tear the alt screen
	logger, closer, err := cfg.Log.NewLogger(nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	model := tui.New(models.SampleRecords(),
		tui.WithLocale(locale),
		tui.WithLocation(loc),
		tui.WithInitialKey(key),
		tui.WithRelative(tuiRelative),
		tui.WithLogger(logger),
	)

	logger.Info().Str("key", string(key)).Msg("starting tui")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}
