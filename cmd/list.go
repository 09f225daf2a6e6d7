package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chris/todosort/internal/listing"
	"github.com/chris/todosort/internal/strategy"
	"github.com/chris/todosort/pkg/models"
)

var (
	listSort     string
	listFormat   string
	listColor    string
	listWidth    int
	listRelative bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the task list in the chosen order",
	Long: `Sort the embedded task list with the chosen strategy and print it.

Sort keys: titleAsc, titleDesc, createdAsc, createdDesc, limitAsc, limitDesc.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort key (default: from config, titleAsc)")
	listCmd.Flags().StringVar(&listFormat, "format", "text", "Output format: text or json")
	listCmd.Flags().StringVar(&listColor, "color", "auto", "Color output: auto, always or never")
	listCmd.Flags().IntVar(&listWidth, "width", 0, "Truncate title lines to this width (0 for no limit)")
	listCmd.Flags().BoolVar(&listRelative, "relative", false, "Show due times relative to now")
}

func runList(cmd *cobra.Command, args []string) error {
	key, err := resolveSortKey(listSort)
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

	logger, closer, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	sorter := strategy.NewSorter(strategy.ForKey(key, locale))
	sorted := sorter.Sort(models.SampleRecords())
	logger.Debug().
		Str("key", string(key)).
		Str("locale", locale.String()).
		Int("records", len(sorted)).
		Msg("sorted records")

	out := cmd.OutOrStdout()
	switch strings.ToLower(listFormat) {
	case "json":
		return listing.FormatJSON(out, sorted, loc)
	case "text":
		noColor, err := resolveNoColor(listColor, out)
		if err != nil {
			return err
		}
		fmt.Fprint(out, listing.FormatRecords(sorted, listing.Options{
			Location: loc,
			NoColor:  noColor,
			Width:    listWidth,
			Relative: listRelative,
		}))
		return nil
	default:
		return fmt.Errorf("invalid format %q (valid: text, json)", listFormat)
	}
}

// resolveNoColor maps the --color flag to whether styles should be dropped
func resolveNoColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "auto":
		return !isTerminal(w), nil
	case "always":
		// Force color even when piped
		lipgloss.SetColorProfile(termenv.TrueColor)
		return false, nil
	case "never":
		return true, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (valid: auto, always, never)", mode)
	}
}

// isTerminal returns true if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
