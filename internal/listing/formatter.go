// Package listing renders records as text or JSON for the CLI and the TUI.
package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/chris/todosort/pkg/models"
)

// Styles for list output
var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true) // bright-magenta
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))            // white
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // bright-blue
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // bright-black
	relativeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // bright-green
)

// Options controls how records are rendered
type Options struct {
	Location *time.Location // Zone for timestamps, nil for local time
	NoColor  bool           // Disable color output
	Width    int            // Truncate the title line to this display width, 0 for no limit
	Relative bool           // Append a humanized due time
	Now      time.Time      // Reference time for Relative, zero means time.Now()
}

// Helper function to render with or without colors
func renderStyle(style lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// FormatRecords renders records in the order given, one entry per record
// separated by blank lines
func FormatRecords(records []models.Record, opts Options) string {
	if len(records) == 0 {
		return renderStyle(labelStyle, "No records", opts.NoColor) + "\n"
	}

	now := opts.Now
	if opts.Relative && now.IsZero() {
		now = time.Now()
	}

	var output strings.Builder
	for i, r := range records {
		if i > 0 {
			output.WriteString("\n")
		}

		// Title line, truncated before styling so widths are measured on plain text
		title, detail := r.Title, r.Detail
		if opts.Width > 0 {
			title, detail = fitTitleLine(title, detail, opts.Width)
		}
		if detail != "" {
			fmt.Fprintf(&output, "%s / %s\n",
				renderStyle(titleStyle, title, opts.NoColor),
				renderStyle(detailStyle, detail, opts.NoColor))
		} else {
			fmt.Fprintf(&output, "%s\n", renderStyle(titleStyle, title, opts.NoColor))
		}

		// Timestamp line
		fmt.Fprintf(&output, "  %s %s / %s %s",
			renderStyle(labelStyle, "created:", opts.NoColor),
			renderStyle(timestampStyle, FormatTimestampIn(r.CreatedAt, opts.Location), opts.NoColor),
			renderStyle(labelStyle, "due:", opts.NoColor),
			renderStyle(timestampStyle, FormatTimestampIn(r.DueAt, opts.Location), opts.NoColor))
		if opts.Relative {
			fmt.Fprintf(&output, " %s", renderStyle(relativeStyle, "("+relativeDue(r.DueAt, now)+")", opts.NoColor))
		}
		output.WriteString("\n")
	}

	return output.String()
}

// fitTitleLine shortens the "title / detail" line to width, dropping detail
// first and then truncating the title
func fitTitleLine(title, detail string, width int) (string, string) {
	sep := " / "
	if ansi.StringWidth(title)+ansi.StringWidth(sep)+ansi.StringWidth(detail) <= width {
		return title, detail
	}

	remaining := width - ansi.StringWidth(title) - ansi.StringWidth(sep)
	if remaining >= 2 {
		return title, truncateWithEllipsis(detail, remaining)
	}
	return truncateWithEllipsis(title, width), ""
}

// truncateWithEllipsis truncates a string to maxWidth, adding … if truncated
func truncateWithEllipsis(s string, maxWidth int) string {
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	// Truncate to maxWidth-1 to leave room for …
	truncated := ansi.Truncate(s, maxWidth-1, "")
	return truncated + "…"
}

// relativeDue describes the due time relative to now, e.g. "due 2 days from now"
func relativeDue(due int64, now time.Time) string {
	return "due " + humanize.RelTime(time.Unix(due, 0), now, "ago", "from now")
}

// jsonRecord is the JSON shape of a rendered record
type jsonRecord struct {
	models.Record
	Created string `json:"created"`
	Due     string `json:"due"`
}

// FormatJSON writes records as an indented JSON array, adding formatted
// created and due timestamps
func FormatJSON(w io.Writer, records []models.Record, loc *time.Location) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		out = append(out, jsonRecord{
			Record:  r,
			Created: FormatTimestampIn(r.CreatedAt, loc),
			Due:     FormatTimestampIn(r.DueAt, loc),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}
