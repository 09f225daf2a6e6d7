package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris/todosort/internal/listing"
)

// Styles
var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	normalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const marginX = 2

func (m *Model) renderView() string {
	var b strings.Builder

	width := m.width
	if width == 0 {
		width = 80
	}

	// Content width excludes left and right margins
	contentWidth := width - 2*marginX
	if contentWidth < 20 {
		contentWidth = 20
	}
	margin := strings.Repeat(" ", marginX)

	// Header
	b.WriteString(margin + headerStyle.Render("Strategy Pattern"))
	b.WriteString("\n")
	b.WriteString(margin + separatorStyle.Render(strings.Repeat("=", contentWidth)))
	b.WriteString("\n\n")

	// Selection control
	b.WriteString(margin + labelStyle.Render("Sort by"))
	b.WriteString("\n")
	for i, opt := range m.options {
		b.WriteString(margin + m.renderOption(i, opt.Label, i == m.cursor))
		b.WriteString("\n")
	}

	// Records, re-sorted on every render
	b.WriteString("\n")
	b.WriteString(margin + separatorStyle.Render(strings.Repeat("─", contentWidth)))
	b.WriteString("\n")
	list := listing.FormatRecords(m.Sorted(), listing.Options{
		Location: m.location,
		Width:    contentWidth,
		Relative: m.relative,
		Now:      m.now(),
	})
	for _, line := range strings.Split(strings.TrimSuffix(list, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(margin + line + "\n")
	}

	// Status bar
	b.WriteString("\n")
	b.WriteString(margin + separatorStyle.Render(strings.Repeat("─", contentWidth)))
	b.WriteString("\n")
	b.WriteString(margin + m.renderStatusBar())

	return b.String()
}

func (m *Model) renderOption(idx int, label string, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▶ "
	}

	line := fmt.Sprintf("%s%d %s", prefix, idx+1, label)
	if selected {
		return selectedStyle.Render(line)
	}
	return normalStyle.Render(line)
}

func (m *Model) renderStatusBar() string {
	if m.showHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
