// Package tui implements the interactive sort view: a selection control over
// the sort orders and the record list rendered in the active order.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/chris/todosort/internal/strategy"
	"github.com/chris/todosort/pkg/models"
)

// Model represents the TUI state
type Model struct {
	// Data, fixed for the life of the model
	records []models.Record

	// Selection
	options []strategy.Option
	cursor  int
	sorter  *strategy.Sorter

	// Rendering
	locale   language.Tag
	location *time.Location
	relative bool

	// UI
	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int

	logger zerolog.Logger

	// For testing - allows injecting "now"
	now func() time.Time
}

// Option is a functional option for configuring the Model
type Option func(*Model)

// WithLocale sets the collation locale used by the title strategies
func WithLocale(tag language.Tag) Option {
	return func(m *Model) {
		m.locale = tag
	}
}

// WithLocation sets the time zone for rendered timestamps
func WithLocation(loc *time.Location) Option {
	return func(m *Model) {
		m.location = loc
	}
}

// WithInitialKey sets the selection shown on launch
func WithInitialKey(k strategy.Key) Option {
	return func(m *Model) {
		for i, opt := range m.options {
			if opt.Key == k {
				m.cursor = i
			}
		}
	}
}

// WithRelative appends humanized due times to each record
func WithRelative(relative bool) Option {
	return func(m *Model) {
		m.relative = relative
	}
}

// WithLogger sets the logger used for selection changes
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithNow sets the function used to get the current time (for testing)
func WithNow(fn func() time.Time) Option {
	return func(m *Model) {
		m.now = fn
	}
}

// New creates a Model over a copy of records
func New(records []models.Record, opts ...Option) *Model {
	m := &Model{
		records: append([]models.Record(nil), records...),
		options: strategy.Options(),
		locale:  language.Japanese,
		keys:    newKeyMap(),
		help:    help.New(),
		logger:  zerolog.Nop(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.sorter = strategy.NewSorter(strategy.ForKey(m.SelectedKey(), m.locale))

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.selectIndex(m.cursor + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.selectIndex(m.cursor - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx < len(m.options) {
			m.selectIndex(idx)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// selectIndex moves the cursor and swaps the active strategy, the same way a
// select element applies its value on change
func (m *Model) selectIndex(idx int) {
	m.cursor = idx
	k := m.options[idx].Key
	m.sorter.SetStrategy(strategy.ForKey(k, m.locale))
	m.logger.Debug().Str("key", string(k)).Msg("sort changed")
}

// View implements tea.Model
func (m *Model) View() string {
	return m.renderView()
}

// Getters for testing
func (m *Model) SelectedKey() strategy.Key {
	return m.options[m.cursor].Key
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) ShowHelp() bool {
	return m.showHelp
}

// Sorted returns the records in the active order. It sorts on every call.
func (m *Model) Sorted() []models.Record {
	return m.sorter.Sort(m.records)
}
