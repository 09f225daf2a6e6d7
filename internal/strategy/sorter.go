package strategy

import (
	"golang.org/x/text/language"

	"github.com/chris/todosort/pkg/models"
)

// Sorter holds the active Strategy and delegates sorting to it
type Sorter struct {
	strategy Strategy
}

// NewSorter creates a Sorter using s. A nil strategy is replaced with title
// ascending for Japanese, so a Sorter always has a strategy.
func NewSorter(s Strategy) *Sorter {
	if s == nil {
		s = TitleAscending(language.Japanese)
	}
	return &Sorter{strategy: s}
}

// SetStrategy replaces the active strategy. It takes effect on the next Sort.
// Nil is ignored.
func (s *Sorter) SetStrategy(strategy Strategy) {
	if strategy == nil {
		return
	}
	s.strategy = strategy
}

// Strategy returns the active strategy
func (s *Sorter) Strategy() Strategy {
	return s.strategy
}

// Sort returns records ordered by the active strategy
func (s *Sorter) Sort(records []models.Record) []models.Record {
	return s.strategy.Sort(records)
}
