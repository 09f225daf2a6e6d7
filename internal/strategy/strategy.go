// Package strategy holds the interchangeable record orderings and the Sorter
// that applies whichever one is active.
package strategy

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chris/todosort/pkg/models"
)

// Strategy orders a list of records. Implementations return a new slice and
// never modify the input.
type Strategy interface {
	Sort(records []models.Record) []models.Record
}

// ByTitle orders records by title using the collation rules of Locale
type ByTitle struct {
	Locale     language.Tag
	Descending bool
}

// ByCreated orders records by creation time
type ByCreated struct {
	Descending bool
}

// ByDue orders records by due time
type ByDue struct {
	Descending bool
}

// TitleAscending returns a strategy sorting titles A→Z for the given locale
func TitleAscending(locale language.Tag) Strategy {
	return ByTitle{Locale: locale}
}

// TitleDescending returns a strategy sorting titles Z→A for the given locale
func TitleDescending(locale language.Tag) Strategy {
	return ByTitle{Locale: locale, Descending: true}
}

// CreatedAscending returns a strategy sorting oldest-created first
func CreatedAscending() Strategy {
	return ByCreated{}
}

// CreatedDescending returns a strategy sorting newest-created first
func CreatedDescending() Strategy {
	return ByCreated{Descending: true}
}

// DueAscending returns a strategy sorting earliest due first
func DueAscending() Strategy {
	return ByDue{}
}

// DueDescending returns a strategy sorting latest due first
func DueDescending() Strategy {
	return ByDue{Descending: true}
}

// Sort implements Strategy
func (s ByTitle) Sort(records []models.Record) []models.Record {
	// collate.Collator reuses internal buffers, so build one per call
	c := collate.New(s.Locale)
	return sortStable(records, func(a, b models.Record) int {
		return c.CompareString(a.Title, b.Title)
	}, s.Descending)
}

// Sort implements Strategy
func (s ByCreated) Sort(records []models.Record) []models.Record {
	return sortStable(records, func(a, b models.Record) int {
		return cmp.Compare(a.CreatedAt, b.CreatedAt)
	}, s.Descending)
}

// Sort implements Strategy
func (s ByDue) Sort(records []models.Record) []models.Record {
	return sortStable(records, func(a, b models.Record) int {
		return cmp.Compare(a.DueAt, b.DueAt)
	}, s.Descending)
}

// sortStable sorts a copy of records. Descending order swaps the comparator
// arguments rather than reversing the result, so equal keys keep input order.
func sortStable(records []models.Record, compare func(a, b models.Record) int, descending bool) []models.Record {
	sorted := make([]models.Record, len(records))
	copy(sorted, records)

	if descending {
		slices.SortStableFunc(sorted, func(a, b models.Record) int {
			return compare(b, a)
		})
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}
