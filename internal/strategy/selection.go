package strategy

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Key identifies one of the selectable sort orders
type Key string

const (
	TitleAsc    Key = "titleAsc"
	TitleDesc   Key = "titleDesc"
	CreatedAsc  Key = "createdAsc"
	CreatedDesc Key = "createdDesc"
	LimitAsc    Key = "limitAsc"
	LimitDesc   Key = "limitDesc"
)

// DefaultKey is the selection used when nothing else is chosen
const DefaultKey = TitleAsc

// ErrUnknownKey is returned by ParseKey for values outside the enumeration
var ErrUnknownKey = errors.New("unknown sort key")

// Option pairs a selection key with its display label and constructor
type Option struct {
	Key   Key
	Label string
	New   func(locale language.Tag) Strategy
}

// options lists the selectable sort orders in display order
var options = []Option{
	{Key: TitleAsc, Label: "Title ascending", New: TitleAscending},
	{Key: TitleDesc, Label: "Title descending", New: TitleDescending},
	{Key: CreatedAsc, Label: "Created ascending", New: func(language.Tag) Strategy { return CreatedAscending() }},
	{Key: CreatedDesc, Label: "Created descending", New: func(language.Tag) Strategy { return CreatedDescending() }},
	{Key: LimitAsc, Label: "Due ascending", New: func(language.Tag) Strategy { return DueAscending() }},
	{Key: LimitDesc, Label: "Due descending", New: func(language.Tag) Strategy { return DueDescending() }},
}

// Options returns the selectable sort orders in display order
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Keys returns every selection key in display order
func Keys() []Key {
	keys := make([]Key, len(options))
	for i, opt := range options {
		keys[i] = opt.Key
	}
	return keys
}

// LookupOption finds the option for key
func LookupOption(key Key) (Option, bool) {
	for _, opt := range options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

// ForKey returns the strategy for key. Unknown keys fall back to DefaultKey.
func ForKey(key Key, locale language.Tag) Strategy {
	opt, ok := LookupOption(key)
	if !ok {
		opt, _ = LookupOption(DefaultKey)
	}
	return opt.New(locale)
}

// ParseKey validates s as a selection key
func ParseKey(s string) (Key, error) {
	key := Key(s)
	if _, ok := LookupOption(key); !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, s, validKeys())
	}
	return key, nil
}

func validKeys() string {
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, string(opt.Key))
	}
	return strings.Join(names, ", ")
}
