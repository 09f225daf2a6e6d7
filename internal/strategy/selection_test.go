package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestForKey(t *testing.T) {
	ja := language.Japanese
	tests := []struct {
		key  Key
		want Strategy
	}{
		{TitleAsc, ByTitle{Locale: ja}},
		{TitleDesc, ByTitle{Locale: ja, Descending: true}},
		{CreatedAsc, ByCreated{}},
		{CreatedDesc, ByCreated{Descending: true}},
		{LimitAsc, ByDue{}},
		{LimitDesc, ByDue{Descending: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ForKey(tt.key, ja))
		})
	}
}

func TestForKey_FallsBackToTitleAscending(t *testing.T) {
	for _, key := range []Key{"", "priority", "TITLEASC", "limit"} {
		assert.Equal(t, TitleAscending(language.English), ForKey(key, language.English), "key %q", key)
	}
}

func TestParseKey(t *testing.T) {
	for _, key := range Keys() {
		parsed, err := ParseKey(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	}
}

func TestParseKey_Unknown(t *testing.T) {
	_, err := ParseKey("dueAsc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.Contains(t, err.Error(), `"dueAsc"`)
	assert.Contains(t, err.Error(), "limitAsc")
}

func TestOptions_Order(t *testing.T) {
	assert.Equal(t, []Key{TitleAsc, TitleDesc, CreatedAsc, CreatedDesc, LimitAsc, LimitDesc}, Keys())

	opts := Options()
	require.Len(t, opts, 6)
	assert.Equal(t, "Title ascending", opts[0].Label)
	assert.Equal(t, "Due descending", opts[5].Label)

	// Mutating the returned slice must not affect the table
	opts[0].Label = "changed"
	opt, ok := LookupOption(TitleAsc)
	require.True(t, ok)
	assert.Equal(t, "Title ascending", opt.Label)
}

func TestLookupOption_Unknown(t *testing.T) {
	_, ok := LookupOption("nope")
	assert.False(t, ok)
}
