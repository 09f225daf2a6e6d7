package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRecords(t *testing.T) {
	records := SampleRecords()
	require.Len(t, records, 3)

	assert.Equal(t, "牛乳買う", records[0].Title)
	assert.Equal(t, int64(1730818648), records[0].CreatedAt)
	assert.Equal(t, int64(1731304648), records[0].DueAt)
	assert.Equal(t, "娘の迎え", records[1].Title)
	assert.Equal(t, "掃除する", records[2].Title)
}

// TestSampleRecords_FreshSlice verifies callers cannot alter the embedded data
func TestSampleRecords_FreshSlice(t *testing.T) {
	first := SampleRecords()
	first[0].Title = "changed"
	first[1], first[2] = first[2], first[1]

	second := SampleRecords()
	assert.Equal(t, "牛乳買う", second[0].Title)
	assert.Equal(t, "娘の迎え", second[1].Title)
}
