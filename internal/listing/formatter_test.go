package listing

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris/todosort/pkg/models"
)

var jst = time.FixedZone("JST", 9*60*60)

func TestFormatTimestampIn(t *testing.T) {
	assert.Equal(t, "2024/11/11 05:57:28", FormatTimestampIn(1731304648, time.UTC))
	assert.Equal(t, "2024/11/11 14:57:28", FormatTimestampIn(1731304648, jst))
	assert.Equal(t, "1970/01/01 00:00:00", FormatTimestampIn(0, time.UTC))
}

// TestFormatTimestamp_Local verifies the fixed-width layout in the local zone
func TestFormatTimestamp_Local(t *testing.T) {
	got := FormatTimestamp(1731304648)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}$`), got)
	assert.Equal(t, time.Unix(1731304648, 0).Local().Format(TimestampLayout), got)
	assert.Equal(t, FormatTimestampIn(1731304648, nil), got)
}

// TestFormatTimestamp_ZeroPadding verifies single-digit fields are padded
func TestFormatTimestamp_ZeroPadding(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Unix()
	assert.Equal(t, "2024/01/02 03:04:05", FormatTimestampIn(ts, time.UTC))
}

func TestFormatRecords_SampleData(t *testing.T) {
	// Given: the sample records in their embedded order
	records := models.SampleRecords()

	// When: rendering without color in JST
	output := FormatRecords(records, Options{Location: jst, NoColor: true})

	// Then: each record shows title, detail and both timestamps
	assert.Contains(t, output, "牛乳買う / いつもの牛乳\n")
	assert.Contains(t, output, "  created: 2024/11/05 23:57:28 / due: 2024/11/11 14:57:28\n")
	assert.Contains(t, output, "娘の迎え / なんば保育園\n")
	assert.Contains(t, output, "掃除する / トイレ, 風呂\n")

	// And: records appear in the order given, separated by blank lines
	first := strings.Index(output, "牛乳買う")
	second := strings.Index(output, "娘の迎え")
	third := strings.Index(output, "掃除する")
	assert.True(t, first < second && second < third, "records should keep input order")
	assert.Equal(t, 2, strings.Count(output, "\n\n"))
}

func TestFormatRecords_Empty(t *testing.T) {
	assert.Equal(t, "No records\n", FormatRecords(nil, Options{NoColor: true}))
}

func TestFormatRecords_NoDetail(t *testing.T) {
	records := []models.Record{{Title: "just a title", CreatedAt: 0, DueAt: 60}}

	output := FormatRecords(records, Options{Location: time.UTC, NoColor: true})

	assert.Equal(t, "just a title\n  created: 1970/01/01 00:00:00 / due: 1970/01/01 00:01:00\n", output)
}

func TestFormatRecords_Relative(t *testing.T) {
	now := time.Unix(1731304648, 0)
	records := []models.Record{
		{Title: "future", DueAt: now.Add(3 * 24 * time.Hour).Unix()},
		{Title: "past", DueAt: now.Add(-3 * 24 * time.Hour).Unix()},
	}

	output := FormatRecords(records, Options{Location: time.UTC, NoColor: true, Relative: true, Now: now})

	assert.Contains(t, output, "(due 3 days from now)")
	assert.Contains(t, output, "(due 3 days ago)")
}

func TestFormatRecords_WithoutRelative(t *testing.T) {
	output := FormatRecords(models.SampleRecords(), Options{NoColor: true})
	assert.NotContains(t, output, "from now")
	assert.NotContains(t, output, "ago")
}

// TestFormatRecords_Width verifies wide characters are measured by display width
func TestFormatRecords_Width(t *testing.T) {
	records := models.SampleRecords()[:1]

	t.Run("detail truncated", func(t *testing.T) {
		output := FormatRecords(records, Options{NoColor: true, Width: 15})
		line := strings.SplitN(output, "\n", 2)[0]

		assert.True(t, strings.HasPrefix(line, "牛乳買う / "))
		assert.True(t, strings.HasSuffix(line, "…"))
		assert.LessOrEqual(t, ansi.StringWidth(line), 15)
	})

	t.Run("title truncated", func(t *testing.T) {
		output := FormatRecords(records, Options{NoColor: true, Width: 5})
		line := strings.SplitN(output, "\n", 2)[0]

		assert.Equal(t, "牛乳…", line)
	})

	t.Run("fits", func(t *testing.T) {
		output := FormatRecords(records, Options{NoColor: true, Width: 80})
		assert.Contains(t, output, "牛乳買う / いつもの牛乳\n")
	})
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "hello", truncateWithEllipsis("hello", 5))
	assert.Equal(t, "hel…", truncateWithEllipsis("hello", 4))
	assert.Equal(t, "…", truncateWithEllipsis("hello", 1))
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	err := FormatJSON(&buf, models.SampleRecords(), time.UTC)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "牛乳買う", decoded[0]["title"])
	assert.Equal(t, "いつもの牛乳", decoded[0]["detail"])
	assert.Equal(t, float64(1731304648), decoded[0]["due_at"])
	assert.Equal(t, float64(1730818648), decoded[0]["created_at"])
	assert.Equal(t, "2024/11/11 05:57:28", decoded[0]["due"])
	assert.Equal(t, "2024/11/05 14:57:28", decoded[0]["created"])
}

func TestFormatJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, nil, time.UTC))
	assert.Equal(t, "[]\n", buf.String())
}
