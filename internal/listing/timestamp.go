package listing

import "time"

// TimestampLayout is the fixed-width layout used for every rendered time
const TimestampLayout = "2006/01/02 15:04:05"

// FormatTimestamp renders a Unix timestamp as YYYY/MM/DD HH:MM:SS in the
// local time zone
func FormatTimestamp(sec int64) string {
	return FormatTimestampIn(sec, time.Local)
}

// FormatTimestampIn renders a Unix timestamp in loc. A nil loc means local time.
func FormatTimestampIn(sec int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(TimestampLayout)
}
