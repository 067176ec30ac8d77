package todo

import "time"

// DefaultTimeLayout renders timestamps as YYYY-MM-DD HH:MM:SS.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders an RFC3339 timestamp in loc using layout. A value
// that does not parse is returned verbatim.
func FormatTimestamp(raw string, loc *time.Location, layout string) string {
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}
	if loc == nil {
		loc = time.Local
	}
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return t.In(loc).Format(layout)
}

func parseTimestamp(raw string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
