package luego

import "time"

// dateLayouts are tried in order until one parses. ISO-8601 variants come
// first (with fractional seconds, without, date-only), then a fixed list of
// locale-invariant publisher formats.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02 15:04:05",
	"Jan 02, 2006",
	"January 02, 2006",
}

// ParseDate parses a raw publisher date string. The first matching layout
// wins; exhausting the list reports false rather than an error, since a
// publication date is optional metadata.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
