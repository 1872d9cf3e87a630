package varint

import "time"

// ParseTimestamp recognizes ISO-8601, "YYYY-MM-DD hh:mm:ss" and bare
// "hh:mm:ss" timestamp forms and returns microseconds since the Unix epoch
// (UTC). Unrecognized input maps to 0: an unparsable timestamp never aborts
// the pipeline.
func ParseTimestamp(s string) int64 {
	us, ok := TryParseTimestamp(s)
	if !ok {
		return 0
	}

	return us
}

// TryParseTimestamp is the non-coercing counterpart of ParseTimestamp: ok
// reports whether s matched one of the recognized forms.
func TryParseTimestamp(s string) (int64, bool) {
	if t, ok := parseISO8601(s); ok {
		return t.UnixMicro(), true
	}
	if t, ok := parseDateTime(s); ok {
		return t.UnixMicro(), true
	}
	if t, ok := parseTimeOfDay(s); ok {
		return t.UnixMicro(), true
	}

	return 0, false
}

// parseISO8601 matches "YYYY-MM-DDThh:mm:ss[.uuu]Z".
func parseISO8601(s string) (time.Time, bool) {
	for _, layout := range []string{
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05Z",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// parseDateTime matches "YYYY-MM-DD hh:mm:ss".
func parseDateTime(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}, false
	}

	return t.UTC(), true
}

// parseTimeOfDay matches "hh:mm:ss", anchored to today's date.
func parseTimeOfDay(s string) (time.Time, bool) {
	tod, err := time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, false
	}

	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC), true
}
