package domain

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders ts as an elapsed-time bucket relative to now.
// A zero ts means no activity and renders as "-".
func FormatRelativeTime(ts, now time.Time) string {
	if ts.IsZero() {
		return "-"
	}

	seconds := int64(now.Sub(ts) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < 60:
		return formatWithUnit(seconds, "s")
	case seconds < 3600:
		return formatWithUnit(seconds/60, "m")
	case seconds < 86400:
		return formatWithUnit(seconds/3600, "h")
	default:
		return formatWithUnit(seconds/86400, "d")
	}
}

func formatWithUnit(value int64, unit string) string {
	return fmt.Sprintf("%d%s ago", value, unit)
}
