package timeutil

import (
	"fmt"
	"strings"
)

// FormatSeconds renders a preparation or cooking time for display, e.g.
// "1 hour and 1 minute". Zero (or less) renders as "None" and anything under
// a minute as "< 1 minute". Leftover seconds are dropped.
func FormatSeconds(seconds int) string {
	if seconds <= 0 {
		return "None"
	}
	if seconds < 60 {
		return "< 1 minute"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	var parts []string
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " and ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
