package util

import (
	"fmt"
	"time"
)

// FormatHours renders a fractional hour count, e.g. "1.5h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// FormatMinutes renders a minute count as hours and minutes, e.g. "1h 30m".
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dm", rest)
}

// FormatDuration renders a time.Duration as hours and minutes.
func FormatDuration(d time.Duration) string {
	return FormatMinutes(int(d.Minutes()))
}
