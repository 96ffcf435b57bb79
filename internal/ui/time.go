package ui

import (
	"fmt"
	"time"
)

// FormatRemaining renders a signed duration as "1h05m", "12m", or "42s".
// Negative durations keep a leading "-". Sub-second precision is truncated.
func FormatRemaining(duration time.Duration) string {
	total := int64(duration / time.Second)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}

	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60

	if hours >= 1 {
		return fmt.Sprintf("%s%dh%02dm", sign, hours, minutes)
	}
	if minutes >= 1 {
		return fmt.Sprintf("%s%dm", sign, minutes)
	}
	return fmt.Sprintf("%s%ds", sign, seconds)
}

// FormatClock renders t as a wall-clock time, adding the date when t is not
// on the same day as now.
func FormatClock(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04:05")
	}
	return t.Format("Jan 2 15:04:05")
}
