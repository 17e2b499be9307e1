package timeutil

import (
	"fmt"
	"time"
)

const (
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerDay    = 24 * msPerHour
)

// FormatRelativeTime returns how long ago past happened relative to now, such
// as "25 minutes ago", "1 hour ago" or "3 days ago".
//
// The elapsed time is rounded (half up) separately to minutes, hours and days.
// The first bucket that fits wins: minutes below 60, then hours below 24, then
// days. Zero elapsed time is "0 minutes ago".
//
// Future timestamps (past after now) return "just now".
func FormatRelativeTime(past, now time.Time) string {
	diff := now.Sub(past).Milliseconds()
	if diff < 0 {
		return "just now"
	}

	mins := roundDiv(diff, msPerMinute)
	if mins < 60 {
		return ago(mins, "minute")
	}
	hours := roundDiv(diff, msPerHour)
	if hours < 24 {
		return ago(hours, "hour")
	}
	return ago(roundDiv(diff, msPerDay), "day")
}

// roundDiv divides n by d rounding halves up. n must be non-negative and d
// even.
func roundDiv(n, d int64) int64 {
	return (n + d/2) / d
}

func ago(n int64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
