package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"
)

// ErrInvalidTimestamp is returned for timestamps that cannot be parsed.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ParseTimestamp parses an RFC 3339 timestamp. Fractional seconds are
// optional, so both "2024-06-15T12:00:00Z" and "2024-06-15T12:00:00.000Z"
// are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, s, err)
	}
	return t, nil
}

// FormatDuration renders d in long form with at most two units, e.g.
// "1 hour 30 minutes". Sub-second precision is dropped.
func FormatDuration(d time.Duration) string {
	if d < time.Second && d > -time.Second {
		return "0 seconds"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).String()
}
