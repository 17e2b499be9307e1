package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in       string
		expected time.Time
	}{
		{"2024-06-15T12:00:00Z", testNow},
		{"2024-06-15T12:00:00.000Z", testNow},
		{"  2024-06-15T12:00:00Z ", testNow},
		{"2024-06-15T14:00:00+02:00", testNow},
		{"2024-06-15T12:00:00.250Z", testNow.Add(250 * time.Millisecond)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimestamp(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "want %s got %s", tc.expected, got)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "2024-13-01T00:00:00Z", "2024-06-15"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimestamp(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimestamp)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2 hours", FormatDuration(2*time.Hour))
	assert.Equal(t, "1 hour 30 minutes", FormatDuration(90*time.Minute))
	assert.Equal(t, "45 minutes", FormatDuration(45*time.Minute))
	assert.Equal(t, "0 seconds", FormatDuration(300*time.Millisecond))
}
