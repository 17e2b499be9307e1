package freshness

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)

func TestComputeExpiry(t *testing.T) {
	cases := []struct {
		name     string
		offset   time.Duration
		expected Status
	}{
		{"exactly now", 0, Expired{}},
		{"one minute ago", -time.Minute, Expired{}},
		{"a day ago", -24 * time.Hour, Expired{}},
		{"sub-millisecond ahead", 999 * time.Microsecond, Expired{}},
		{"one millisecond ahead", time.Millisecond, Remaining{Hours: 0, Minutes: 0, Urgent: true}},
		{"59 seconds", 59 * time.Second, Remaining{Hours: 0, Minutes: 0, Urgent: true}},
		{"45 minutes", 45 * time.Minute, Remaining{Hours: 0, Minutes: 45, Urgent: true}},
		{"one hour", time.Hour, Remaining{Hours: 1, Minutes: 0, Urgent: true}},
		{"90 minutes", 90 * time.Minute, Remaining{Hours: 1, Minutes: 30, Urgent: true}},
		{"119 minutes", 119 * time.Minute, Remaining{Hours: 1, Minutes: 59, Urgent: true}},
		{"119m59s", 119*time.Minute + 59*time.Second, Remaining{Hours: 1, Minutes: 59, Urgent: true}},
		{"two hours", 2 * time.Hour, Remaining{Hours: 2, Minutes: 0, Urgent: false}},
		{"three hours", 3 * time.Hour, Remaining{Hours: 3, Minutes: 0, Urgent: false}},
		{"20h15m", 20*time.Hour + 15*time.Minute, Remaining{Hours: 20, Minutes: 15, Urgent: false}},
		{"three days", 72 * time.Hour, Remaining{Hours: 72, Minutes: 0, Urgent: false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeExpiry(testNow.Add(tc.offset), testNow)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("ComputeExpiry() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeExpiry_PastIsAlwaysExpired(t *testing.T) {
	for d := time.Millisecond; d < 48*time.Hour; d = d*3 + time.Second {
		assert.Equal(t, Expired{}, ComputeExpiry(testNow.Add(-d), testNow), "offset -%s", d)
	}
}

func TestComputeExpiry_MinutesInRange(t *testing.T) {
	for d := time.Millisecond; d < 30*time.Hour; d += 7*time.Minute + 13*time.Second {
		r, ok := ComputeExpiry(testNow.Add(d), testNow).(Remaining)
		if !assert.True(t, ok, "offset %s", d) {
			continue
		}
		assert.GreaterOrEqual(t, r.Minutes, 0)
		assert.Less(t, r.Minutes, 60)
		assert.Equal(t, r.Hours < 2, r.Urgent, "offset %s", d)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		offset   time.Duration
		expected string
	}{
		{-time.Hour, "Expired"},
		{0, "Expired"},
		{30 * time.Second, "0m remaining"},
		{45 * time.Minute, "45m remaining"},
		{90 * time.Minute, "1h 30m remaining"},
		{3 * time.Hour, "3h 0m remaining"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("offset %s", tc.offset), func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeExpiry(testNow.Add(tc.offset), testNow).Label())
		})
	}
}

func TestUrgencyOf(t *testing.T) {
	assert.Equal(t, Gone, UrgencyOf(Expired{}))
	assert.Equal(t, Urgent, UrgencyOf(Remaining{Hours: 1, Minutes: 59, Urgent: true}))
	assert.Equal(t, Fresh, UrgencyOf(Remaining{Hours: 2, Urgent: false}))
	assert.Equal(t, "expired", Gone.String())
	assert.Equal(t, "urgent", Urgent.String())
	assert.Equal(t, "fresh", Fresh.String())
}

func TestIsExpired(t *testing.T) {
	assert.True(t, IsExpired(ComputeExpiry(testNow, testNow)))
	assert.False(t, IsExpired(ComputeExpiry(testNow.Add(time.Minute), testNow)))
}

func TestComputeExpiry_Idempotent(t *testing.T) {
	at := testNow.Add(95 * time.Minute)
	first := ComputeExpiry(at, testNow)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, first, ComputeExpiry(at, testNow))
			}
		}()
	}
	wg.Wait()
}
