// Package freshness classifies how much pickup time a listing has left.
package freshness

import (
	"fmt"
	"time"
)

// UrgentBelow is the remaining time under which a listing is urgent.
const UrgentBelow = 2 * time.Hour

const (
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
)

// Status is the outcome of ComputeExpiry. It is either Expired or Remaining;
// use a type switch to tell them apart.
type Status interface {
	// Label is the short text shown next to a listing.
	Label() string

	isStatus()
}

// Expired means the expiry instant is at or before the reference time.
type Expired struct{}

func (Expired) Label() string { return "Expired" }

func (Expired) isStatus() {}

// Remaining is the pickup time left before a listing expires.
type Remaining struct {
	Hours   int
	Minutes int // 0..59

	// Urgent is set when fewer than two hours remain.
	Urgent bool
}

// Label returns "{h}h {m}m remaining", or "{m}m remaining" when less than an
// hour is left.
func (r Remaining) Label() string {
	if r.Hours > 0 {
		return fmt.Sprintf("%dh %dm remaining", r.Hours, r.Minutes)
	}
	return fmt.Sprintf("%dm remaining", r.Minutes)
}

func (Remaining) isStatus() {}

// ComputeExpiry returns the status of something expiring at expiresAt as
// seen at now. The difference is measured in whole milliseconds, so anything
// within a millisecond of now is already expired.
func ComputeExpiry(expiresAt, now time.Time) Status {
	diff := expiresAt.Sub(now).Milliseconds()
	if diff <= 0 {
		return Expired{}
	}
	hours := diff / msPerHour
	minutes := (diff % msPerHour) / msPerMinute
	return Remaining{
		Hours:   int(hours),
		Minutes: int(minutes),
		Urgent:  hours < int64(UrgentBelow/time.Hour),
	}
}

// Urgency is a coarse classification of a Status used for rendering.
type Urgency int

const (
	// Fresh listings have two hours or more left.
	Fresh Urgency = iota
	// Urgent listings have less than two hours left.
	Urgent
	// Gone listings have expired.
	Gone
)

func (u Urgency) String() string {
	switch u {
	case Fresh:
		return "fresh"
	case Urgent:
		return "urgent"
	case Gone:
		return "expired"
	default:
		return fmt.Sprintf("Urgency(%d)", int(u))
	}
}

// UrgencyOf classifies s.
func UrgencyOf(s Status) Urgency {
	switch v := s.(type) {
	case Remaining:
		if v.Urgent {
			return Urgent
		}
		return Fresh
	default:
		return Gone
	}
}

// IsExpired reports whether s is Expired.
func IsExpired(s Status) bool {
	_, ok := s.(Expired)
	return ok
}
