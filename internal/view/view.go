// Package view turns board state into output lines.
package view

import (
	"fmt"
	"time"

	"github.com/ahmetb/foodshare/internal/board"
	"github.com/ahmetb/foodshare/internal/freshness"
	"github.com/ahmetb/foodshare/internal/output"
	"github.com/ahmetb/foodshare/internal/timeutil"
)

// ShortIDLen is how many characters of an id are shown in lists.
const ShortIDLen = 8

// ShortID abbreviates an id for display. Any unique prefix is accepted back
// as input.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

// Listing renders a listing as a headline with its freshness note, followed
// by indented details.
func Listing(l board.Listing, now time.Time) []output.Line {
	lines := []output.Line{
		listingHeadline(l, now),
		{Text: "    " + l.Description},
		{Text: fmt.Sprintf("    %s · posted by %s", l.Location, l.PostedBy)},
	}
	if l.ImageURL != "" {
		lines = append(lines, output.Line{Text: "    " + l.ImageURL})
	}
	return lines
}

// Listings renders a compact one-line-per-listing table.
func Listings(ls []board.Listing, now time.Time) []output.Line {
	lines := make([]output.Line, 0, len(ls))
	for _, l := range ls {
		lines = append(lines, listingHeadline(l, now))
	}
	return lines
}

func listingHeadline(l board.Listing, now time.Time) output.Line {
	text := fmt.Sprintf("%-*s  %s (%s) @ %s", ShortIDLen, ShortID(l.ID), l.Title, l.Quantity, l.Location)
	if l.Claimed() {
		return output.Line{Text: text, Note: "claimed by " + l.ClaimedBy, Tone: output.Muted}
	}
	status := freshness.ComputeExpiry(l.ExpiresAt, now)
	return output.Line{
		Text: text,
		Note: status.Label(),
		Tone: output.ToneFor(freshness.UrgencyOf(status)),
	}
}

// typeTags label notification types in lists.
var typeTags = map[board.NotificationType]string{
	board.FoodPosted:  "posted",
	board.FoodClaimed: "claimed",
	board.FoodExpired: "expired",
	board.System:      "system",
	board.Feedback:    "feedback",
}

// Notifications renders an inbox, one line per notification with its age.
// Unread notifications are marked "New" and highlighted.
func Notifications(ns []board.Notification, now time.Time) []output.Line {
	lines := make([]output.Line, 0, len(ns))
	for _, n := range ns {
		marker := "   "
		tone := output.Muted
		if !n.Read {
			marker = "New"
			tone = output.Accent
		}
		tag, ok := typeTags[n.Type]
		if !ok {
			tag = string(n.Type)
		}
		lines = append(lines, output.Line{
			Text: fmt.Sprintf("%-*s  %s  [%s] %s: %s", ShortIDLen, ShortID(n.ID), marker, tag, n.Title, n.Message),
			Note: timeutil.FormatRelativeTime(n.Timestamp, now),
			Tone: tone,
		})
	}
	return lines
}

// Profile renders the owner card.
func Profile(p board.Profile) []output.Line {
	lines := []output.Line{
		{Text: fmt.Sprintf("[%s] %s", p.Initials(), p.Name)},
	}
	if p.Email != "" {
		lines = append(lines, output.Line{Text: "  Email:        " + p.Email})
	}
	if p.HostelBlock != "" || p.RoomNumber != "" {
		lines = append(lines, output.Line{Text: fmt.Sprintf("  Hostel/Room:  %s, Room %s", p.HostelBlock, p.RoomNumber)})
	}
	if p.JoinedDate != "" {
		lines = append(lines, output.Line{Text: "  Member since: " + p.JoinedDate})
	}
	return lines
}
