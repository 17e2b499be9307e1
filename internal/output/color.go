package output

import (
	"os"

	"github.com/ahmetb/foodshare/internal/freshness"
	"golang.org/x/term"
)

// ANSI escape sequence constants.
const Reset = "\x1b[0m"

// Tone is the emphasis a note is rendered with.
type Tone int

const (
	// Plain notes are not colored.
	Plain Tone = iota
	// Muted is for notes with nothing pressing about them.
	Muted
	// Warn is for things that need attention soon.
	Warn
	// Alert is for things that are over, such as expired food.
	Alert
	// Accent highlights new things, such as unread notifications.
	Accent
)

// Palette maps tones to ANSI colors. Plain has no entry.
var Palette = map[Tone]string{
	Muted:  "\x1b[90m", // Bright Black (gray)
	Warn:   "\x1b[33m", // Yellow (renders orange on most themes)
	Alert:  "\x1b[91m", // Bright Red
	Accent: "\x1b[92m", // Bright Green
}

// Paint wraps text in the tone's color followed by reset. Plain text is
// returned unchanged.
func Paint(text string, tone Tone) string {
	color, ok := Palette[tone]
	if !ok || text == "" {
		return text
	}
	return color + text + Reset
}

// ToneFor maps listing urgency to a tone: expired is red, urgent is orange
// and everything else gray.
func ToneFor(u freshness.Urgency) Tone {
	switch u {
	case freshness.Gone:
		return Alert
	case freshness.Urgent:
		return Warn
	default:
		return Muted
	}
}

// ResolveColor determines whether color output should be enabled based on
// the user's flag value and terminal state.
//
//   - "always": returns true (overrides everything including NO_COLOR)
//   - "never": returns false
//   - "auto": returns false if NO_COLOR env var is set and non-empty,
//     otherwise returns the isTTY parameter
func ResolveColor(flag string, isTTY bool) bool {
	switch flag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if noColor := os.Getenv("NO_COLOR"); noColor != "" {
			return false
		}
		return isTTY
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
