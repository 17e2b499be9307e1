package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MinGap is the minimum number of spaces between a line's text and its note.
const MinGap = 2

// NotePrefix starts every rendered note.
const NotePrefix = "# "

// Line is a single row of output: free text with an optional note that is
// aligned into a column with the notes of neighbouring rows.
type Line struct {
	Text string
	Note string
	Tone Tone
}

// HasNote reports whether the line carries a note.
func (l Line) HasNote() bool { return l.Note != "" }

// Align renders lines with per-block alignment of notes.
//
// Consecutive lines with notes form a block. A line without a note breaks the
// block. Within each block, notes start at (max text width + MinGap) so they
// form a uniform column. Widths are terminal display widths, so names with
// wide characters still line up.
//
// The returned slice holds the padded text (without the note) for each line;
// callers append the note themselves, optionally colored.
func Align(lines []Line) []string {
	result := make([]string, len(lines))
	i := 0
	for i < len(lines) {
		if !lines[i].HasNote() {
			result[i] = lines[i].Text
			i++
			continue
		}

		// Start of a block: find extent
		blockStart := i
		maxWidth := 0
		for i < len(lines) && lines[i].HasNote() {
			if w := runewidth.StringWidth(lines[i].Text); w > maxWidth {
				maxWidth = w
			}
			i++
		}

		alignCol := maxWidth + MinGap
		for j := blockStart; j < i; j++ {
			gap := alignCol - runewidth.StringWidth(lines[j].Text)
			result[j] = lines[j].Text + strings.Repeat(" ", gap)
		}
	}
	return result
}
