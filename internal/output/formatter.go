package output

import (
	"fmt"
	"io"
	"strings"
)

// Format orchestrates the output pipeline: alignment then optional
// colorization of notes. Each line ends with a newline.
//
// Alignment always runs. Only the note (including its "# " prefix) is
// colored; the text is never wrapped in escape codes.
func Format(lines []Line, colorEnabled bool) string {
	padded := Align(lines)

	var b strings.Builder
	for i, l := range lines {
		b.WriteString(padded[i])
		if l.HasNote() {
			note := NotePrefix + l.Note
			if colorEnabled {
				note = Paint(note, l.Tone)
			}
			b.WriteString(note)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Printer writes formatted lines to an output stream.
type Printer struct {
	W     io.Writer
	Color bool
}

// Print formats and writes lines.
func (p *Printer) Print(lines ...Line) error {
	_, err := io.WriteString(p.W, Format(lines, p.Color))
	return err
}

// Printf writes a single unnoted line.
func (p *Printer) Printf(format string, args ...any) error {
	return p.Print(Line{Text: fmt.Sprintf(format, args...)})
}
