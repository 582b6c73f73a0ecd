package cleanrun

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Start of the second column in usage messages, and the width at which
// the second column is wrapped. Both the options block and the
// arguments block are rendered with these values, so the two sections
// of the help output line up.
const (
	col2Start = 24
	col2Width = 54
)

// Wrap reformats the unwrapped text to fit within maxWidth columns.
// Words are separated by single spaces; a word wider than maxWidth is
// placed alone on its line without being split. Every generated line
// except the first one is prefixed with padWidth spaces.
func wrap(unwrapped string, padWidth, maxWidth int) string {
	var text strings.Builder

	length := 0
	for _, word := range strings.Split(unwrapped, " ") {
		width := runewidth.StringWidth(word)

		if length == 0 {
			text.WriteString(word)
			length += width
			continue
		}

		if length+width+1 > maxWidth {
			text.WriteByte('\n')
			text.WriteString(strings.Repeat(" ", padWidth))
			length = 0
		} else {
			text.WriteByte(' ')
			length++
		}
		text.WriteString(word)
		length += width
	}

	return text.String()
}

// FormatTwoColumns formats two strings as two columns. The second
// column starts at start2 and is wrapped to width2 characters. If the
// first column reaches into the second one, the second column starts
// on a line of its own. The result may contain newlines.
func formatTwoColumns(col1, col2 string, start2, width2 int) string {
	var text strings.Builder

	text.WriteString(col1)
	if width := runewidth.StringWidth(col1); width < start2 {
		text.WriteString(strings.Repeat(" ", start2-width))
	} else {
		text.WriteByte('\n')
		text.WriteString(strings.Repeat(" ", start2))
	}
	text.WriteString(wrap(col2, start2, width2))

	return text.String()
}
