package comment

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Marker starts a comment under the whitespace-ignoring option.
const Marker = "# "

var commentStyle = color.New(color.FgGreen)

// Options controls the annotation pass.
type Options struct {
	// Colorize styles the comment text for terminal output. Padding is
	// computed before styling, so alignment is unaffected.
	Colorize bool
}

// Build appends a "# description" comment to every line, all comments
// starting at the same column: one past the widest line.
//
// lines and infos must have the same length; anything else is a bug in the
// caller and panics.
func Build(lines []string, infos *Collection, opt Options) string {
	if infos == nil {
		panic("comment: nil line info collection")
	}
	if len(lines) != infos.Len() {
		panic(fmt.Sprintf("comment: %d lines but %d line infos", len(lines), infos.Len()))
	}

	widths := make([]int, len(lines))
	maxWidth := 0
	for i, line := range lines {
		widths[i] = runewidth.StringWidth(line)
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		sb.WriteString(strings.Repeat(" ", maxWidth-widths[i]+1))

		text := Marker + infos.At(i).Description()
		if opt.Colorize {
			text = commentStyle.Sprint(text)
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// Column returns the zero-based column at which Build places comments for
// the given lines.
func Column(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, runewidth.StringWidth(line))
	}
	return maxWidth + 1
}
