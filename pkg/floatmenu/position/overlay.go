package position

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites panel on top of base with its top-left corner at
// (x, y). Rows outside base or beyond height are dropped; columns are
// measured with ANSI-aware widths, so styled content on either side of the
// panel keeps its escapes.
func Overlay(base, panel string, x, y, width, height int) string {
	baseLines := splitLines(base)
	panelLines := splitLines(panel)
	panelWidth := maxLineWidth(panelLines)

	for i, line := range panelLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || (height > 0 && row >= height) {
			continue
		}

		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}

		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, col, "")
		if w := ansi.StringWidth(left); w < col {
			left += strings.Repeat(" ", col-w)
		}

		panelLine := padRight(line, panelWidth+min(x, 0))
		pos := col + ansi.StringWidth(panelLine)
		right := ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); width > 0 && gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		baseLines[row] = left + panelLine + right
	}
	return strings.Join(baseLines, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces to the given visual width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
