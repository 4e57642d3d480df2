package runtime

import "strings"

// renderWindow produces the display-ready tape string for the window around
// head, plus the head's offset within that window. The offset feeds the
// marker line that aligns a caret under the head cell.
func renderWindow(t *Tape, head int) (window string, offset int) {
	lo, hi := t.Bounds(head)
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		b.WriteString(string(t.Read(i)))
	}
	return b.String(), head - lo
}

// headMarker renders the caret line fragment: offset spaces followed by '^'.
func headMarker(offset int) string {
	return strings.Repeat(" ", offset) + "^"
}
