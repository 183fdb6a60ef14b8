// Package draw renders to ANSI terminals using a half-block sub-pixel canvas.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// FitArea returns the largest canvas (columns, rows) inside a terminal of
// termWidth x termHeight that keeps the logical aspect ratio, and the 0-based
// offsets that centre it. Sub-pixels are treated as square: one column wide,
// half a row tall.
func FitArea(termWidth, termHeight int, logicalWidth, logicalHeight float64) (cols, rows, offCol, offRow int) {
	if termWidth <= 0 || termHeight <= 0 || logicalWidth <= 0 || logicalHeight <= 0 {
		return 0, 0, 0, 0
	}
	aspect := logicalWidth / logicalHeight

	rows = termHeight
	cols = int(float64(rows*2) * aspect)
	if cols > termWidth {
		cols = termWidth
		rows = int(float64(cols) / aspect / 2)
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows, (termWidth - cols) / 2, (termHeight - rows) / 2
}
