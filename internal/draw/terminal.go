package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize is the most bytes handed to the writer in one call. It stays
// under a typical 1500 byte MTU so SSH sessions get evenly sized packets.
const maxChunkSize = 1400

// writeChunks writes data in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// appendCursor appends an ANSI cursor position sequence for a 1-based row and column.
func appendCursor(b []byte, row, col int) []byte {
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// ChunkWriter collects one frame of terminal output and sends it with Flush,
// so a frame never reaches the terminal half drawn. Text positions are
// 1-based canvas cells; the canvas offset is added automatically.
type ChunkWriter struct {
	buf    []byte
	bufw   *bufio.Writer
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the canvas offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor moves to a 1-based canvas cell.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = appendCursor(cw.buf, row+cw.offRow, col+cw.offCol)
}

// Write implements io.Writer so Canvas.Render can draw into the frame.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString appends a string to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt writes s starting at a 1-based canvas cell.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, s...)
}

// WriteAtGrey writes s at a cell in a grey between black (0) and white (1),
// using the 256-colour greyscale ramp.
func (cw *ChunkWriter) WriteAtGrey(col, row int, level float64, s string) {
	level = max(0, min(1, level))
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, "\033[38;5;"...)
	cw.buf = strconv.AppendInt(cw.buf, int64(232+int(level*23)), 10)
	cw.buf = append(cw.buf, 'm')
	cw.buf = append(cw.buf, s...)
	cw.buf = append(cw.buf, "\033[0m"...)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the frame in chunks and starts a new one.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.bufw, cw.buf)
	cw.buf = cw.buf[:0]
	if err != nil {
		return err
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
