package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes handed to the terminal per write.
const maxChunkSize = 1400

// ChunkWriter stages one frame of escape sequences and glyphs and hands
// it to the terminal in bounded chunks.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	numBuf [20]byte
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{out: bufio.NewWriterSize(w, 8192)}
}

// MoveTo stages a cursor move to the 0-based cell (row, col).
func (cw *ChunkWriter) MoveTo(row, col int) {
	cw.frame.WriteString("\033[")
	cw.frame.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+1), 10))
	cw.frame.WriteByte(';')
	cw.frame.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+1), 10))
	cw.frame.WriteByte('H')
}

// Put stages s at the cursor.
func (cw *ChunkWriter) Put(s string) {
	cw.frame.WriteString(s)
}

// Pending returns the number of staged bytes.
func (cw *ChunkWriter) Pending() int {
	return cw.frame.Len()
}

// Flush writes the staged frame and resets it. Nothing is written when
// the frame is empty.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame.String()
	cw.frame.Reset()
	if data == "" {
		return nil
	}
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

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
