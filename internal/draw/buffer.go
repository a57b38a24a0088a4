package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Buffer is an ANSI Backend. It keeps the cells the terminal currently
// shows and the cells staged since the last Show, and only writes the
// difference.
type Buffer struct {
	out    *ChunkWriter
	rows   int
	cols   int
	front  []Cell // What the terminal shows
	back   []Cell // What the next Show should leave on screen
	styles [3]lipgloss.Style
}

var _ Backend = (*Buffer)(nil)

// NewBuffer creates a rows x cols buffer that renders to w. The terminal
// is assumed to be blank.
func NewBuffer(w io.Writer, rows, cols int) *Buffer {
	renderer := lipgloss.NewRenderer(w)
	b := &Buffer{
		out:   NewChunkWriter(w),
		rows:  rows,
		cols:  cols,
		front: make([]Cell, rows*cols),
		back:  make([]Cell, rows*cols),
	}
	b.styles[Normal] = renderer.NewStyle()
	b.styles[Dim] = renderer.NewStyle().Faint(true)
	b.styles[Bold] = renderer.NewStyle().Bold(true)

	for i := range b.front {
		b.front[i] = Blank
		b.back[i] = Blank
	}
	return b
}

// Size implements Backend.
func (b *Buffer) Size() (rows, cols int) {
	return b.rows, b.cols
}

// SetCell implements Backend.
func (b *Buffer) SetCell(row, col int, c Cell) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.back[row*b.cols+col] = c
}

// Cell returns the staged content of (row, col).
func (b *Buffer) Cell(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Blank
	}
	return b.back[row*b.cols+col]
}

// Show implements Backend. Changed cells are written with one cursor
// move each.
func (b *Buffer) Show() error {
	for row := 0; row < b.rows; row++ {
		offset := row * b.cols
		for col := 0; col < b.cols; col++ {
			c := b.back[offset+col]
			if c == b.front[offset+col] {
				continue
			}
			b.out.MoveTo(row, col)
			b.out.Put(b.style(c.Intensity).Render(string(c.Symbol)))
			b.front[offset+col] = c
		}
	}
	return b.out.Flush()
}

func (b *Buffer) style(i Intensity) lipgloss.Style {
	if int(i) < len(b.styles) {
		return b.styles[i]
	}
	return b.styles[Normal]
}
