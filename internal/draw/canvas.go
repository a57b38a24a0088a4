package draw

import (
	"math"

	"github.com/tomz197/spacegarbage/internal/frame"
)

// Box-drawing runes used for the window border.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// Canvas is a fixed-size character grid over a Backend. Every write is
// clipped to the grid; writes outside it are ignored. The bottom-right
// cell is never written, since some terminals scroll when it is.
type Canvas struct {
	backend Backend
	rows    int
	cols    int
}

// NewCanvas creates a canvas of rows x cols on top of b. Non-positive or
// oversized dimensions fall back to the backend size.
func NewCanvas(b Backend, rows, cols int) *Canvas {
	maxRows, maxCols := b.Size()
	if rows <= 0 || rows > maxRows {
		rows = maxRows
	}
	if cols <= 0 || cols > maxCols {
		cols = maxCols
	}
	return &Canvas{backend: b, rows: rows, cols: cols}
}

// Rows returns the grid height.
func (c *Canvas) Rows() int {
	return c.rows
}

// Cols returns the grid width.
func (c *Canvas) Cols() int {
	return c.cols
}

// MaxRow is the index of the last row (the bottom border).
func (c *Canvas) MaxRow() int {
	return c.rows - 1
}

// MaxColumn is the index of the last column (the right border).
func (c *Canvas) MaxColumn() int {
	return c.cols - 1
}

// Writable reports whether (row, col) accepts symbols.
func (c *Canvas) Writable(row, col int) bool {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return false
	}
	return !(row == c.rows-1 && col == c.cols-1)
}

// Draw writes symbol at (row, col).
func (c *Canvas) Draw(row, col int, symbol rune, intensity Intensity) {
	if !c.Writable(row, col) {
		return
	}
	c.backend.SetCell(row, col, Cell{Symbol: symbol, Intensity: intensity})
}

// Erase blanks the cell at (row, col).
func (c *Canvas) Erase(row, col int) {
	if !c.Writable(row, col) {
		return
	}
	c.backend.SetCell(row, col, Blank)
}

// DrawFrame draws f with its top-left corner at the rounded (row, col).
// Transparent symbols are skipped.
func (c *Canvas) DrawFrame(row, col float64, f *frame.Frame) {
	c.paintFrame(row, col, f, false)
}

// EraseFrame blanks every cell DrawFrame would have written.
func (c *Canvas) EraseFrame(row, col float64, f *frame.Frame) {
	c.paintFrame(row, col, f, true)
}

func (c *Canvas) paintFrame(row, col float64, f *frame.Frame, negative bool) {
	top := int(math.Round(row))
	left := int(math.Round(col))
	f.Each(func(dr, dc int, symbol rune) bool {
		if negative {
			c.Erase(top+dr, left+dc)
		} else {
			c.Draw(top+dr, left+dc, symbol, Normal)
		}
		return true
	})
}

// Border outlines the grid.
func (c *Canvas) Border() {
	last, right := c.rows-1, c.cols-1
	for col := 1; col < right; col++ {
		c.Draw(0, col, borderHorizontal, Normal)
		c.Draw(last, col, borderHorizontal, Normal)
	}
	for row := 1; row < last; row++ {
		c.Draw(row, 0, borderVertical, Normal)
		c.Draw(row, right, borderVertical, Normal)
	}
	c.Draw(0, 0, borderTopLeft, Normal)
	c.Draw(0, right, borderTopRight, Normal)
	c.Draw(last, 0, borderBottomLeft, Normal)
	c.Draw(last, right, borderBottomRight, Normal)
}

// Flush shows everything drawn since the previous flush.
func (c *Canvas) Flush() error {
	return c.backend.Show()
}
