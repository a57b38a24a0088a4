package draw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacegarbage/internal/frame"
)

func newTestCanvas(rows, cols int) (*Canvas, *Buffer) {
	buf := NewBuffer(&bytes.Buffer{}, rows, cols)
	return NewCanvas(buf, 0, 0), buf
}

func TestNewCanvasSize(t *testing.T) {
	buf := NewBuffer(&bytes.Buffer{}, 24, 80)

	tests := []struct {
		name       string
		rows, cols int
		wantRows   int
		wantCols   int
	}{
		{name: "backend size", rows: 0, cols: 0, wantRows: 24, wantCols: 80},
		{name: "smaller window", rows: 20, cols: 40, wantRows: 20, wantCols: 40},
		{name: "oversized window", rows: 100, cols: 200, wantRows: 24, wantCols: 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(buf, tc.rows, tc.cols)
			assert.Equal(t, tc.wantRows, c.Rows())
			assert.Equal(t, tc.wantCols, c.Cols())
			assert.Equal(t, tc.wantRows-1, c.MaxRow())
			assert.Equal(t, tc.wantCols-1, c.MaxColumn())
		})
	}
}

func TestDrawClipsOutsideGrid(t *testing.T) {
	c, buf := newTestCanvas(5, 10)

	c.Draw(-1, 3, 'x', Normal)
	c.Draw(2, -1, 'x', Normal)
	c.Draw(5, 3, 'x', Normal)
	c.Draw(2, 10, 'x', Normal)
	c.Draw(2, 3, '*', Bold)

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if row == 2 && col == 3 {
				continue
			}
			assert.Equal(t, Blank, buf.Cell(row, col), "row %d col %d", row, col)
		}
	}
	assert.Equal(t, Cell{Symbol: '*', Intensity: Bold}, buf.Cell(2, 3))
}

func TestBottomRightCellIsSkipped(t *testing.T) {
	c, buf := newTestCanvas(5, 10)

	assert.False(t, c.Writable(4, 9))
	c.Draw(4, 9, '#', Normal)
	assert.Equal(t, Blank, buf.Cell(4, 9))

	c.Draw(4, 8, '#', Normal)
	assert.Equal(t, '#', buf.Cell(4, 8).Symbol)
}

func TestCanvasClipsToSmallerWindow(t *testing.T) {
	buf := NewBuffer(&bytes.Buffer{}, 24, 80)
	c := NewCanvas(buf, 10, 20)

	c.Draw(15, 5, '#', Normal)
	c.Draw(5, 30, '#', Normal)
	c.Draw(9, 19, '#', Normal)

	assert.Equal(t, Blank, buf.Cell(15, 5))
	assert.Equal(t, Blank, buf.Cell(5, 30))
	assert.Equal(t, Blank, buf.Cell(9, 19))
}

func TestEraseBlanksCell(t *testing.T) {
	c, buf := newTestCanvas(5, 10)

	c.Draw(1, 1, '+', Dim)
	c.Erase(1, 1)
	assert.Equal(t, Blank, buf.Cell(1, 1))
}

func TestDrawFrameRoundsAndSkipsTransparent(t *testing.T) {
	c, buf := newTestCanvas(10, 10)
	f := frame.MustParse("sprite", "a b\n c")

	c.DrawFrame(1.6, 2.4, f)

	assert.Equal(t, 'a', buf.Cell(2, 2).Symbol)
	assert.Equal(t, Blank, buf.Cell(2, 3))
	assert.Equal(t, 'b', buf.Cell(2, 4).Symbol)
	assert.Equal(t, 'c', buf.Cell(3, 3).Symbol)

	c.Draw(2, 3, '#', Normal)
	c.EraseFrame(1.6, 2.4, f)

	assert.Equal(t, Blank, buf.Cell(2, 2))
	assert.Equal(t, Blank, buf.Cell(2, 4))
	assert.Equal(t, Blank, buf.Cell(3, 3))
	assert.Equal(t, '#', buf.Cell(2, 3).Symbol, "transparent cells are left untouched")
}

func TestDrawFramePartiallyOffGrid(t *testing.T) {
	c, buf := newTestCanvas(4, 4)
	f := frame.MustParse("block", "###\n###\n###")

	c.DrawFrame(-1, 2, f)

	assert.Equal(t, '#', buf.Cell(0, 2).Symbol)
	assert.Equal(t, '#', buf.Cell(0, 3).Symbol)
	assert.Equal(t, '#', buf.Cell(1, 3).Symbol)
	assert.Equal(t, Blank, buf.Cell(2, 2))
}

func TestBorder(t *testing.T) {
	c, buf := newTestCanvas(4, 5)

	c.Border()

	assert.Equal(t, borderTopLeft, buf.Cell(0, 0).Symbol)
	assert.Equal(t, borderHorizontal, buf.Cell(0, 2).Symbol)
	assert.Equal(t, borderTopRight, buf.Cell(0, 4).Symbol)
	assert.Equal(t, borderVertical, buf.Cell(2, 0).Symbol)
	assert.Equal(t, borderVertical, buf.Cell(2, 4).Symbol)
	assert.Equal(t, borderBottomLeft, buf.Cell(3, 0).Symbol)
	assert.Equal(t, Blank, buf.Cell(3, 4), "bottom-right corner is unwritable")
	assert.Equal(t, Blank, buf.Cell(1, 2))
}

func TestBufferShowWritesOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	buf := NewBuffer(&out, 3, 4)
	c := NewCanvas(buf, 0, 0)

	require.NoError(t, c.Flush())
	assert.Empty(t, out.String(), "a blank buffer has nothing to write")

	c.Draw(1, 2, '*', Normal)
	require.NoError(t, c.Flush())
	assert.Equal(t, "\033[2;3H*", out.String())

	out.Reset()
	require.NoError(t, c.Flush())
	assert.Empty(t, out.String())

	c.Erase(1, 2)
	require.NoError(t, c.Flush())
	assert.Equal(t, "\033[2;3H ", out.String())
}

func TestBufferDrawThenEraseBeforeShow(t *testing.T) {
	var out bytes.Buffer
	buf := NewBuffer(&out, 3, 4)
	c := NewCanvas(buf, 0, 0)

	c.Draw(0, 0, '|', Normal)
	c.Erase(0, 0)
	require.NoError(t, c.Flush())
	assert.Empty(t, out.String())
}

func TestIntensityString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "dim", Dim.String())
	assert.Equal(t, "bold", Bold.String())
	assert.Equal(t, "unknown", Intensity(9).String())
}
