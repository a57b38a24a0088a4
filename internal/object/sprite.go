package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
)

// drawTarget remembers where a frame was last drawn so it can be erased.
type drawTarget struct {
	canvas   *draw.Canvas
	row, col float64
	frame    *frame.Frame
}

// erase clears the remembered frame. It is a no-op on a nil target.
func (t *drawTarget) erase() {
	if t == nil {
		return
	}
	t.canvas.EraseFrame(t.row, t.col, t.frame)
}
