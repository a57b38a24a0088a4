package object

import (
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/obstacle"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// DefaultDebrisSpeed is the fall rate in rows per tick.
const DefaultDebrisSpeed = 0.5

// Debris is a piece of garbage falling from the top edge. While it is
// alive it owns exactly one entry in the obstacle registry.
type Debris struct {
	Frame       *frame.Frame
	Row, Column float64
	Speed       float64

	registry *obstacle.Registry
	id       obstacle.ID
	started  bool
	released bool

	drawn *drawTarget
}

// NewDebris creates debris that falls from row 0 at column.
// The obstacle is registered on the first update.
func NewDebris(registry *obstacle.Registry, f *frame.Frame, column, speed float64) *Debris {
	return &Debris{
		Frame:    f,
		Column:   column,
		Speed:    speed,
		registry: registry,
	}
}

// ObstacleID returns the registered obstacle and false before the first
// update or after release.
func (d *Debris) ObstacleID() (obstacle.ID, bool) {
	return d.id, d.started && !d.released
}

// Update implements Object.
func (d *Debris) Update(ctx UpdateContext) (bool, error) {
	c := ctx.Canvas
	if !d.started {
		d.Column = physics.Clamp(d.Column, 0, float64(c.MaxColumn()))
		d.id = d.registry.Add(d.Row, d.Column, d.Frame.Height(), d.Frame.Width()).ID
		d.started = true
	} else {
		d.drawn.erase()
		d.drawn = nil
		d.Row += d.Speed
	}

	if d.Row >= float64(c.Rows()) {
		return true, nil
	}

	c.DrawFrame(d.Row, d.Column, d.Frame)
	d.drawn = &drawTarget{canvas: c, row: d.Row, col: d.Column, frame: d.Frame}
	d.registry.Move(d.id, d.Row, d.Column)
	return false, nil
}

// Release unregisters the obstacle and clears any sprite left behind.
func (d *Debris) Release() {
	if !d.started || d.released {
		return
	}
	d.released = true
	d.registry.Remove(d.id)
	d.drawn.erase()
	d.drawn = nil
}
