package object

import (
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// ShipImpulse is the per-axis push applied while a direction is held.
const ShipImpulse = 10

// shipFrameTicks is how long each sprite frame stays on screen.
const shipFrameTicks = 2

// Ship is the player controlled rocket. It never finishes.
type Ship struct {
	Frames                []*frame.Frame
	Row, Column           float64 // Top-left corner of the sprite
	RowSpeed, ColumnSpeed float64
	Physics               physics.Config

	frame int
	ticks int
	drawn *drawTarget
}

// NewShip creates a ship at (row, column).
func NewShip(frames []*frame.Frame, row, column float64, cfg physics.Config) *Ship {
	return &Ship{
		Frames:  frames,
		Row:     row,
		Column:  column,
		Physics: cfg,
	}
}

// Frame returns the sprite frame drawn on the next update.
func (s *Ship) Frame() *frame.Frame {
	return s.Frames[s.frame]
}

// Update implements Object.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	c := ctx.Canvas
	s.drawn.erase()
	s.drawn = nil

	f := s.Frame()
	rowImpulse := float64(ShipImpulse * ctx.Input.RowDirection())
	colImpulse := float64(ShipImpulse * ctx.Input.ColumnDirection())

	s.RowSpeed, s.ColumnSpeed = physics.Update(s.Physics, s.RowSpeed, s.ColumnSpeed, rowImpulse, colImpulse)

	// Movement is clamped toward the target only, so a ship already past a
	// limit is never pushed back.
	maxRow := float64(c.MaxRow() - f.Height())
	maxCol := float64(c.MaxColumn() - f.Width())
	s.Row = physics.ClampToward(s.Row, s.Row+rowImpulse+s.RowSpeed, 1, maxRow)
	s.Column = physics.ClampToward(s.Column, s.Column+colImpulse+s.ColumnSpeed, 1, maxCol)

	if ctx.Input.Fire {
		gun := s.Column + float64(f.Width()/2)
		ctx.Spawner.Spawn(NewProjectile(s.Row, gun, DefaultProjectileRowSpeed, DefaultProjectileColumnSpeed))
	}

	c.DrawFrame(s.Row, s.Column, f)
	s.drawn = &drawTarget{canvas: c, row: s.Row, col: s.Column, frame: f}

	s.ticks++
	if s.ticks == shipFrameTicks {
		s.ticks = 0
		s.frame = (s.frame + 1) % len(s.Frames)
	}
	return false, nil
}

// Release clears the sprite.
func (s *Ship) Release() {
	s.drawn.erase()
	s.drawn = nil
}
