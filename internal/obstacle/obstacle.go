// Package obstacle tracks the collidable footprints of debris in flight.
package obstacle

import (
	"strings"

	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// ID identifies one obstacle for its whole lifetime.
type ID uint64

// Obstacle is the footprint of one active debris entity.
type Obstacle struct {
	ID     ID
	Row    float64 // Top-left corner
	Column float64
	Height int
	Width  int
}

// Box returns the obstacle footprint.
func (o Obstacle) Box() physics.Box {
	return physics.Box{
		Row:    o.Row,
		Col:    o.Column,
		Height: float64(o.Height),
		Width:  float64(o.Width),
	}
}

// HasCollision reports whether a height x width object with its corner at
// (row, col) overlaps the obstacle.
func (o Obstacle) HasCollision(row, col float64, height, width int) bool {
	return physics.BoxesOverlap(o.Box(), physics.Box{
		Row:    row,
		Col:    col,
		Height: float64(height),
		Width:  float64(width),
	})
}

// BoundingBox returns an outline frame enclosing the obstacle and the
// corner to draw it at. The outline is padded by one cell to cover
// sub-cell movement.
func (o Obstacle) BoundingBox() (row, col float64, f *frame.Frame) {
	rows, cols := o.Height+1, o.Width+1

	var b strings.Builder
	edge := " " + strings.Repeat("-", cols) + " "
	b.WriteString(edge)
	for i := 0; i < rows; i++ {
		b.WriteString("\n|")
		b.WriteString(strings.Repeat(" ", cols))
		b.WriteString("|")
	}
	b.WriteString("\n")
	b.WriteString(edge)

	return o.Row - 1, o.Column - 1, frame.MustParse("bounding-box", b.String())
}
