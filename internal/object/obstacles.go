package object

import "github.com/tomz197/spacegarbage/internal/obstacle"

// ObstacleRenderer outlines every registered obstacle. It only reads the
// registry and never finishes.
type ObstacleRenderer struct {
	registry *obstacle.Registry
	drawn    []*drawTarget
}

// NewObstacleRenderer creates a renderer for registry.
func NewObstacleRenderer(registry *obstacle.Registry) *ObstacleRenderer {
	return &ObstacleRenderer{registry: registry}
}

// Update implements Object.
func (r *ObstacleRenderer) Update(ctx UpdateContext) (bool, error) {
	r.Release()
	r.registry.Each(func(o obstacle.Obstacle) bool {
		row, col, f := o.BoundingBox()
		ctx.Canvas.DrawFrame(row, col, f)
		r.drawn = append(r.drawn, &drawTarget{canvas: ctx.Canvas, row: row, col: col, frame: f})
		return true
	})
	return false, nil
}

// Release clears every outline drawn on the last update.
func (r *ObstacleRenderer) Release() {
	for _, t := range r.drawn {
		t.erase()
	}
	r.drawn = r.drawn[:0]
}
