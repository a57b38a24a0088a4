// Package object implements the cooperatively scheduled animation entities.
//
// Every entity is a step function: one call to Update resumes it until its
// next suspension point, which is always the end of the current tick.
package object

import (
	"math/rand"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/obstacle"
	"github.com/tomz197/spacegarbage/internal/sound"
)

// Spawner allows objects to spawn new objects during update.
// Spawned objects first run on the next tick.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext is the shared state threaded through one tick.
type UpdateContext struct {
	Tick      uint64             // Index of the current tick
	Input     input.Controls     // Control snapshot for this tick
	Canvas    *draw.Canvas       // Surface to draw on
	Obstacles *obstacle.Registry // Active debris footprints
	Spawner   Spawner            // Queue for new objects
	Audio     sound.Beeper       // Launch alerts
	Rand      *rand.Rand         // Deterministic randomness
}

// Object is a cooperatively scheduled unit of work.
type Object interface {
	// Update runs the object until its next suspension. It returns true once
	// the object has finished. A returned error ends the object abnormally;
	// it is never resumed again either way.
	Update(ctx UpdateContext) (done bool, err error)
}

// Releasable is implemented by objects that hold resources which must be
// released however they stop: normal completion, error, panic, or shutdown.
type Releasable interface {
	// Release frees the resources. Calling it more than once is safe.
	Release()
}

// ReleaseObject releases obj if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
