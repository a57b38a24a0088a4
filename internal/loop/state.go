package loop

import (
	"fmt"
	"math/rand"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/object"
	"github.com/tomz197/spacegarbage/internal/obstacle"
	"github.com/tomz197/spacegarbage/internal/physics"
	"github.com/tomz197/spacegarbage/internal/sound"
)

// State holds everything a single animation run owns. Only the loop
// goroutine touches it.
type State struct {
	Scheduler *Scheduler
	Obstacles *obstacle.Registry
	Canvas    *draw.Canvas
	Audio     sound.Beeper
	Rand      *rand.Rand
}

// NewState creates an empty state drawing on canvas.
func NewState(canvas *draw.Canvas, audio sound.Beeper, seed int64) *State {
	if audio == nil {
		audio = sound.Mute{}
	}
	return &State{
		Scheduler: NewScheduler(),
		Obstacles: obstacle.NewRegistry(),
		Canvas:    canvas,
		Audio:     audio,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// UpdateContext builds the per-tick context for the given controls.
func (s *State) UpdateContext(in input.Controls) object.UpdateContext {
	return object.UpdateContext{
		Input:     in,
		Canvas:    s.Canvas,
		Obstacles: s.Obstacles,
		Spawner:   s.Scheduler,
		Audio:     s.Audio,
		Rand:      s.Rand,
	}
}

// Seed registers the initial objects: the starfield, an intro shot from
// the centre, the ship, the debris spawner and optionally the obstacle
// outlines.
func (s *State) Seed(frames frame.Set, cfg physics.Config, showObstacles bool) error {
	if len(frames.Rocket) == 0 {
		return fmt.Errorf("rocket: %w", frame.ErrNoFrames)
	}
	if len(frames.Garbage) == 0 {
		return fmt.Errorf("garbage: %w", frame.ErrNoFrames)
	}

	rows, cols := s.Canvas.Rows(), s.Canvas.Cols()
	s.seedStars(rows, cols)

	s.Scheduler.Add(object.NewProjectile(
		float64(rows/2), float64(cols/2),
		object.DefaultProjectileRowSpeed, object.DefaultProjectileColumnSpeed,
	))

	rocket := frames.Rocket[0]
	s.Scheduler.Add(object.NewShip(
		frames.Rocket,
		float64((rows-rocket.Height())/2), float64((cols-rocket.Width())/2),
		cfg,
	))

	s.Scheduler.Add(object.NewDebrisSpawner(frames.Garbage))

	if showObstacles {
		s.Scheduler.Add(object.NewObstacleRenderer(s.Obstacles))
	}
	return nil
}

// seedStars scatters StarCount blinkers over the interior.
func (s *State) seedStars(rows, cols int) {
	if rows < 3 || cols < 3 {
		return
	}
	for i := 0; i < StarCount; i++ {
		row := 1 + s.Rand.Intn(rows-2)
		col := 1 + s.Rand.Intn(cols-2)
		symbol := rune(StarSymbols[s.Rand.Intn(len(StarSymbols))])
		offset := 1 + s.Rand.Intn(object.MaxBlinkOffset)
		s.Scheduler.Add(object.NewBlinker(row, col, symbol, offset))
	}
}

// Step runs one tick and renders the result.
func (s *State) Step(in input.Controls) error {
	s.Scheduler.Tick(s.UpdateContext(in))
	s.Canvas.Border()
	return s.Canvas.Flush()
}

// Close releases every remaining object.
func (s *State) Close() {
	s.Scheduler.Close()
}
