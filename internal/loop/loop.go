// Package loop provides the task scheduler and the main animation loop.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/physics"
	"github.com/tomz197/spacegarbage/internal/sound"
)

// Options configures Run.
type Options struct {
	Canvas        *draw.Canvas
	Input         input.Source
	Audio         sound.Beeper
	Frames        frame.Set
	Physics       physics.Config
	Tick          time.Duration // Pause between ticks, DefaultTick if zero
	Ticks         uint64        // Stop after this many ticks, 0 runs until quit
	Seed          int64
	ShowObstacles bool
	Logger        *log.Logger
}

// Run seeds the animation and ticks it until ctx is cancelled, the quit key
// is pressed or the tick limit is reached. Every tick reads input, resumes
// all objects once, draws the border and flushes the canvas, then sleeps a
// fixed interval.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultTick
	}

	state := NewState(opts.Canvas, opts.Audio, opts.Seed)
	if err := state.Seed(opts.Frames, opts.Physics, opts.ShowObstacles); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer state.Close()

	logger.Info("loop started",
		"rows", opts.Canvas.Rows(), "cols", opts.Canvas.Cols(),
		"tick", tick, "objects", state.Scheduler.Len())

	reason := "cancelled"
	for ctx.Err() == nil {
		if opts.Ticks > 0 && state.Scheduler.Ticks() >= opts.Ticks {
			reason = "tick limit"
			break
		}

		var controls input.Controls
		if opts.Input != nil {
			controls = opts.Input.Read()
		}
		if controls.Quit {
			reason = "quit"
			break
		}

		if err := state.Step(controls); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		logger.Debug("tick", "n", state.Scheduler.Ticks(), "objects", state.Scheduler.Len(), "obstacles", state.Obstacles.Len())

		if !sleep(ctx, tick) {
			break
		}
	}

	logger.Info("loop stopped", "reason", reason, "ticks", state.Scheduler.Ticks())
	return nil
}

// sleep waits for d and reports false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
