package object_test

import (
	"bytes"
	"math/rand"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/loop"
	"github.com/tomz197/spacegarbage/internal/object"
	"github.com/tomz197/spacegarbage/internal/obstacle"
)

// world is a small harness around the pieces an object update needs.
type world struct {
	sched     *loop.Scheduler
	obstacles *obstacle.Registry
	canvas    *draw.Canvas
	buf       *draw.Buffer
	beeps     *countingBeeper
	rng       *rand.Rand
	controls  input.Controls
}

func newWorld(rows, cols int) *world {
	buf := draw.NewBuffer(&bytes.Buffer{}, rows, cols)
	return &world{
		sched:     loop.NewScheduler(),
		obstacles: obstacle.NewRegistry(),
		canvas:    draw.NewCanvas(buf, rows, cols),
		buf:       buf,
		beeps:     &countingBeeper{},
		rng:       rand.New(rand.NewSource(1)),
	}
}

func (w *world) ctx() object.UpdateContext {
	return object.UpdateContext{
		Input:     w.controls,
		Canvas:    w.canvas,
		Obstacles: w.obstacles,
		Spawner:   w.sched,
		Audio:     w.beeps,
		Rand:      w.rng,
	}
}

// tick runs one scheduler tick.
func (w *world) tick() {
	w.sched.Tick(w.ctx())
}

// update resumes obj directly, collecting spawned objects in rec.
func (w *world) update(obj object.Object, rec *recorder) (bool, error) {
	ctx := w.ctx()
	if rec != nil {
		ctx.Spawner = rec
	}
	return obj.Update(ctx)
}

func (w *world) symbol(row, col int) rune {
	return w.buf.Cell(row, col).Symbol
}

type countingBeeper struct {
	n int
}

func (b *countingBeeper) Beep() {
	b.n++
}

// recorder is a Spawner that keeps what it is given.
type recorder struct {
	objects []object.Object
}

func (r *recorder) Spawn(obj object.Object) {
	r.objects = append(r.objects, obj)
}
