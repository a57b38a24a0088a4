package loop

import "github.com/tomz197/spacegarbage/internal/object"

// Scheduler resumes a dynamic set of objects once per tick in insertion
// order. It is not safe for concurrent use.
type Scheduler struct {
	objects []object.Object
	toSpawn []object.Object // Objects to add after the current tick
	ticks   uint64
	running bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers obj immediately. During a tick it behaves like Spawn.
func (s *Scheduler) Add(obj object.Object) {
	if s.running {
		s.Spawn(obj)
		return
	}
	s.objects = append(s.objects, obj)
}

// Spawn queues an object to be added after the current tick.
// Implements object.Spawner interface.
func (s *Scheduler) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects and clears the queue.
func (s *Scheduler) FlushSpawned() {
	s.objects = append(s.objects, s.toSpawn...)
	clear(s.toSpawn)
	s.toSpawn = s.toSpawn[:0]
}

// Len returns the number of registered objects, queued ones included.
func (s *Scheduler) Len() int {
	return len(s.objects) + len(s.toSpawn)
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick resumes every object registered at the start of the tick exactly
// once. Objects that finish, fail or panic are released and removed.
func (s *Scheduler) Tick(ctx object.UpdateContext) {
	ctx.Tick = s.ticks
	ctx.Spawner = s

	s.running = true
	kept := s.objects[:0] // reuse backing array
	for _, obj := range s.objects {
		if s.resume(obj, ctx) {
			kept = append(kept, obj)
		}
	}
	clear(s.objects[len(kept):])
	s.objects = kept
	s.running = false

	s.FlushSpawned()
	s.ticks++
}

// resume runs one update of obj and reports whether it stays scheduled.
func (s *Scheduler) resume(obj object.Object, ctx object.UpdateContext) (alive bool) {
	defer func() {
		if r := recover(); r != nil {
			alive = false
		}
		if !alive {
			release(obj)
		}
	}()

	done, err := obj.Update(ctx)
	return !done && err == nil
}

// Close releases every remaining object and empties the scheduler.
func (s *Scheduler) Close() {
	for _, obj := range s.objects {
		release(obj)
	}
	for _, obj := range s.toSpawn {
		release(obj)
	}
	clear(s.objects)
	clear(s.toSpawn)
	s.objects = s.objects[:0]
	s.toSpawn = s.toSpawn[:0]
}

func release(obj object.Object) {
	defer func() { _ = recover() }()
	object.ReleaseObject(obj)
}
