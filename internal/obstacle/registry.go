package obstacle

import "github.com/kamstrup/intmap"

// Registry is the arena of active obstacles keyed by ID. It is owned by
// the animation loop and must only be used from that goroutine.
type Registry struct {
	items  *intmap.Map[ID, *Obstacle]
	nextID ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items: intmap.New[ID, *Obstacle](64),
	}
}

// Add registers a new obstacle under a fresh ID.
func (r *Registry) Add(row, col float64, height, width int) Obstacle {
	r.nextID++
	o := &Obstacle{
		ID:     r.nextID,
		Row:    row,
		Column: col,
		Height: height,
		Width:  width,
	}
	r.items.Put(o.ID, o)
	return *o
}

// Move updates the corner of obstacle id. It reports false for unknown IDs.
func (r *Registry) Move(id ID, row, col float64) bool {
	o, ok := r.items.Get(id)
	if !ok {
		return false
	}
	o.Row = row
	o.Column = col
	return true
}

// Remove deletes obstacle id. It reports whether the obstacle was present.
func (r *Registry) Remove(id ID) bool {
	if _, ok := r.items.Get(id); !ok {
		return false
	}
	r.items.Del(id)
	return true
}

// Get returns a copy of obstacle id.
func (r *Registry) Get(id ID) (Obstacle, bool) {
	o, ok := r.items.Get(id)
	if !ok {
		return Obstacle{}, false
	}
	return *o, true
}

// Len returns the number of active obstacles.
func (r *Registry) Len() int {
	return r.items.Len()
}

// Each calls fn with a copy of every obstacle until fn returns false.
// Iteration order is unspecified.
func (r *Registry) Each(fn func(Obstacle) bool) {
	r.items.ForEach(func(_ ID, o *Obstacle) bool {
		return fn(*o)
	})
}

// Collides returns an obstacle overlapping the given box, if any.
func (r *Registry) Collides(row, col float64, height, width int) (Obstacle, bool) {
	var hit Obstacle
	found := false
	r.Each(func(o Obstacle) bool {
		if o.HasCollision(row, col, height, width) {
			hit, found = o, true
			return false
		}
		return true
	})
	return hit, found
}
