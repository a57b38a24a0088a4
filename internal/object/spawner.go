package object

import (
	"math/rand"

	"github.com/tomz197/spacegarbage/internal/frame"
)

// SpawnCooldown is the number of ticks between two debris spawns.
const SpawnCooldown = 20

// ColumnFunc picks a spawn column in [1, maxColumn].
type ColumnFunc func(rng *rand.Rand, maxColumn int) int

// RandomColumn is the default ColumnFunc.
func RandomColumn(rng *rand.Rand, maxColumn int) int {
	return 1 + rng.Intn(maxColumn)
}

// SpawnMaxColumn returns the rightmost column at which a frame of the given
// width still fits inside the border.
func SpawnMaxColumn(cols, frameWidth int) int {
	return max(1, cols-frameWidth-1)
}

// DebrisSpawner releases a new piece of debris every SpawnCooldown ticks,
// rotating through its frames. It never finishes.
type DebrisSpawner struct {
	Frames []*frame.Frame
	Speed  float64
	Column ColumnFunc

	next    int // Index of the next frame
	wait    int // Ticks until the next spawn
	spawned int
}

// NewDebrisSpawner creates a spawner that fires on its first update.
func NewDebrisSpawner(frames []*frame.Frame) *DebrisSpawner {
	return &DebrisSpawner{
		Frames: frames,
		Speed:  DefaultDebrisSpeed,
		Column: RandomColumn,
	}
}

// Spawned returns how many debris objects have been created.
func (s *DebrisSpawner) Spawned() int {
	return s.spawned
}

// Update implements Object.
func (s *DebrisSpawner) Update(ctx UpdateContext) (bool, error) {
	if s.wait > 0 {
		s.wait--
		return false, nil
	}
	if len(s.Frames) == 0 {
		return false, nil
	}

	f := s.Frames[s.next]
	s.next = (s.next + 1) % len(s.Frames)

	column := s.Column(ctx.Rand, SpawnMaxColumn(ctx.Canvas.Cols(), f.Width()))
	ctx.Spawner.Spawn(NewDebris(ctx.Obstacles, f, float64(column), s.Speed))
	s.spawned++
	s.wait = SpawnCooldown - 1
	return false, nil
}
