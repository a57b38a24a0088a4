package object_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/object"
)

var garbage = []*frame.Frame{
	frame.MustParse("can", "[]"),
	frame.MustParse("box", "+--+\n|  |\n+--+"),
	frame.MustParse("dot", "o"),
}

func fixedColumn(column int) object.ColumnFunc {
	return func(*rand.Rand, int) int { return column }
}

func TestSpawnerSpawnTicks(t *testing.T) {
	w := newWorld(20, 40)
	s := object.NewDebrisSpawner(garbage)
	s.Column = fixedColumn(3)

	var spawnedAt []int
	rec := &recorder{}
	for tick := 1; tick <= 100; tick++ {
		before := len(rec.objects)
		done, err := w.update(s, rec)
		require.NoError(t, err)
		require.False(t, done)
		if len(rec.objects) > before {
			spawnedAt = append(spawnedAt, tick)
		}
	}

	assert.Equal(t, []int{1, 21, 41, 61, 81}, spawnedAt)
	assert.Equal(t, 5, s.Spawned())
}

func TestSpawnerCountAfterTicks(t *testing.T) {
	for k := 1; k <= 5; k++ {
		w := newWorld(20, 40)
		s := object.NewDebrisSpawner(garbage)
		rec := &recorder{}

		for i := 0; i < object.SpawnCooldown*k; i++ {
			_, err := w.update(s, rec)
			require.NoError(t, err)
		}
		assert.Equal(t, k, s.Spawned(), "after %d ticks", object.SpawnCooldown*k)
		assert.Len(t, rec.objects, k)
	}
}

func TestSpawnerRotatesFrames(t *testing.T) {
	w := newWorld(20, 40)
	s := object.NewDebrisSpawner(garbage)
	rec := &recorder{}

	for i := 0; i < object.SpawnCooldown*7; i++ {
		_, err := w.update(s, rec)
		require.NoError(t, err)
	}

	var names []string
	for _, obj := range rec.objects {
		d, ok := obj.(*object.Debris)
		require.True(t, ok)
		names = append(names, d.Frame.Name())
	}
	assert.Equal(t, []string{"can", "box", "dot", "can", "box", "dot", "can"}, names)
}

func TestSpawnerColumnsInRange(t *testing.T) {
	w := newWorld(20, 40)
	s := object.NewDebrisSpawner(garbage)
	rec := &recorder{}

	for i := 0; i < object.SpawnCooldown*300; i++ {
		_, err := w.update(s, rec)
		require.NoError(t, err)
	}

	require.Len(t, rec.objects, 300)
	for _, obj := range rec.objects {
		d := obj.(*object.Debris)
		maxColumn := object.SpawnMaxColumn(40, d.Frame.Width())
		assert.GreaterOrEqual(t, d.Column, 1.0)
		assert.LessOrEqual(t, d.Column, float64(maxColumn))
		assert.LessOrEqual(t, int(d.Column)+d.Frame.Width(), 39, "%s inside the right border", d.Frame.Name())
	}
}

func TestSpawnMaxColumn(t *testing.T) {
	tests := []struct {
		cols, width int
		want        int
	}{
		{cols: 40, width: 1, want: 38},
		{cols: 40, width: 4, want: 35},
		{cols: 5, width: 10, want: 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, object.SpawnMaxColumn(tc.cols, tc.width))
	}
}

func TestSpawnerThroughScheduler(t *testing.T) {
	w := newWorld(20, 40)
	s := object.NewDebrisSpawner(garbage[:1])
	s.Column = fixedColumn(10)
	w.sched.Add(s)

	w.tick()
	assert.Equal(t, 2, w.sched.Len(), "debris queued")
	assert.Zero(t, w.obstacles.Len(), "debris not yet resumed")

	w.tick()
	assert.Equal(t, 1, w.obstacles.Len())
}
