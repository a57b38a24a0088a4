package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacegarbage/internal/object"
)

func TestObstacleRendererOutlines(t *testing.T) {
	w := newWorld(20, 40)
	o := w.obstacles.Add(5, 10, 1, 1)
	r := object.NewObstacleRenderer(w.obstacles)

	done, err := w.update(r, nil)
	require.NoError(t, err)
	require.False(t, done)

	assert.Equal(t, '-', w.symbol(4, 10))
	assert.Equal(t, '-', w.symbol(4, 11))
	assert.Equal(t, '|', w.symbol(5, 9))
	assert.Equal(t, '|', w.symbol(6, 12))
	assert.Equal(t, '-', w.symbol(7, 11))
	assert.Equal(t, ' ', w.symbol(4, 9), "corner left open")
	assert.Equal(t, ' ', w.symbol(5, 10), "interior untouched")
	assert.Equal(t, 1, w.obstacles.Len())

	w.obstacles.Move(o.ID, 10, 20)
	_, err = w.update(r, nil)
	require.NoError(t, err)
	assert.Equal(t, ' ', w.symbol(4, 10), "old outline erased")
	assert.Equal(t, '-', w.symbol(9, 20))

	w.obstacles.Remove(o.ID)
	_, err = w.update(r, nil)
	require.NoError(t, err)
	assert.Equal(t, ' ', w.symbol(9, 20))
}

func TestObstacleRendererFollowsDebris(t *testing.T) {
	w := newWorld(20, 40)
	w.sched.Add(object.NewDebris(w.obstacles, pillar, 5, object.DefaultDebrisSpeed))
	w.sched.Add(object.NewObstacleRenderer(w.obstacles))

	w.tick()
	assert.Equal(t, '|', w.symbol(1, 4))
	assert.Equal(t, '|', w.symbol(1, 7))
	assert.Equal(t, '#', w.symbol(1, 5))

	w.sched.Close()
	assert.Equal(t, ' ', w.symbol(1, 4))
	assert.Equal(t, ' ', w.symbol(1, 5))
}
