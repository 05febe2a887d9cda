package ecs_test

import (
	"testing"

	"github.com/ashgrove-sim/stratum/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityHandleEncoding(t *testing.T) {
	h := ecs.NewEntityHandle(42, 7)
	assert.Equal(t, uint32(42), h.Index())
	assert.Equal(t, uint32(7), h.Generation())
}

func TestEntityManagerCreate(t *testing.T) {
	m := ecs.NewEntityManager()

	a := m.Create()
	b := m.Create()

	assert.NotEqual(t, a, b)
	assert.True(t, m.IsAlive(a))
	assert.True(t, m.IsAlive(b))
	assert.Equal(t, uint32(0), a.Index())
	assert.Equal(t, uint32(1), b.Index())
}

func TestEntityManagerDestroyRecyclesIndexWithNewGeneration(t *testing.T) {
	m := ecs.NewEntityManager()
	a := m.Create()

	require.True(t, m.Destroy(a))
	assert.False(t, m.IsAlive(a))

	b := m.Create()
	assert.Equal(t, a.Index(), b.Index())
	assert.NotEqual(t, a.Generation(), b.Generation())
	assert.False(t, m.IsAlive(a), "stale handle must not alias the recycled index")
	assert.True(t, m.IsAlive(b))
}

func TestEntityManagerDestroyTwiceFails(t *testing.T) {
	m := ecs.NewEntityManager()
	a := m.Create()

	require.True(t, m.Destroy(a))
	assert.False(t, m.Destroy(a))
}

func TestEntityManagerIsAliveOnUnknownHandle(t *testing.T) {
	m := ecs.NewEntityManager()
	assert.False(t, m.IsAlive(ecs.NewEntityHandle(99, 0)))
}

func TestEntityManagerClearInvalidatesEverything(t *testing.T) {
	m := ecs.NewEntityManager()
	a := m.Create()

	m.Clear()
	assert.False(t, m.IsAlive(a))
}
