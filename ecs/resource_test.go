package ecs_test

import (
	"testing"

	"github.com/ashgrove-sim/stratum/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type GameConfig struct {
	Seed int
}

func TestInsertAndGetResource(t *testing.T) {
	rm := ecs.NewResourceManager()
	ecs.InsertResource(rm, GameConfig{Seed: 42})

	cfg, ok := ecs.GetResource[GameConfig](rm)
	require.True(t, ok)
	assert.Equal(t, 42, cfg.Seed)
}

func TestInsertResourceReplacesExisting(t *testing.T) {
	rm := ecs.NewResourceManager()
	ecs.InsertResource(rm, GameConfig{Seed: 1})
	ecs.InsertResource(rm, GameConfig{Seed: 2})

	cfg, ok := ecs.GetResource[GameConfig](rm)
	require.True(t, ok)
	assert.Equal(t, 2, cfg.Seed)
}

func TestGetResourceMutatesInPlace(t *testing.T) {
	rm := ecs.NewResourceManager()
	ecs.InsertResource(rm, GameConfig{Seed: 1})

	cfg, ok := ecs.GetResource[GameConfig](rm)
	require.True(t, ok)
	cfg.Seed = 99

	cfg2, ok := ecs.GetResource[GameConfig](rm)
	require.True(t, ok)
	assert.Equal(t, 99, cfg2.Seed)
}

func TestInsertResourceRefSharesCallerOwnedMemory(t *testing.T) {
	rm := ecs.NewResourceManager()
	owned := &GameConfig{Seed: 5}
	ecs.InsertResourceRef(rm, owned)

	owned.Seed = 6

	cfg, ok := ecs.GetResource[GameConfig](rm)
	require.True(t, ok)
	assert.Equal(t, 6, cfg.Seed)
}

func TestHasAndRemoveResource(t *testing.T) {
	rm := ecs.NewResourceManager()
	assert.False(t, ecs.HasResource[GameConfig](rm))

	ecs.InsertResource(rm, GameConfig{})
	assert.True(t, ecs.HasResource[GameConfig](rm))

	ecs.RemoveResource[GameConfig](rm)
	assert.False(t, ecs.HasResource[GameConfig](rm))
}

func TestResourceManagerClear(t *testing.T) {
	rm := ecs.NewResourceManager()
	ecs.InsertResource(rm, GameConfig{Seed: 1})

	rm.Clear()
	assert.False(t, ecs.HasResource[GameConfig](rm))
}
