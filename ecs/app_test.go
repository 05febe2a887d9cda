package ecs_test

import (
	"testing"

	"github.com/ashgrove-sim/stratum/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppWiresEveryManager(t *testing.T) {
	app := ecs.NewApp()

	require.NotNil(t, app.World)
	require.NotNil(t, app.Resources)
	require.NotNil(t, app.Systems)
	require.NotNil(t, app.Plugins)

	ecs.RegisterComponentType[Position](app.World.Registry())
	h, err := app.World.CreateWithComponents(Position{X: 1})
	require.NoError(t, err)
	assert.True(t, app.World.IsAlive(h))
}

type configPlugin struct{}

func (configPlugin) Name() string           { return "config" }
func (configPlugin) Dependencies() []string { return nil }
func (configPlugin) Build(app *ecs.App) error {
	ecs.InsertResource(app.Resources, GameConfig{Seed: 1})
	return nil
}

func TestAppPluginCanInsertResourceConsumedBySystem(t *testing.T) {
	app := ecs.NewApp()
	require.NoError(t, app.Plugins.Add(configPlugin{}))
	require.NoError(t, app.Plugins.Build(app))

	cfg, ok := ecs.GetResource[GameConfig](app.Resources)
	require.True(t, ok)
	assert.Equal(t, 1, cfg.Seed)
}
