package ecs

// App aggregates the pieces a running simulation needs: the entity/
// archetype World, a ResourceManager for global singleton state, a
// SystemManager driving the per-tick update loop, and a PluginManager for
// one-shot wiring. App is a plain composition root — it has no behavior
// of its own beyond construction.
type App struct {
	World     *World
	Resources *ResourceManager
	Systems   *SystemManager
	Plugins   *PluginManager
}

// NewApp creates an App with a fresh World (backed by a new TypeRegistry),
// ResourceManager, SystemManager, and PluginManager.
func NewApp() *App {
	return &App{
		World:     NewWorld(NewTypeRegistry()),
		Resources: NewResourceManager(),
		Systems:   NewSystemManager(),
		Plugins:   NewPluginManager(),
	}
}
