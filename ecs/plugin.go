package ecs

// Plugin is a one-shot builder that wires systems, resources, or component
// registrations into an App. Plugins declare dependencies by name so that
// PluginManager can build them in an order where every dependency runs
// first.
type Plugin interface {
	Name() string
	Dependencies() []string
	Build(app *App) error
}

// OnEnabler is implemented by plugins that need to run logic after every
// plugin's Build has completed, once the full dependency graph is live.
type OnEnabler interface {
	OnEnable(app *App) error
}

// PluginManager holds every registered plugin and builds them in
// dependency order.
type PluginManager struct {
	byName  map[string]Plugin
	order   []string
	plugins []Plugin
}

// NewPluginManager creates an empty PluginManager.
func NewPluginManager() *PluginManager {
	return &PluginManager{byName: make(map[string]Plugin)}
}

// Add registers p. It is an error to register two plugins with the same
// Name().
func (pm *PluginManager) Add(p Plugin) error {
	name := p.Name()
	if _, exists := pm.byName[name]; exists {
		return DuplicatePluginNameError{Name: name}
	}
	pm.byName[name] = p
	pm.plugins = append(pm.plugins, p)
	return nil
}

// Build topologically sorts every registered plugin by its declared
// dependencies (Kahn's algorithm), then calls Build, and finally OnEnable
// for plugins that implement OnEnabler, in that dependency order. It
// returns UnknownDependencyError if a plugin names a dependency that was
// never added, or DependencyCycleError if the graph contains a cycle.
func (pm *PluginManager) Build(app *App) error {
	order, err := pm.resolveOrder()
	if err != nil {
		return err
	}
	pm.order = order

	for _, name := range order {
		if err := pm.byName[name].Build(app); err != nil {
			return err
		}
	}
	for _, name := range order {
		if enabler, ok := pm.byName[name].(OnEnabler); ok {
			if err := enabler.OnEnable(app); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveOrder performs Kahn's algorithm over the declared dependency
// graph, breaking ties by registration order for determinism.
func (pm *PluginManager) resolveOrder() ([]string, error) {
	inDegree := make(map[string]int, len(pm.plugins))
	dependents := make(map[string][]string, len(pm.plugins))

	for _, p := range pm.plugins {
		name := p.Name()
		if _, ok := inDegree[name]; !ok {
			inDegree[name] = 0
		}
		for _, dep := range p.Dependencies() {
			if _, ok := pm.byName[dep]; !ok {
				return nil, UnknownDependencyError{Plugin: name, Dependency: dep}
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, p := range pm.plugins {
		if inDegree[p.Name()] == 0 {
			queue = append(queue, p.Name())
		}
	}

	order := make([]string, 0, len(pm.plugins))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(order) != len(pm.plugins) {
		var cycle []string
		for _, p := range pm.plugins {
			if inDegree[p.Name()] > 0 {
				cycle = append(cycle, p.Name())
			}
		}
		return nil, DependencyCycleError{Cycle: cycle}
	}
	return order, nil
}
