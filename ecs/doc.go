// Package ecs provides an archetype-based Entity-Component-System runtime.
//
// Entities are opaque 64-bit handles carrying an index and a generation.
// Components are plain data records grouped by their exact set of
// component types into archetypes — contiguous column storage that keeps
// entities sharing a signature packed together for cache-friendly
// iteration. Structural changes (creating an entity, adding or removing a
// component, despawning) migrate an entity between archetypes; the World
// keeps a directory mapping every live entity to its current archetype and
// row so identity survives migration.
//
// On top of the core container, App composes a ResourceManager (type-keyed
// singletons), a SystemManager (staged, per-tick processors), and a
// PluginManager (dependency-ordered one-shot builders) — the fabric a game
// or simulation uses to turn archetype storage into running behavior.
//
// The package is headless: rendering, audio, input, and the frame driver
// that calls SystemManager.UpdateAll each tick are external collaborators.
package ecs
