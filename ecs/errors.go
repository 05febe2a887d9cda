package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// UnregisteredTypeError is returned by World.CreateWithComponents, Add and
// Remove when a component type has never been registered with the
// TypeRegistry.
type UnregisteredTypeError struct {
	Type reflect.Type
}

func (e UnregisteredTypeError) Error() string {
	return fmt.Sprintf("ecs: component type %s is not registered", e.Type)
}

// DuplicateComponentError is returned when CreateWithComponents is given
// the same component type more than once, or when Add is called for a
// component type the entity already carries.
type DuplicateComponentError struct {
	Type reflect.Type
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("ecs: duplicate component type %s", e.Type)
}

// MissingComponentError is returned by Remove when the entity does not
// carry a component of the requested type.
type MissingComponentError struct {
	Type reflect.Type
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: missing component type %s", e.Type)
}

// EntityNotLiveError is returned by structural operations (Add, Remove)
// when the supplied handle is stale or was never issued by this World's
// EntityManager.
type EntityNotLiveError struct {
	Handle EntityHandle
}

func (e EntityNotLiveError) Error() string {
	return fmt.Sprintf("ecs: entity %d is not live", e.Handle)
}

// ArchetypeInsertError wraps a failure while appending a row to an
// archetype's column storage. The world is left as it was before the call.
type ArchetypeInsertError struct {
	Cause error
}

func (e ArchetypeInsertError) Error() string {
	return fmt.Sprintf("ecs: archetype insert failed: %v", e.Cause)
}

func (e ArchetypeInsertError) Unwrap() error {
	return e.Cause
}

// DuplicateSystemNameError is returned by SystemManager.Add when a system
// with the same name is already registered in any stage.
type DuplicateSystemNameError struct {
	Name string
}

func (e DuplicateSystemNameError) Error() string {
	return fmt.Sprintf("ecs: duplicate system name %q", e.Name)
}

// DuplicatePluginNameError is returned by PluginManager.Add when a plugin
// with the same name has already been added.
type DuplicatePluginNameError struct {
	Name string
}

func (e DuplicatePluginNameError) Error() string {
	return fmt.Sprintf("ecs: duplicate plugin name %q", e.Name)
}

// UnknownDependencyError is returned by PluginManager.Build when a plugin
// declares a dependency on a plugin name that was never added.
type UnknownDependencyError struct {
	Plugin     string
	Dependency string
}

func (e UnknownDependencyError) Error() string {
	return fmt.Sprintf("ecs: plugin %q depends on unknown plugin %q", e.Plugin, e.Dependency)
}

// DependencyCycleError is returned by PluginManager.Build when the
// declared dependency graph contains a cycle. Cycle names every plugin that
// could not be ordered (the cycle's members and any plugin depending on
// them), in registration order.
type DependencyCycleError struct {
	Cycle []string
}

func (e DependencyCycleError) Error() string {
	return fmt.Sprintf("ecs: plugin dependency cycle: %v", e.Cycle)
}

// SystemUpdateError wraps an error returned from a system's Update method.
// It aborts the remainder of the current tick.
type SystemUpdateError struct {
	System string
	Cause  error
}

func (e SystemUpdateError) Error() string {
	return fmt.Sprintf("ecs: system %q update failed: %v", e.System, e.Cause)
}

func (e SystemUpdateError) Unwrap() error {
	return e.Cause
}

// ErrEmptyCreate is returned by World.CreateWithComponents when called
// with no components; use World.Create for the empty archetype instead.
var ErrEmptyCreate = errors.New("ecs: CreateWithComponents requires at least one component")
