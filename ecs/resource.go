package ecs

import (
	"reflect"
	"unsafe"
)

type resourceEntry struct {
	ptr   unsafe.Pointer
	owned bool
}

// ResourceManager is a type-keyed bag of singleton values that aren't
// attached to any entity: global configuration, a shared asset cache, the
// current input state. At most one value of a given type can be held at
// once.
type ResourceManager struct {
	entries map[reflect.Type]resourceEntry
}

// NewResourceManager creates an empty ResourceManager.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{entries: make(map[reflect.Type]resourceEntry)}
}

// InsertResource stores value as the resource of type T, copying it into
// memory owned by the ResourceManager. Replaces any existing resource of
// the same type.
func InsertResource[T any](rm *ResourceManager, value T) {
	boxed := new(T)
	*boxed = value
	rm.entries[reflect.TypeFor[T]()] = resourceEntry{ptr: unsafe.Pointer(boxed), owned: true}
}

// InsertResourceRef registers ref as the resource of type T without
// copying or taking ownership: the caller remains responsible for ref's
// lifetime. Replaces any existing resource of the same type.
func InsertResourceRef[T any](rm *ResourceManager, ref *T) {
	rm.entries[reflect.TypeFor[T]()] = resourceEntry{ptr: unsafe.Pointer(ref), owned: false}
}

// GetResource returns a pointer to the resource of type T, or false if
// none has been inserted.
func GetResource[T any](rm *ResourceManager) (*T, bool) {
	e, ok := rm.entries[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return (*T)(e.ptr), true
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](rm *ResourceManager) bool {
	_, ok := rm.entries[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the resource of type T, if any. It never affects
// memory owned by the caller (resources inserted via InsertResourceRef
// simply stop being tracked).
func RemoveResource[T any](rm *ResourceManager) {
	delete(rm.entries, reflect.TypeFor[T]())
}

// Clear drops every resource.
func (rm *ResourceManager) Clear() {
	rm.entries = make(map[reflect.Type]resourceEntry)
}
