package ecs

import "reflect"

// ComponentTypeID is a dense, monotonically assigned identifier for a
// registered component type. IDs are unique within a TypeRegistry and are
// not stable across registries.
type ComponentTypeID uint32

type componentTypeInfo struct {
	id      ComponentTypeID
	typ     reflect.Type
	name    string
	size    uintptr
	newColl func() column
}

// TypeRegistry maps language-level component types to dense ComponentTypeIDs.
// Registration is idempotent: registering the same type twice returns the
// same ID. A type's size is fixed at registration.
type TypeRegistry struct {
	byType map[reflect.Type]ComponentTypeID
	infos  []componentTypeInfo
}

// NewTypeRegistry creates an empty TypeRegistry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		byType: make(map[reflect.Type]ComponentTypeID),
	}
}

// RegisterComponentType registers T with the registry, returning its
// ComponentTypeID. Calling it again for the same T returns the existing ID.
func RegisterComponentType[T any](r *TypeRegistry) ComponentTypeID {
	var zero T
	typ := reflect.TypeOf(zero)
	if id, ok := r.byType[typ]; ok {
		return id
	}
	id := ComponentTypeID(len(r.infos))
	r.byType[typ] = id
	r.infos = append(r.infos, componentTypeInfo{
		id:   id,
		typ:  typ,
		name: typ.String(),
		size: typ.Size(),
		newColl: func() column {
			return newGenericColumn[T]()
		},
	})
	return id
}

// ComponentTypeIDFor returns T's ComponentTypeID and whether it has been
// registered.
func ComponentTypeIDFor[T any](r *TypeRegistry) (ComponentTypeID, bool) {
	var zero T
	id, ok := r.byType[reflect.TypeOf(zero)]
	return id, ok
}

// idOfValue returns the ComponentTypeID for the dynamic type of v.
func (r *TypeRegistry) idOfValue(v any) (ComponentTypeID, bool) {
	id, ok := r.byType[reflect.TypeOf(v)]
	return id, ok
}

func (r *TypeRegistry) info(id ComponentTypeID) componentTypeInfo {
	return r.infos[id]
}

// TypeOf returns the reflect.Type registered under id.
func (r *TypeRegistry) TypeOf(id ComponentTypeID) reflect.Type {
	return r.infos[id].typ
}

// NameOf returns the display name registered under id.
func (r *TypeRegistry) NameOf(id ComponentTypeID) string {
	return r.infos[id].name
}

// SizeOf returns the component size, in bytes, registered under id.
func (r *TypeRegistry) SizeOf(id ComponentTypeID) uintptr {
	return r.infos[id].size
}

func (r *TypeRegistry) newColumn(id ComponentTypeID) column {
	return r.infos[id].newColl()
}
