package ecs

import (
	"iter"
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// entityRecord locates an entity's row within its current archetype.
type entityRecord struct {
	archetype ArchetypeID
	row       int
}

// World owns the entity directory and every archetype. It is the single
// point through which entities are created, destroyed, queried, and
// migrated between archetypes as their component sets change.
type World struct {
	registry   *TypeRegistry
	entities   *EntityManager
	archetypes map[ArchetypeID]*Archetype
	directory  *intmap.Map[EntityHandle, entityRecord]

	// topologyGeneration increments every time an archetype is created.
	// QuerySystem compares against its own cached value to decide whether
	// its archetype list needs rebuilding, avoiding back-pointer observers.
	topologyGeneration uint64

	emptyArchetypeID ArchetypeID
}

// NewWorld creates an empty World backed by registry for component-type
// lookups.
func NewWorld(registry *TypeRegistry) *World {
	return &World{
		registry:         registry,
		entities:         NewEntityManager(),
		archetypes:       make(map[ArchetypeID]*Archetype),
		directory:        intmap.New[EntityHandle, entityRecord](256),
		emptyArchetypeID: archetypeIDOf(nil),
	}
}

// Registry returns the TypeRegistry backing this World.
func (w *World) Registry() *TypeRegistry {
	return w.registry
}

// TopologyGeneration returns a counter that increments every time a new
// archetype is created. Callers that cache per-archetype state (query
// systems) can cheaply detect staleness by comparing against this value.
func (w *World) TopologyGeneration() uint64 {
	return w.topologyGeneration
}

func (w *World) bumpTopology() {
	w.topologyGeneration++
}

// IsAlive reports whether h refers to a currently live entity.
func (w *World) IsAlive(h EntityHandle) bool {
	return w.entities.IsAlive(h)
}

// RegisterQuerySystem binds qs to w. Callers aren't required to call this
// before qs.Query(w): QuerySystem refreshes its own archetype cache by
// comparing w.TopologyGeneration() on every call, so no back-pointer list
// of live query systems needs to be kept here. The method exists so hosts
// that prefer an explicit "wire this query into the world" step at setup
// time have one.
func (w *World) RegisterQuerySystem(qs *QuerySystem) {
	qs.refresh(w)
}

// getOrCreateArchetype returns the archetype for id, creating it (and
// bumping the topology generation) if it doesn't already exist.
func (w *World) getOrCreateArchetype(id ArchetypeID, signature []ComponentTypeID) (*Archetype, bool) {
	if a, ok := w.archetypes[id]; ok {
		return a, false
	}
	a := newArchetype(id, signature, w.registry)
	w.archetypes[id] = a
	w.bumpTopology()
	return a, true
}

// Create spawns a new entity with no components, placed in the empty
// archetype.
func (w *World) Create() EntityHandle {
	arch, _ := w.getOrCreateArchetype(w.emptyArchetypeID, nil)
	h := w.entities.Create()
	row := arch.append(h, nil)
	w.directory.Put(h, entityRecord{archetype: w.emptyArchetypeID, row: row})
	return h
}

// CreateWithComponents spawns a new entity carrying values, placing it
// directly into the archetype matching their combined signature. Every
// value's type must already be registered with the World's TypeRegistry,
// and no type may repeat.
func (w *World) CreateWithComponents(values ...any) (EntityHandle, error) {
	if len(values) == 0 {
		return 0, ErrEmptyCreate
	}

	ids := make([]ComponentTypeID, 0, len(values))
	byID := make(map[ComponentTypeID]any, len(values))
	for _, v := range values {
		id, ok := w.registry.idOfValue(v)
		if !ok {
			return 0, UnregisteredTypeError{Type: reflect.TypeOf(v)}
		}
		if _, dup := byID[id]; dup {
			return 0, DuplicateComponentError{Type: reflect.TypeOf(v)}
		}
		byID[id] = v
		ids = append(ids, id)
	}
	sortTypeIDs(ids)

	archID := archetypeIDOf(ids)
	arch, _ := w.getOrCreateArchetype(archID, ids)

	h := w.entities.Create()
	row := arch.append(h, byID)
	w.directory.Put(h, entityRecord{archetype: archID, row: row})
	return h, nil
}

// Despawn destroys h and removes its row from storage, relocating
// whichever entity the swap-remove displaces. Returns false if h was not
// live.
func (w *World) Despawn(h EntityHandle) bool {
	rec, ok := w.directory.Get(h)
	if !ok || !w.entities.Destroy(h) {
		return false
	}
	arch := w.archetypes[rec.archetype]
	movedEntity, moved := arch.removeRow(rec.row)
	if moved {
		w.directory.Put(movedEntity, entityRecord{archetype: rec.archetype, row: rec.row})
	}
	w.directory.Del(h)
	return true
}

// Clear destroys every entity and archetype. All previously issued
// handles become stale.
func (w *World) Clear() {
	w.entities.Clear()
	w.archetypes = make(map[ArchetypeID]*Archetype)
	w.directory = intmap.New[EntityHandle, entityRecord](256)
	w.bumpTopology()
}

// Has reports whether entity h currently carries a component of type T.
func Has[T any](w *World, h EntityHandle) bool {
	rec, ok := w.directory.Get(h)
	if !ok {
		return false
	}
	typeID, ok := ComponentTypeIDFor[T](w.registry)
	if !ok {
		return false
	}
	return w.archetypes[rec.archetype].HasComponentType(typeID)
}

// Get returns a pointer to entity h's component of type T, or false if h
// doesn't carry one. The pointer is only valid until the next structural
// change (Add/Remove/Despawn) affecting h or any entity sharing its
// archetype.
func Get[T any](w *World, h EntityHandle) (*T, bool) {
	rec, ok := w.directory.Get(h)
	if !ok {
		return nil, false
	}
	typeID, ok := ComponentTypeIDFor[T](w.registry)
	if !ok {
		return nil, false
	}
	v := w.archetypes[rec.archetype].componentAt(rec.row, typeID)
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}

// Add attaches a component of type T to entity h, migrating it to the
// archetype for its signature plus T and consulting (and populating) the
// source archetype's add-edge cache. It fails if h is not live, T was
// never registered, or h already carries a T — callers that want
// overwrite semantics should combine Has and Get. The destination
// archetype and row are fully built before the source row is touched, so
// a failure extracting an existing component leaves h in its original
// archetype.
func Add[T any](w *World, h EntityHandle, value T) error {
	rec, ok := w.directory.Get(h)
	if !ok {
		return EntityNotLiveError{Handle: h}
	}
	typeID, ok := ComponentTypeIDFor[T](w.registry)
	if !ok {
		return UnregisteredTypeError{Type: reflect.TypeFor[T]()}
	}

	src := w.archetypes[rec.archetype]
	if src.HasComponentType(typeID) {
		return DuplicateComponentError{Type: reflect.TypeFor[T]()}
	}

	destID, cached := src.getAddEdge(typeID)
	var dest *Archetype
	if cached {
		dest = w.archetypes[destID]
	} else {
		newSig := make([]ComponentTypeID, 0, len(src.signature)+1)
		newSig = append(newSig, src.signature...)
		newSig = append(newSig, typeID)
		sortTypeIDs(newSig)
		destID = archetypeIDOf(newSig)
		dest, _ = w.getOrCreateArchetype(destID, newSig)
		src.setAddEdge(typeID, destID)
		dest.setRemoveEdge(typeID, src.id)
	}

	values := make(map[ComponentTypeID]any, len(dest.signature))
	for _, tid := range src.signature {
		values[tid] = src.componentAt(rec.row, tid)
	}
	values[typeID] = value

	newRow := dest.append(h, values)

	movedEntity, moved := src.removeRow(rec.row)
	if moved {
		w.directory.Put(movedEntity, entityRecord{archetype: src.id, row: rec.row})
	}
	w.directory.Put(h, entityRecord{archetype: destID, row: newRow})
	return nil
}

// Remove detaches entity h's component of type T, migrating it to the
// archetype for its signature minus T. It fails if h is not live, T was
// never registered, or h doesn't currently carry a T.
func Remove[T any](w *World, h EntityHandle) error {
	rec, ok := w.directory.Get(h)
	if !ok {
		return EntityNotLiveError{Handle: h}
	}
	typeID, ok := ComponentTypeIDFor[T](w.registry)
	if !ok {
		return UnregisteredTypeError{Type: reflect.TypeFor[T]()}
	}

	src := w.archetypes[rec.archetype]
	if !src.HasComponentType(typeID) {
		return MissingComponentError{Type: reflect.TypeFor[T]()}
	}

	destID, cached := src.getRemoveEdge(typeID)
	var dest *Archetype
	if cached {
		dest = w.archetypes[destID]
	} else {
		newSig := make([]ComponentTypeID, 0, len(src.signature)-1)
		for _, tid := range src.signature {
			if tid != typeID {
				newSig = append(newSig, tid)
			}
		}
		destID = archetypeIDOf(newSig)
		dest, _ = w.getOrCreateArchetype(destID, newSig)
		src.setRemoveEdge(typeID, destID)
		dest.setAddEdge(typeID, src.id)
	}

	values := make(map[ComponentTypeID]any, len(dest.signature))
	for _, tid := range dest.signature {
		values[tid] = src.componentAt(rec.row, tid)
	}

	newRow := dest.append(h, values)

	movedEntity, moved := src.removeRow(rec.row)
	if moved {
		w.directory.Put(movedEntity, entityRecord{archetype: src.id, row: rec.row})
	}
	w.directory.Put(h, entityRecord{archetype: destID, row: newRow})
	return nil
}

// Query iterates every live entity whose archetype carries every type in
// required. Unlike QuerySystem, this performs no caching: it walks the
// full archetype table on every call, which is fine for one-shot or
// low-frequency queries.
func (w *World) Query(required ...ComponentTypeID) iter.Seq[QueryResult] {
	return func(yield func(QueryResult) bool) {
		for _, arch := range w.archetypes {
			if !archetypeMatches(arch, required) {
				continue
			}
			for row, entity := range arch.entities {
				if !yield(QueryResult{Entity: entity, ArchetypeID: arch.id, Row: row}) {
					return
				}
			}
		}
	}
}

func archetypeMatches(a *Archetype, required []ComponentTypeID) bool {
	for _, t := range required {
		if !a.HasComponentType(t) {
			return false
		}
	}
	return true
}

func sortTypeIDs(ids []ComponentTypeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
