package ecs

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/kamstrup/intmap"
)

// ArchetypeID is the canonical hash of a sorted, duplicate-free sequence of
// ComponentTypeIDs. Two archetypes with identical signatures always share
// an ID; distinct signatures are injective in practice.
type ArchetypeID uint64

// archetypeIDOf computes the canonical ID for an already-sorted signature.
func archetypeIDOf(signature []ComponentTypeID) ArchetypeID {
	h := fnv.New64a()
	var buf [4]byte
	for _, id := range signature {
		binary.LittleEndian.PutUint32(buf[:], uint32(id))
		h.Write(buf[:])
	}
	return ArchetypeID(h.Sum64())
}

// Archetype is a column store for every entity sharing an identical sorted
// set of component types (its signature). Columns are parallel: the i-th
// slot of every column, and the i-th entry of entities, belong to the same
// row.
type Archetype struct {
	id        ArchetypeID
	signature []ComponentTypeID
	columns   []column
	entities  []EntityHandle
	rowOf     *intmap.Map[EntityHandle, int]

	addEdges    map[ComponentTypeID]ArchetypeID
	removeEdges map[ComponentTypeID]ArchetypeID
}

// newArchetype builds a fresh, empty archetype for the given (already
// sorted, duplicate-free) signature.
func newArchetype(id ArchetypeID, signature []ComponentTypeID, registry *TypeRegistry) *Archetype {
	columns := make([]column, len(signature))
	for i, typeID := range signature {
		columns[i] = registry.newColumn(typeID)
	}
	return &Archetype{
		id:          id,
		signature:   signature,
		columns:     columns,
		rowOf:       intmap.New[EntityHandle, int](64),
		addEdges:    make(map[ComponentTypeID]ArchetypeID),
		removeEdges: make(map[ComponentTypeID]ArchetypeID),
	}
}

// ID returns the archetype's canonical identifier.
func (a *Archetype) ID() ArchetypeID {
	return a.id
}

// Signature returns the archetype's sorted component-type signature. The
// returned slice must not be mutated by the caller.
func (a *Archetype) Signature() []ComponentTypeID {
	return a.signature
}

// Size returns the number of entities currently stored in this archetype.
func (a *Archetype) Size() int {
	return len(a.entities)
}

// HasComponentType reports whether typeID is in this archetype's signature.
func (a *Archetype) HasComponentType(typeID ComponentTypeID) bool {
	return a.columnIndexOf(typeID) >= 0
}

// columnIndexOf returns the column index for typeID, or -1 if absent.
func (a *Archetype) columnIndexOf(typeID ComponentTypeID) int {
	for i, t := range a.signature {
		if t == typeID {
			return i
		}
	}
	return -1
}

// componentAt returns a pointer (as any) to the component of typeID
// belonging to the given row, or nil if typeID is not in this archetype.
func (a *Archetype) componentAt(row int, typeID ComponentTypeID) any {
	idx := a.columnIndexOf(typeID)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].Get(row)
}

// append adds one row holding values, keyed by ComponentTypeID, which must
// match this archetype's signature exactly. It returns the new row index.
func (a *Archetype) append(entity EntityHandle, values map[ComponentTypeID]any) int {
	row := len(a.entities)
	for i, typeID := range a.signature {
		a.columns[i].Append(values[typeID])
	}
	a.entities = append(a.entities, entity)
	a.rowOf.Put(entity, row)
	return row
}

// removeRow swap-removes row from every column and from the entities
// vector. If the removed row was not the last, the entity previously at
// the last row is relocated into the freed slot; the caller (World) is
// responsible for updating that entity's directory entry — this is the
// one behavior an implementation must not omit.
func (a *Archetype) removeRow(row int) (movedEntity EntityHandle, moved bool) {
	last := len(a.entities) - 1
	removed := a.entities[row]
	a.rowOf.Del(removed)

	for _, col := range a.columns {
		col.SwapRemove(row)
	}

	if row != last {
		movedEntity = a.entities[last]
		a.entities[row] = movedEntity
		a.rowOf.Put(movedEntity, row)
		moved = true
	}
	a.entities = a.entities[:last]
	return movedEntity, moved
}

// rowOfEntity returns the row for entity within this archetype.
func (a *Archetype) rowOfEntity(entity EntityHandle) (int, bool) {
	return a.rowOf.Get(entity)
}

// getAddEdge returns the memoized destination archetype reached by adding
// typeID, if known.
func (a *Archetype) getAddEdge(typeID ComponentTypeID) (ArchetypeID, bool) {
	id, ok := a.addEdges[typeID]
	return id, ok
}

func (a *Archetype) setAddEdge(typeID ComponentTypeID, dest ArchetypeID) {
	a.addEdges[typeID] = dest
}

// getRemoveEdge returns the memoized destination archetype reached by
// removing typeID, if known.
func (a *Archetype) getRemoveEdge(typeID ComponentTypeID) (ArchetypeID, bool) {
	id, ok := a.removeEdges[typeID]
	return id, ok
}

func (a *Archetype) setRemoveEdge(typeID ComponentTypeID, dest ArchetypeID) {
	a.removeEdges[typeID] = dest
}

// Entities returns the entity handles stored in this archetype, indexed by
// row. The returned slice must not be mutated by the caller.
func (a *Archetype) Entities() []EntityHandle {
	return a.entities
}
