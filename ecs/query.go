package ecs

import "iter"

// QueryResult identifies one matched row: the entity it belongs to, the
// archetype holding it, and the row index within that archetype's columns.
type QueryResult struct {
	Entity      EntityHandle
	ArchetypeID ArchetypeID
	Row         int
}

// ComponentAt returns a pointer to qr's component of type T, or false if
// the archetype qr was matched against doesn't carry one.
func ComponentAt[T any](w *World, qr QueryResult) (*T, bool) {
	typeID, ok := ComponentTypeIDFor[T](w.registry)
	if !ok {
		return nil, false
	}
	arch, ok := w.archetypes[qr.ArchetypeID]
	if !ok {
		return nil, false
	}
	v := arch.componentAt(qr.Row, typeID)
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}

// QuerySystem caches the set of archetypes matching a fixed component
// signature, so repeated iteration over the same query skips re-scanning
// every archetype in the world. The cache is invalidated by comparing the
// world's topology generation against the value observed when the cache
// was last built, rather than by registering as an observer of archetype
// creation.
type QuerySystem struct {
	required []ComponentTypeID

	cachedArchetypes []*Archetype
	lastTopologyGen  uint64
	built            bool
}

// NewQuerySystem creates a QuerySystem matching every archetype whose
// signature is a superset of required.
func NewQuerySystem(required ...ComponentTypeID) *QuerySystem {
	sorted := append([]ComponentTypeID(nil), required...)
	sortTypeIDs(sorted)
	return &QuerySystem{required: sorted, lastTopologyGen: ^uint64(0)}
}

// InvalidateCache forces the next Query call to rebuild the matching
// archetype list, regardless of topology generation.
func (qs *QuerySystem) InvalidateCache() {
	qs.built = false
}

func (qs *QuerySystem) refresh(w *World) {
	gen := w.TopologyGeneration()
	if qs.built && gen == qs.lastTopologyGen {
		return
	}
	qs.cachedArchetypes = qs.cachedArchetypes[:0]
	for _, arch := range w.archetypes {
		if archetypeMatches(arch, qs.required) {
			qs.cachedArchetypes = append(qs.cachedArchetypes, arch)
		}
	}
	qs.lastTopologyGen = gen
	qs.built = true
}

// Query returns an iterator over every currently matching row. The
// archetype cache is refreshed first if the world's topology has changed
// since the last call.
func (qs *QuerySystem) Query(w *World) iter.Seq[QueryResult] {
	qs.refresh(w)
	return func(yield func(QueryResult) bool) {
		for _, arch := range qs.cachedArchetypes {
			for row, entity := range arch.entities {
				if !yield(QueryResult{Entity: entity, ArchetypeID: arch.id, Row: row}) {
					return
				}
			}
		}
	}
}
