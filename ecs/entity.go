package ecs

// EntityHandle is an opaque 64-bit entity identity, packing a 32-bit index
// (lower bits) and a 32-bit generation (upper bits). Two handles compare
// equal only if both fields match. A handle is live iff the EntityManager's
// current generation for its index equals the handle's generation and that
// index is currently allocated.
type EntityHandle uint64

// NewEntityHandle packs an index and generation into an EntityHandle.
func NewEntityHandle(index, generation uint32) EntityHandle {
	return EntityHandle(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the handle.
func (h EntityHandle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the handle.
func (h EntityHandle) Generation() uint32 {
	return uint32(h >> 32)
}

// EntityManager issues and recycles EntityHandles. It tracks, per index, a
// generation counter that is incremented on destroy so that handles
// referring to a reused index become stale rather than aliasing the new
// occupant.
type EntityManager struct {
	generations []uint32
	freelist    []uint32
	live        []bool
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// Create mints a fresh EntityHandle, recycling a freed index when one is
// available.
func (m *EntityManager) Create() EntityHandle {
	if n := len(m.freelist); n > 0 {
		index := m.freelist[n-1]
		m.freelist = m.freelist[:n-1]
		m.live[index] = true
		return NewEntityHandle(index, m.generations[index])
	}
	index := uint32(len(m.generations))
	m.generations = append(m.generations, 0)
	m.live = append(m.live, true)
	return NewEntityHandle(index, 0)
}

// Destroy invalidates h, incrementing the generation for its index so any
// outstanding copies of h become stale. Returns false if h was not live.
func (m *EntityManager) Destroy(h EntityHandle) bool {
	if !m.IsAlive(h) {
		return false
	}
	index := h.Index()
	m.live[index] = false
	// Wraparound is permitted: the spec treats generation exhaustion as an
	// open question resolved in favor of wrapping rather than retiring the
	// slot (see DESIGN.md).
	m.generations[index]++
	m.freelist = append(m.freelist, index)
	return true
}

// IsAlive reports whether h refers to a currently allocated index with a
// matching generation.
func (m *EntityManager) IsAlive(h EntityHandle) bool {
	index := h.Index()
	if int(index) >= len(m.generations) {
		return false
	}
	return m.live[index] && m.generations[index] == h.Generation()
}

// Clear resets the manager; all previously issued handles become stale.
func (m *EntityManager) Clear() {
	m.generations = nil
	m.freelist = nil
	m.live = nil
}
