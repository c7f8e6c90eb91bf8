package archecs

// Entity is an opaque identifier: a generation counter packed into the
// high 32 bits and a dense slot index packed into the low 32 bits. Zero is
// not reserved — the first entity ever spawned is generation 0, index 0.
type Entity uint64

func newEntity(generation, index uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the dense slot index this entity occupies in its world's
// entity registry. Stable across the entity's lifetime; reused by a later
// entity once this one is despawned.
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the reuse counter for this entity's slot. Two entities
// sharing an index but differing in generation refer to different lifetimes
// of that slot; only the most recent one is alive.
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

// erSlot is one row of the entity registry: whether the slot is currently
// occupied, and the generation of its current (or most recent) occupant.
type erSlot struct {
	alive      bool
	generation uint32
}

// entityRegistry is the dense array of entity slots plus the stack of
// indices freed by despawn and available for reuse.
type entityRegistry struct {
	slots     []erSlot
	freeStack []uint32
}

// spawn reserves an entity id: it pops a freed index off the reuse stack
// and bumps its generation (wrapping through the full uint32 range, 0
// included — there is no sentinel generation), or grows the slot array by
// one if nothing is free.
func (r *entityRegistry) spawn() Entity {
	if n := len(r.freeStack); n > 0 {
		idx := r.freeStack[n-1]
		r.freeStack = r.freeStack[:n-1]
		slot := &r.slots[idx]
		if slot.alive {
			panic("archecs: entity registry reuse stack holds a live slot")
		}
		slot.generation++
		slot.alive = true
		return newEntity(slot.generation, idx)
	}
	idx := uint32(len(r.slots))
	r.slots = append(r.slots, erSlot{alive: true, generation: 0})
	return newEntity(0, idx)
}

// despawn marks e's slot free and pushes its index onto the reuse stack.
// Returns false without effect if e's index is out of range, its slot is
// already dead, or its generation is stale.
func (r *entityRegistry) despawn(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(r.slots) {
		return false
	}
	slot := &r.slots[idx]
	if !slot.alive || slot.generation != e.Generation() {
		return false
	}
	slot.alive = false
	r.freeStack = append(r.freeStack, idx)
	return true
}

// isAlive reports whether e refers to the current occupant of its slot.
// The index is required to be in range — callers outside this package
// should use World.IsAlive, which bounds-checks first.
func (r *entityRegistry) isAlive(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(r.slots) {
		panic("archecs: entity index out of range")
	}
	slot := r.slots[idx]
	return slot.alive && slot.generation == e.Generation()
}
