package archecs

import (
	"encoding/binary"
	"reflect"
	"sort"
	"sync"
	"unsafe"
)

// WorldOptions configures a World at construction. There is no config
// library here — no environment variables or CLI flags to parse, just a
// plain struct a caller fills in.
type WorldOptions struct {
	// InitialCapacity is recorded on the World (zero or negative becomes
	// 64), but no archetype or column is presized from it; archetypes grow
	// on demand.
	InitialCapacity int
	// MaxComponentCap is advisory only — unlike the teacher, this
	// implementation has no fixed component-count ceiling, since
	// component ids share the unbounded entity id space. Reserved for a
	// future preallocation hint.
	MaxComponentCap int
}

// EntityMeta records where one live entity's row lives: which archetype,
// which row within it, and — if this entity also doubles as a registered
// component id — the layout it was registered with.
type EntityMeta struct {
	Valid           bool
	ArchIdx         int
	Row             int
	ComponentLayout *Layout
}

// World owns every piece of ECS state: the entity registry, the
// archetype table, the per-component presence bitsets, the component
// layout table, and the per-component lock table queries acquire against.
// There is no package-level state anywhere in this library — everything
// hangs off a *World.
type World struct {
	archetypes []*Archetype
	sigIndex   map[string]int

	bvm      BitVectorMap
	presence BitVector

	er   entityRegistry
	meta []EntityMeta

	typeToComponent  map[reflect.Type]ComponentID
	componentLayouts []Layout

	locks     []*sync.RWMutex
	lockIndex map[ComponentID]int

	opts WorldOptions
}

// NewWorld creates a World with default options.
func NewWorld() *World {
	return NewWorldWithOptions(WorldOptions{})
}

// NewWorldWithOptions creates a World, pre-creating the empty-signature
// root archetype every freshly spawned, component-free entity lands in.
func NewWorldWithOptions(opts WorldOptions) *World {
	if opts.InitialCapacity <= 0 {
		opts.InitialCapacity = 64
	}
	w := &World{
		sigIndex:        make(map[string]int, 32),
		typeToComponent: make(map[reflect.Type]ComponentID),
		lockIndex:       make(map[ComponentID]int),
		opts:            opts,
	}
	w.getOrCreateArchetype(nil, nil)
	return w
}

func signatureKey(ids []ComponentID) string {
	buf := make([]byte, len(ids)*8)
	for i, id := range ids {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(id))
	}
	return string(buf)
}

// getOrCreateArchetype returns the archetype for signature (already sorted
// by the caller), creating it — and registering it in every relevant
// component's presence bitset plus the world presence bitset — on first
// use.
func (w *World) getOrCreateArchetype(signature []ComponentID, layouts []Layout) (*Archetype, int) {
	key := signatureKey(signature)
	if idx, ok := w.sigIndex[key]; ok {
		return w.archetypes[idx], idx
	}
	arch := newArchetype(signature, layouts)
	idx := len(w.archetypes)
	w.archetypes = append(w.archetypes, arch)
	w.sigIndex[key] = idx
	for _, id := range signature {
		w.bvm.Set(id, idx, true)
	}
	w.presence.Push(true)
	return arch, idx
}

func (w *World) ensureMeta(idx int) {
	if idx >= len(w.meta) {
		w.meta = extendSlice(w.meta, idx+1-len(w.meta))
	}
}

// IsAlive reports whether e refers to a currently live entity. Unlike the
// internal registry check, an out-of-range index simply reads as "not
// alive" rather than panicking.
func (w *World) IsAlive(e Entity) bool {
	return w.isAliveSafe(e)
}

func (w *World) isAliveSafe(e Entity) bool {
	if int(e.Index()) >= len(w.er.slots) {
		return false
	}
	return w.er.isAlive(e)
}

// Spawn reserves a fresh entity id and returns a builder for assembling
// its initial component set. The entity does not exist in any archetype
// until Build is called.
func (w *World) Spawn() *EntityBuilder {
	e := w.er.spawn()
	w.ensureMeta(int(e.Index()))
	return &EntityBuilder{world: w, entity: e}
}

// Despawn releases e's id back to the registry and, if it occupied an
// archetype row, removes that row (running every column's drop function).
// Returns false without effect if e is not alive.
func (w *World) Despawn(e Entity) bool {
	if !w.isAliveSafe(e) {
		return false
	}
	idx := int(e.Index())
	m := w.meta[idx]
	if !w.er.despawn(e) {
		return false
	}
	if m.Valid {
		w.archetypes[m.ArchIdx].despawnRow(m.Row, w.meta)
	}
	w.meta[idx] = EntityMeta{}
	return true
}

// Destroy releases every archetype's column storage, running each live
// row's drop function along the way, and leaves w empty. Spawning from w
// afterward is not supported — Destroy is for tearing down a world whose
// lifetime has ended, not for clearing it.
func (w *World) Destroy() {
	for _, arch := range w.archetypes {
		for _, col := range arch.columns {
			col.Destroy()
		}
		arch.entities = nil
	}
	w.archetypes = nil
	w.sigIndex = nil
}

// commitSpawn sorts a builder's staged components into ascending id order,
// fatally rejecting a duplicate rather than silently collapsing it, then
// pushes one row into the resulting archetype.
func (w *World) commitSpawn(b *EntityBuilder) Entity {
	order := make([]int, len(b.ids))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return b.ids[order[i]] < b.ids[order[j]] })

	sortedIDs := make([]ComponentID, len(order))
	sortedLayouts := make([]Layout, len(order))
	for i, oi := range order {
		sortedIDs[i] = b.ids[oi]
		sortedLayouts[i] = b.layouts[oi]
		if i > 0 && sortedIDs[i] == sortedIDs[i-1] {
			fatal(&ComponentExistsError{Component: sortedIDs[i]})
		}
	}

	arch, archIdx := w.getOrCreateArchetype(sortedIDs, sortedLayouts)
	row := arch.RowCount()
	for i, oi := range order {
		col, _ := arch.ColumnIndex(sortedIDs[i])
		data := b.data[oi]
		ptr := unsafe.Pointer(&data)
		if len(data) > 0 {
			ptr = unsafe.Pointer(&data[0])
		}
		arch.columns[col].Push(ptr)
	}
	arch.entities = append(arch.entities, b.entity)

	idx := int(b.entity.Index())
	w.ensureMeta(idx)
	w.meta[idx] = EntityMeta{Valid: true, ArchIdx: archIdx, Row: row, ComponentLayout: w.meta[idx].ComponentLayout}
	return b.entity
}

