package archecs

import "unsafe"

// EntityBuilder accumulates a reserved entity's initial component set and
// commits it in a single archetype move. It does no transition-cache
// bookkeeping of its own — Build hands everything off to World's normal
// spawn-commit path.
type EntityBuilder struct {
	world  *World
	entity Entity

	ids     []ComponentID
	layouts []Layout
	data    [][]byte
}

// WithByID stages a component by raw id, copying layout.Size bytes out of
// ptr immediately so the caller's value can go out of scope safely.
func (b *EntityBuilder) WithByID(id ComponentID, ptr unsafe.Pointer) *EntityBuilder {
	layout := b.world.layoutFor(id)
	buf := make([]byte, layout.Size)
	if layout.Size > 0 {
		copy(buf, unsafe.Slice((*byte)(ptr), layout.Size))
	}
	b.ids = append(b.ids, id)
	b.layouts = append(b.layouts, layout)
	b.data = append(b.data, buf)
	return b
}

// With registers T on the builder's world if needed and stages value.
func With[T any](b *EntityBuilder, value T) *EntityBuilder {
	id := mustComponentID[T](b.world)
	return b.WithByID(id, unsafe.Pointer(&value))
}

// Build sorts the staged components into signature order, fatally
// rejecting a duplicate id rather than silently collapsing it — matching
// the original source's fail-fast stance on a caller bug — and commits
// the entity into its target archetype.
func (b *EntityBuilder) Build() Entity {
	return b.world.commitSpawn(b)
}
