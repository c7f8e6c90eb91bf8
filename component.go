package archecs

import "reflect"

// ComponentID identifies a component type. Component ids are themselves
// entities — minted from the same world.er as ordinary entities — so a
// component and a plain entity share one identifier space and one
// liveness mechanism; a component id with no archetype row is simply an
// entity that was never spawned into one.
//
// Unlike the teacher's global ComponentID registry, there is no package
// level table here: every id is scoped to the World that minted it.
type ComponentID = Entity

// RegisterComponentType mints (or returns the existing) ComponentID for T
// on w, recording T's Layout in the world's component table. Safe to call
// more than once for the same T.
func RegisterComponentType[T any](w *World) ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := w.typeToComponent[t]; ok {
		return id
	}
	id := w.er.spawn()
	w.setComponentLayout(id, layoutOf[T]())
	w.typeToComponent[t] = id
	return id
}

// GetComponentID returns the ComponentID previously registered for T, if
// any.
func GetComponentID[T any](w *World) (ComponentID, bool) {
	id, ok := w.typeToComponent[reflect.TypeFor[T]()]
	return id, ok
}

func mustComponentID[T any](w *World) ComponentID {
	if id, ok := GetComponentID[T](w); ok {
		return id
	}
	return RegisterComponentType[T](w)
}

func (w *World) layoutFor(id ComponentID) Layout {
	idx := int(id.Index())
	if idx >= len(w.componentLayouts) {
		fatal(&UnregisteredComponentError{ID: id})
	}
	return w.componentLayouts[idx]
}

func (w *World) setComponentLayout(id ComponentID, layout Layout) {
	idx := int(id.Index())
	if idx >= len(w.componentLayouts) {
		w.componentLayouts = extendSlice(w.componentLayouts, idx+1-len(w.componentLayouts))
	}
	w.componentLayouts[idx] = layout
	w.ensureMeta(idx)
	m := w.meta[idx]
	lc := layout
	m.ComponentLayout = &lc
	w.meta[idx] = m
}
