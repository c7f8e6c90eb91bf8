package archecs

import "unsafe"

// AddComponentByID moves e into the archetype for its current signature
// plus id, copying size bytes from src into the new column. Silent no-op
// if e or id is not alive, or if e has no archetype row. Fatal if e
// already carries id.
func (w *World) AddComponentByID(e Entity, id ComponentID, src unsafe.Pointer) {
	if !w.isAliveSafe(e) || !w.isAliveSafe(id) {
		return
	}
	idx := int(e.Index())
	m := w.meta[idx]
	if !m.Valid {
		return
	}
	oldArch := w.archetypes[m.ArchIdx]
	if _, exists := oldArch.ColumnIndex(id); exists {
		fatal(&ComponentExistsError{Component: id})
	}

	targetIdx, ok := oldArch.addCache.Lookup(id)
	if !ok {
		sig, layouts := oldArch.deriveWith(id, w.layoutFor(id))
		_, targetIdx = w.getOrCreateArchetype(sig, layouts)
		oldArch.addCache.Insert(id, targetIdx)
	}
	targetArch := w.archetypes[targetIdx]

	oldRow := m.Row
	newRow := targetArch.RowCount()
	for _, cid := range oldArch.Signature {
		sc, _ := oldArch.ColumnIndex(cid)
		dc, _ := targetArch.ColumnIndex(cid)
		oldArch.columns[sc].SwapMoveTo(targetArch.columns[dc], oldRow)
	}
	dstCol, _ := targetArch.ColumnIndex(id)
	targetArch.columns[dstCol].Push(src)
	targetArch.entities = append(targetArch.entities, e)
	oldArch.removeEntityOnly(oldRow, w.meta)

	w.meta[idx] = EntityMeta{Valid: true, ArchIdx: targetIdx, Row: newRow, ComponentLayout: m.ComponentLayout}
}

// RemoveComponentByID moves e into the archetype for its current
// signature minus id, dropping id's column value. Silent no-op if e is
// not alive, has no archetype row, or does not currently carry id.
func (w *World) RemoveComponentByID(e Entity, id ComponentID) {
	if !w.isAliveSafe(e) {
		return
	}
	idx := int(e.Index())
	m := w.meta[idx]
	if !m.Valid {
		return
	}
	oldArch := w.archetypes[m.ArchIdx]
	srcCol, exists := oldArch.ColumnIndex(id)
	if !exists {
		return
	}

	targetIdx, ok := oldArch.removeCache.Lookup(id)
	if !ok {
		sig, layouts := oldArch.deriveWithout(id)
		_, targetIdx = w.getOrCreateArchetype(sig, layouts)
		oldArch.removeCache.Insert(id, targetIdx)
	}
	targetArch := w.archetypes[targetIdx]

	oldRow := m.Row
	newRow := targetArch.RowCount()
	for _, cid := range oldArch.Signature {
		if cid == id {
			continue
		}
		sc, _ := oldArch.ColumnIndex(cid)
		dc, _ := targetArch.ColumnIndex(cid)
		oldArch.columns[sc].SwapMoveTo(targetArch.columns[dc], oldRow)
	}
	oldArch.columns[srcCol].SwapRemove(oldRow)
	targetArch.entities = append(targetArch.entities, e)
	oldArch.removeEntityOnly(oldRow, w.meta)

	w.meta[idx] = EntityMeta{Valid: true, ArchIdx: targetIdx, Row: newRow, ComponentLayout: m.ComponentLayout}
}

// GetByID returns a pointer to e's value for component id, if e is alive
// and carries it.
func (w *World) GetByID(e Entity, id ComponentID) (unsafe.Pointer, bool) {
	if !w.isAliveSafe(e) {
		return nil, false
	}
	m := w.meta[e.Index()]
	if !m.Valid {
		return nil, false
	}
	arch := w.archetypes[m.ArchIdx]
	col, ok := arch.ColumnIndex(id)
	if !ok {
		return nil, false
	}
	return arch.columns[col].Get(m.Row), true
}

// HasComponentByID reports whether e is alive and carries id.
func (w *World) HasComponentByID(e Entity, id ComponentID) bool {
	if !w.isAliveSafe(e) {
		return false
	}
	m := w.meta[e.Index()]
	if !m.Valid {
		return false
	}
	_, ok := w.archetypes[m.ArchIdx].ColumnIndex(id)
	return ok
}

// Add registers T if needed and adds value to e as a new component.
func Add[T any](w *World, e Entity, value T) {
	id := mustComponentID[T](w)
	w.AddComponentByID(e, id, unsafe.Pointer(&value))
}

// Remove removes e's T component, if any and if T has been registered.
func Remove[T any](w *World, e Entity) {
	id, ok := GetComponentID[T](w)
	if !ok {
		return
	}
	w.RemoveComponentByID(e, id)
}

// Get returns a pointer to e's T value, if present.
func Get[T any](w *World, e Entity) (*T, bool) {
	id, ok := GetComponentID[T](w)
	if !ok {
		return nil, false
	}
	ptr, ok := w.GetByID(e, id)
	if !ok {
		return nil, false
	}
	return (*T)(ptr), true
}

// Has reports whether e carries a T component.
func Has[T any](w *World, e Entity) bool {
	id, ok := GetComponentID[T](w)
	if !ok {
		return false
	}
	return w.HasComponentByID(e, id)
}
