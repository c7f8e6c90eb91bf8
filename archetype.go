package archecs

import "sort"

// Archetype is a table of entities sharing the same sorted signature of
// component ids, with one type-erased column per component holding all
// rows' values in lockstep with the entities slice.
type Archetype struct {
	Signature []ComponentID
	colIndex  map[ComponentID]int
	columns   []*typeErasedVector
	entities  []Entity

	addCache    *transitionCache
	removeCache *transitionCache
}

func newArchetype(signature []ComponentID, layouts []Layout) *Archetype {
	cols := make([]*typeErasedVector, len(signature))
	idx := make(map[ComponentID]int, len(signature))
	for i, id := range signature {
		cols[i] = newTEV(layouts[i])
		idx[id] = i
	}
	return &Archetype{
		Signature:   signature,
		colIndex:    idx,
		columns:     cols,
		addCache:    newTransitionCache(),
		removeCache: newTransitionCache(),
	}
}

// ColumnIndex returns the column position holding id's data, if the
// archetype's signature includes it.
func (a *Archetype) ColumnIndex(id ComponentID) (int, bool) {
	i, ok := a.colIndex[id]
	return i, ok
}

// RowCount returns the number of entities currently stored.
func (a *Archetype) RowCount() int { return len(a.entities) }

// deriveWith computes the sorted signature and parallel layout slice for
// this archetype plus id. Fatal if id is already present — callers are
// expected to have checked first; this is the invariant violation path.
func (a *Archetype) deriveWith(id ComponentID, layout Layout) ([]ComponentID, []Layout) {
	if _, exists := a.colIndex[id]; exists {
		fatal(&ComponentExistsError{Component: id})
	}
	sig := make([]ComponentID, len(a.Signature)+1)
	copy(sig, a.Signature)
	sig[len(a.Signature)] = id
	sort.Slice(sig, func(i, j int) bool { return sig[i] < sig[j] })

	layouts := make([]Layout, len(sig))
	for i, cid := range sig {
		if cid == id {
			layouts[i] = layout
			continue
		}
		ci := a.colIndex[cid]
		layouts[i] = a.columns[ci].layout
	}
	return sig, layouts
}

// deriveWithout computes the sorted signature and parallel layout slice
// for this archetype minus id. Fatal if id is not present.
func (a *Archetype) deriveWithout(id ComponentID) ([]ComponentID, []Layout) {
	if _, exists := a.colIndex[id]; !exists {
		fatal(&ComponentNotFoundError{Component: id})
	}
	sig := make([]ComponentID, 0, len(a.Signature)-1)
	layouts := make([]Layout, 0, len(a.Signature)-1)
	for i, cid := range a.Signature {
		if cid == id {
			continue
		}
		sig = append(sig, cid)
		layouts = append(layouts, a.columns[i].layout)
	}
	return sig, layouts
}

// removeEntityOnly swap-removes row from the entities slice and patches
// the swapped-in entity's row in metas, without touching any column. Used
// when columns have already been emptied by a move (add/remove component)
// rather than a teardown.
func (a *Archetype) removeEntityOnly(row int, metas []EntityMeta) {
	last := len(a.entities) - 1
	moved := a.entities[last]
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
	if row != last {
		m := metas[moved.Index()]
		m.Row = row
		metas[moved.Index()] = m
	}
}

// despawnRow removes row entirely: every column drops its value via
// SwapRemove, then the entities slice and swapped-in entity's metadata are
// fixed up the same way.
func (a *Archetype) despawnRow(row int, metas []EntityMeta) {
	for _, col := range a.columns {
		col.SwapRemove(row)
	}
	a.removeEntityOnly(row, metas)
}
