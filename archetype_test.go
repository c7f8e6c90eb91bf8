package archecs

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestArchetype_DeriveWithSortsSignature(t *testing.T) {
	idA := newEntity(0, 1)
	idB := newEntity(0, 5)
	arch := newArchetype([]ComponentID{idB}, []Layout{layoutOf[int64]()})

	sig, layouts := arch.deriveWith(idA, layoutOf[int64]())
	require.Equal(t, []ComponentID{idA, idB}, sig)
	require.Len(t, layouts, 2)
}

func TestArchetype_DeriveWithDuplicateIsFatal(t *testing.T) {
	id := newEntity(0, 1)
	arch := newArchetype([]ComponentID{id}, []Layout{layoutOf[int64]()})
	require.Panics(t, func() { arch.deriveWith(id, layoutOf[int64]()) })
}

func TestArchetype_DeriveWithoutMissingIsFatal(t *testing.T) {
	arch := newArchetype(nil, nil)
	require.Panics(t, func() { arch.deriveWithout(newEntity(0, 1)) })
}

func TestArchetype_DespawnRowSwapsLastAndFixesMeta(t *testing.T) {
	id := newEntity(0, 1)
	arch := newArchetype([]ComponentID{id}, []Layout{layoutOf[int64]()})
	e0, e1, e2 := newEntity(1, 0), newEntity(1, 1), newEntity(1, 2)
	for _, e := range []Entity{e0, e1, e2} {
		v := int64(e.Index())
		arch.columns[0].Push(unsafe.Pointer(&v))
		arch.entities = append(arch.entities, e)
	}
	metas := make([]EntityMeta, 3)
	metas[0] = EntityMeta{Valid: true, Row: 0}
	metas[2] = EntityMeta{Valid: true, Row: 2}

	arch.despawnRow(0, metas)

	require.Equal(t, 2, arch.RowCount())
	require.Equal(t, e2, arch.entities[0])
	require.Equal(t, 0, metas[2].Row)
}
