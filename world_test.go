package archecs

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type pos struct{ X, Y float64 }
type vel struct{ X, Y float64 }
type tag struct{}
type dropper struct{ N int }

func TestWorld_SpawnAndGet(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{X: 1, Y: 2})
	e := b.Build()

	require.True(t, w.IsAlive(e))
	p, ok := Get[pos](w, e)
	require.True(t, ok)
	require.Equal(t, pos{X: 1, Y: 2}, *p)
}

func TestWorld_AddComponentMovesArchetype(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{X: 1})
	e := b.Build()

	Add(w, e, vel{X: 5})
	v, ok := Get[vel](w, e)
	require.True(t, ok)
	require.Equal(t, vel{X: 5}, *v)

	p, ok := Get[pos](w, e)
	require.True(t, ok)
	require.Equal(t, pos{X: 1}, *p)
}

func TestWorld_AddExistingComponentIsFatal(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{})
	e := b.Build()
	require.Panics(t, func() { Add(w, e, pos{X: 9}) })
}

func TestWorld_RemoveComponentMovesArchetype(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{X: 1})
	With(b, vel{X: 2})
	e := b.Build()

	Remove[vel](w, e)
	require.False(t, Has[vel](w, e))
	require.True(t, Has[pos](w, e))
}

func TestWorld_RemoveAbsentComponentIsNoop(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{})
	e := b.Build()
	require.NotPanics(t, func() { Remove[vel](w, e) })
}

func TestWorld_DespawnReleasesEntity(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{})
	e := b.Build()

	require.True(t, w.Despawn(e))
	require.False(t, w.IsAlive(e))
	_, ok := Get[pos](w, e)
	require.False(t, ok)
}

func TestWorld_DespawnTwiceIsNoop(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().Build()
	require.True(t, w.Despawn(e))
	require.False(t, w.Despawn(e))
}

func TestWorld_DespawnThenSpawnReusesIndexFreshGeneration(t *testing.T) {
	w := NewWorld()
	first := w.Spawn().Build()
	w.Despawn(first)
	second := w.Spawn().Build()
	require.Equal(t, first.Index(), second.Index())
	require.NotEqual(t, first.Generation(), second.Generation())
	require.False(t, w.IsAlive(first))
	require.True(t, w.IsAlive(second))
}

func TestWorld_UnknownComponentQueryIsEmpty(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{})
	b.Build()

	q := NewQuery1[vel](w)
	defer q.Close()
	require.False(t, q.Next())
}

func TestWorld_QuerySweepUpdatesInPlace(t *testing.T) {
	w := NewWorld()
	moving := make([]Entity, 5)
	for i := 0; i < 5; i++ {
		b := w.Spawn()
		With(b, pos{X: float64(i)})
		With(b, vel{X: 1})
		moving[i] = b.Build()
	}
	// one extra entity without vel, must not appear in the Query2 sweep.
	only := w.Spawn()
	With(only, pos{X: 99})
	only.Build()

	q := NewQuery2[pos, vel](w)
	count := 0
	for q.Next() {
		p, v := q.Get1(), q.Get2()
		p.X += v.X
		count++
	}
	q.Close()
	require.Equal(t, 5, count)
	for i, e := range moving {
		p, ok := Get[pos](w, e)
		require.True(t, ok)
		require.Equal(t, float64(i+1), p.X)
	}
}

func TestWorld_ZeroSizedComponent(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, tag{})
	e := b.Build()
	require.True(t, Has[tag](w, e))

	q := NewQuery1[tag](w)
	defer q.Close()
	require.True(t, q.Next())
	require.Equal(t, e, q.Entity())
}

func TestWorld_BuilderDuplicateComponentIsFatal(t *testing.T) {
	w := NewWorld()
	b := w.Spawn()
	With(b, pos{X: 1})
	With(b, pos{X: 2})
	require.Panics(t, func() { b.Build() })
}

func TestWorld_DespawnHalfThenDestroyDropsEveryRowExactlyOnce(t *testing.T) {
	w := NewWorld()
	var drops int
	id := RegisterComponentType[dropper](w)
	layout := layoutOf[dropper]()
	layout.Drop = func(unsafe.Pointer) { drops++ }
	w.setComponentLayout(id, layout)

	const n = 10
	es := make([]Entity, n)
	for i := 0; i < n; i++ {
		b := w.Spawn()
		With(b, dropper{N: i})
		es[i] = b.Build()
	}

	for i := 0; i < n/2; i++ {
		require.True(t, w.Despawn(es[i]))
	}
	require.Equal(t, n/2, drops)

	w.Destroy()
	require.Equal(t, n, drops)
}

func TestWorld_EntityIDFetchMatchesEveryArchetype(t *testing.T) {
	w := NewWorld()
	withPos := w.Spawn()
	With(withPos, pos{})
	posEntity := withPos.Build()
	bare := w.Spawn().Build()

	h := w.Query([]Fetch{EntityIDFetch()})
	defer h.Release()
	cursor := h.Cursor()
	seen := map[Entity]bool{}
	for cursor.Next() {
		seen[cursor.Entity()] = true
	}
	require.True(t, seen[bare])
	require.True(t, seen[posEntity])
}
