package archecs

import "unsafe"

// Query1 is a typed, single-component query built on top of the raw
// QueryHandle/RowCursor pair. It does no archetype bookkeeping of its
// own — it only decodes what the dispatcher already computed.
type Query1[T1 any] struct {
	handle *QueryHandle
	cursor *RowCursor
}

// NewQuery1 registers T1 if needed and opens a shared-access query over it.
func NewQuery1[T1 any](w *World) *Query1[T1] {
	h := w.Query([]Fetch{SharedFetch(mustComponentID[T1](w))})
	return &Query1[T1]{handle: h, cursor: h.Cursor()}
}

func (q *Query1[T1]) Next() bool     { return q.cursor.Next() }
func (q *Query1[T1]) Entity() Entity { return q.cursor.Entity() }
func (q *Query1[T1]) Get() *T1       { return (*T1)(q.cursor.Pointer(0)) }
func (q *Query1[T1]) Close()         { q.handle.Release() }

// Query2 is the two-component form of Query1.
type Query2[T1, T2 any] struct {
	handle *QueryHandle
	cursor *RowCursor
}

func NewQuery2[T1, T2 any](w *World) *Query2[T1, T2] {
	h := w.Query([]Fetch{
		SharedFetch(mustComponentID[T1](w)),
		SharedFetch(mustComponentID[T2](w)),
	})
	return &Query2[T1, T2]{handle: h, cursor: h.Cursor()}
}

func (q *Query2[T1, T2]) Next() bool     { return q.cursor.Next() }
func (q *Query2[T1, T2]) Entity() Entity { return q.cursor.Entity() }
func (q *Query2[T1, T2]) Get1() *T1      { return (*T1)(q.cursor.Pointer(0)) }
func (q *Query2[T1, T2]) Get2() *T2      { return (*T2)(q.cursor.Pointer(1)) }
func (q *Query2[T1, T2]) Close()         { q.handle.Release() }

// Query3 is the three-component form of Query1.
type Query3[T1, T2, T3 any] struct {
	handle *QueryHandle
	cursor *RowCursor
}

func NewQuery3[T1, T2, T3 any](w *World) *Query3[T1, T2, T3] {
	h := w.Query([]Fetch{
		SharedFetch(mustComponentID[T1](w)),
		SharedFetch(mustComponentID[T2](w)),
		SharedFetch(mustComponentID[T3](w)),
	})
	return &Query3[T1, T2, T3]{handle: h, cursor: h.Cursor()}
}

func (q *Query3[T1, T2, T3]) Next() bool     { return q.cursor.Next() }
func (q *Query3[T1, T2, T3]) Entity() Entity { return q.cursor.Entity() }
func (q *Query3[T1, T2, T3]) Get1() *T1      { return (*T1)(q.cursor.Pointer(0)) }
func (q *Query3[T1, T2, T3]) Get2() *T2      { return (*T2)(q.cursor.Pointer(1)) }
func (q *Query3[T1, T2, T3]) Get3() *T3      { return (*T3)(q.cursor.Pointer(2)) }
func (q *Query3[T1, T2, T3]) Close()         { q.handle.Release() }

// Query4 is the four-component form of Query1.
type Query4[T1, T2, T3, T4 any] struct {
	handle *QueryHandle
	cursor *RowCursor
}

func NewQuery4[T1, T2, T3, T4 any](w *World) *Query4[T1, T2, T3, T4] {
	h := w.Query([]Fetch{
		SharedFetch(mustComponentID[T1](w)),
		SharedFetch(mustComponentID[T2](w)),
		SharedFetch(mustComponentID[T3](w)),
		SharedFetch(mustComponentID[T4](w)),
	})
	return &Query4[T1, T2, T3, T4]{handle: h, cursor: h.Cursor()}
}

func (q *Query4[T1, T2, T3, T4]) Next() bool     { return q.cursor.Next() }
func (q *Query4[T1, T2, T3, T4]) Entity() Entity { return q.cursor.Entity() }
func (q *Query4[T1, T2, T3, T4]) Get1() *T1      { return (*T1)(q.cursor.Pointer(0)) }
func (q *Query4[T1, T2, T3, T4]) Get2() *T2      { return (*T2)(q.cursor.Pointer(1)) }
func (q *Query4[T1, T2, T3, T4]) Get3() *T3      { return (*T3)(q.cursor.Pointer(2)) }
func (q *Query4[T1, T2, T3, T4]) Get4() *T4      { return (*T4)(q.cursor.Pointer(3)) }
func (q *Query4[T1, T2, T3, T4]) Close()         { q.handle.Release() }

// DynamicQuery is the fully runtime-driven form: fetches are built from a
// slice of ComponentID-keyed Fetch values rather than type parameters,
// for callers assembling a query shape they don't know at compile time.
type DynamicQuery struct {
	handle *QueryHandle
	cursor *RowCursor
}

// NewDynamicQuery opens a query over an arbitrary fetch list.
func NewDynamicQuery(w *World, fetches []Fetch) *DynamicQuery {
	h := w.Query(fetches)
	return &DynamicQuery{handle: h, cursor: h.Cursor()}
}

func (q *DynamicQuery) Next() bool                  { return q.cursor.Next() }
func (q *DynamicQuery) Entity() Entity               { return q.cursor.Entity() }
func (q *DynamicQuery) Pointer(i int) unsafe.Pointer { return q.cursor.Pointer(i) }
func (q *DynamicQuery) Close()                       { q.handle.Release() }
