package archecs

import (
	"math"
	"unsafe"
)

// typeErasedVector is a growable, densely packed byte buffer holding values
// of a single component layout. It never inspects the values it stores —
// every operation moves raw bytes (or, for a zero-sized layout, just a
// count) and defers to layout.Drop for teardown.
//
// buf always has length equal to capacity in bytes; used tracks how many of
// those bytes (or, for a Unit layout, how many logical elements) are live.
type typeErasedVector struct {
	layout Layout
	buf    []byte
	used   int
}

func newTEV(layout Layout) *typeErasedVector {
	return &typeErasedVector{layout: layout}
}

// Len returns the number of live elements.
func (v *typeErasedVector) Len() int {
	if v.layout.Unit || v.layout.Size == 0 {
		return v.used
	}
	return v.used / int(v.layout.Size)
}

// grow reallocates buf so it can hold at least minBytes, following
// max(size*4, capacity*2) — which also yields an initial four-element
// allocation for a fresh, empty, non-zero-sized layout.
func (v *typeErasedVector) grow(minBytes int) {
	size := int(v.layout.Size)
	target := len(v.buf) * 2
	if need := size * 4; need > target {
		target = need
	}
	if target < minBytes {
		target = minBytes
	}
	if target < 0 || target > math.MaxInt/2 {
		panic("archecs: type-erased vector capacity overflow")
	}
	next := make([]byte, target)
	copy(next, v.buf[:v.used])
	v.buf = next
}

// Push copies layout.Size bytes from src onto the end of the buffer. For a
// Unit layout src is never dereferenced; only the element count advances.
func (v *typeErasedVector) Push(src unsafe.Pointer) {
	if src == nil {
		panic("archecs: push requires a non-nil source pointer")
	}
	if v.layout.Unit {
		v.used++
		return
	}
	size := int(v.layout.Size)
	if v.used+size > len(v.buf) {
		v.grow(v.used + size)
	}
	copyBytes(unsafe.Pointer(&v.buf[v.used]), src, size)
	v.used += size
}

// Pop drops the last element, if any, running the layout's drop function
// first. Returns false if the vector was already empty.
func (v *typeErasedVector) Pop() bool {
	if v.Len() == 0 {
		return false
	}
	if v.layout.Unit {
		v.used--
		if v.layout.Drop != nil {
			v.layout.Drop(nil)
		}
		return true
	}
	size := int(v.layout.Size)
	v.used -= size
	if v.layout.Drop != nil {
		v.layout.Drop(unsafe.Pointer(&v.buf[v.used]))
	}
	return true
}

// Get returns a pointer to the row'th element. Panics if row is out of
// range. Returns nil for a Unit layout — there is no backing storage to
// point at.
func (v *typeErasedVector) Get(row int) unsafe.Pointer {
	if n := v.Len(); row < 0 || row >= n {
		fatal(&RowOutOfRangeError{Row: row, RowCount: n})
	}
	if v.layout.Unit {
		return nil
	}
	return unsafe.Pointer(&v.buf[row*int(v.layout.Size)])
}

// SwapRemove removes row, running the drop function on the removed value.
// If row is not the last element, the last element's bytes are swapped
// into row's place first so the buffer stays dense.
func (v *typeErasedVector) SwapRemove(row int) {
	n := v.Len()
	if row < 0 || row >= n {
		fatal(&RowOutOfRangeError{Row: row, RowCount: n})
	}
	last := n - 1
	if row != last && !v.layout.Unit {
		size := int(v.layout.Size)
		ro, lo := row*size, last*size
		swapBytes(v.buf[ro:ro+size], v.buf[lo:lo+size])
	}
	v.Pop()
}

// SwapMoveTo relocates row's bytes into other without running the drop
// function — ownership transfers rather than being torn down. other must
// share this vector's layout shape.
func (v *typeErasedVector) SwapMoveTo(other *typeErasedVector, row int) {
	if !sameShape(v.layout, other.layout) {
		panic("archecs: swap-move between mismatched layouts")
	}
	n := v.Len()
	if row < 0 || row >= n {
		fatal(&RowOutOfRangeError{Row: row, RowCount: n})
	}
	if v.layout.Unit {
		other.used++
		v.used--
		return
	}
	size := int(v.layout.Size)
	last := n - 1
	if row != last {
		ro, lo := row*size, last*size
		swapBytes(v.buf[ro:ro+size], v.buf[lo:lo+size])
		row = last
	}
	other.Push(unsafe.Pointer(&v.buf[row*size]))
	v.used -= size
}

// Destroy runs the drop function (if any) over every remaining element and
// releases the backing buffer.
func (v *typeErasedVector) Destroy() {
	if v.layout.Drop != nil {
		for v.Pop() {
		}
	} else {
		v.used = 0
	}
	v.buf = nil
}

func copyBytes(dst, src unsafe.Pointer, n int) {
	if n == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

func swapBytes(a, b []byte) {
	tmp := make([]byte, len(a))
	copy(tmp, a)
	copy(a, b)
	copy(b, tmp)
}

// TEVSliceAs reinterprets v's live bytes as a []T, panicking if T's layout
// does not match the column's. The slice aliases the column's buffer; for
// an empty or Unit column it is a freshly allocated slice of zero values.
func TEVSliceAs[T any](v *typeErasedVector) []T {
	want := layoutOf[T]()
	if !sameShape(want, v.layout) {
		panic("archecs: column type mismatch in SliceAs")
	}
	n := v.Len()
	if n == 0 || v.layout.Unit {
		return make([]T, n)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v.buf[0])), n)
}
