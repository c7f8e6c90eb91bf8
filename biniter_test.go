package archecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(it *BitsetIntersection) []int {
	var out []int
	for {
		pos, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
	}
}

func TestBitsetIntersection_SingleStreamIdentity(t *testing.T) {
	it := NewBitsetIntersection([][]uint64{{0b1011}}, []wordTransform{identityTransform}, 4)
	require.Equal(t, []int{0, 1, 3}, drain(it))
}

func TestBitsetIntersection_TwoStreamsAnd(t *testing.T) {
	a := []uint64{0b1110}
	b := []uint64{0b1011}
	it := NewBitsetIntersection([][]uint64{a, b}, []wordTransform{identityTransform, identityTransform}, 4)
	require.Equal(t, []int{1, 3}, drain(it))
}

func TestBitsetIntersection_ComplementTransform(t *testing.T) {
	a := []uint64{0b0101}
	it := NewBitsetIntersection([][]uint64{a}, []wordTransform{complementTransform}, 4)
	require.Equal(t, []int{1, 3}, drain(it))
}

func TestBitsetIntersection_RespectsCap(t *testing.T) {
	a := []uint64{^uint64(0)}
	it := NewBitsetIntersection([][]uint64{a}, []wordTransform{identityTransform}, 3)
	require.Equal(t, []int{0, 1, 2}, drain(it))
}

func TestBitsetIntersection_TerminatesOnShortStream(t *testing.T) {
	a := []uint64{^uint64(0), ^uint64(0)}
	b := []uint64{^uint64(0)}
	it := NewBitsetIntersection([][]uint64{a, b}, []wordTransform{identityTransform, identityTransform}, 200)
	require.Equal(t, 64, len(drain(it)))
}

func TestBitsetIntersection_ZeroStreamsIsEmpty(t *testing.T) {
	it := NewBitsetIntersection(nil, nil, 64)
	require.Empty(t, drain(it))
}

func TestBitsetIntersection_ZeroCapIsEmpty(t *testing.T) {
	a := []uint64{^uint64(0)}
	it := NewBitsetIntersection([][]uint64{a}, []wordTransform{identityTransform}, 0)
	require.Empty(t, drain(it))
}
