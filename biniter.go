package archecs

import "math/bits"

// wordTransform maps one stream's raw word before it takes part in the
// AND. identityTransform passes a "has this component" bitset through
// unchanged; complementTransform turns it into "lacks this component"
// without allocating a materialized negation.
type wordTransform func(uint64) uint64

func identityTransform(w uint64) uint64 { return w }
func complementTransform(w uint64) uint64 { return ^w }

// BitsetIntersection lazily walks the word-synchronized AND of N bit
// streams, each passed through its own transform before the AND, up to a
// hard bit-length cap. It is one-shot and stateful: positions come out in
// ascending order and each is visited exactly once.
type BitsetIntersection struct {
	streams    [][]uint64
	transforms []wordTransform
	bitLen     int

	wordIdx  int
	basePos  int
	curWord  uint64
	haveWord bool
	done     bool
}

// NewBitsetIntersection builds an iterator over streams, each paired
// positionally with a transform, capped at bitLen bits. Zero streams or a
// non-positive cap yield an iterator that is immediately exhausted.
func NewBitsetIntersection(streams [][]uint64, transforms []wordTransform, bitLen int) *BitsetIntersection {
	it := &BitsetIntersection{streams: streams, transforms: transforms, bitLen: bitLen}
	if len(streams) == 0 || bitLen <= 0 {
		it.done = true
	}
	return it
}

// Next returns the next ascending bit position present in every
// transformed stream, or false once any stream is exhausted or the cap is
// reached.
func (it *BitsetIntersection) Next() (int, bool) {
	for {
		if it.done {
			return 0, false
		}
		if it.haveWord {
			if it.curWord != 0 {
				tz := bits.TrailingZeros64(it.curWord)
				pos := it.basePos + tz
				it.curWord &= it.curWord - 1
				if pos >= it.bitLen {
					it.done = true
					return 0, false
				}
				return pos, true
			}
			it.haveWord = false
		}
		if it.wordIdx*64 >= it.bitLen {
			it.done = true
			return 0, false
		}
		and := ^uint64(0)
		for i, s := range it.streams {
			if it.wordIdx >= len(s) {
				it.done = true
				return 0, false
			}
			and &= it.transforms[i](s[it.wordIdx])
		}
		it.basePos = it.wordIdx * 64
		it.wordIdx++
		it.curWord = and
		it.haveWord = true
	}
}
