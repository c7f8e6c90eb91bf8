package archecs

// BitVector is a packed, auto-growing bit array backed by a slice of
// 64-bit words. It is the per-component presence bitset ARCH and WORLD
// key everything off: bit i set means "archetype i carries this
// component" (or, for the world's own presence vector, "archetype i
// exists").
type BitVector struct {
	words  []uint64
	length int
}

func (b *BitVector) ensureWords(bit int) {
	need := bit/64 + 1
	if len(b.words) >= need {
		return
	}
	b.words = extendSlice(b.words, need-len(b.words))
}

// Set assigns the bit at position i, growing the vector if i is beyond its
// current length.
func (b *BitVector) Set(i int, v bool) {
	if i < 0 {
		panic("archecs: negative bit position")
	}
	b.ensureWords(i)
	if i+1 > b.length {
		b.length = i + 1
	}
	word, bit := i/64, uint(i%64)
	if v {
		b.words[word] |= 1 << bit
	} else {
		b.words[word] &^= 1 << bit
	}
}

// Get returns the bit at position i and whether i is within the vector's
// current length.
func (b *BitVector) Get(i int) (bool, bool) {
	if i < 0 || i >= b.length {
		return false, false
	}
	word, bit := i/64, uint(i%64)
	return (b.words[word]>>bit)&1 != 0, true
}

// Push appends v as a new bit at the end of the vector.
func (b *BitVector) Push(v bool) {
	b.Set(b.length, v)
}

// Len returns the number of addressable bit positions.
func (b *BitVector) Len() int { return b.length }

// Words exposes the underlying word slice for the bitset intersection
// iterator; callers must treat it as read-only.
func (b *BitVector) Words() []uint64 { return b.words }

// BitVectorMap is an array of BitVectors addressed by a component id's
// dense index field. Unregistered indices simply read as "absent" rather
// than erroring.
type BitVectorMap struct {
	bvs []BitVector
}

func (m *BitVectorMap) ensure(i int) {
	for len(m.bvs) <= i {
		m.bvs = append(m.bvs, BitVector{})
	}
}

// Get returns the BitVector for id, if one has been created.
func (m *BitVectorMap) Get(id ComponentID) (*BitVector, bool) {
	idx := int(id.Index())
	if idx >= len(m.bvs) {
		return nil, false
	}
	return &m.bvs[idx], true
}

// Set assigns a bit within id's BitVector, creating it on first use.
func (m *BitVectorMap) Set(id ComponentID, pos int, v bool) {
	idx := int(id.Index())
	m.ensure(idx)
	m.bvs[idx].Set(pos, v)
}
