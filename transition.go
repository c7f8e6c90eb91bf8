package archecs

import "github.com/kamstrup/intmap"

// transitionCacheSize is the width of the small MRU array consulted before
// falling back to the hash map. Kept small deliberately — the point is to
// catch the handful of hot add/remove edges a typical archetype graph
// churns through, not to cache every transition ever seen.
const transitionCacheSize = 8

type transitionEntry struct {
	key     ComponentID
	archIdx int
}

// transitionCache resolves "add/remove this component id" to a
// destination archetype index. It first scans a small fixed array in MRU
// order; on a miss there it falls back to a hash map, and any hit found
// there is promoted back into the small array, evicting the oldest entry
// if the array is full.
type transitionCache struct {
	entries  [transitionCacheSize]transitionEntry
	valid    [transitionCacheSize]bool
	fallback *intmap.Map[uint64, int]
}

func newTransitionCache() *transitionCache {
	return &transitionCache{fallback: intmap.New[uint64, int](16)}
}

// Lookup returns the cached destination archetype index for id, if known.
func (c *transitionCache) Lookup(id ComponentID) (int, bool) {
	for i := range c.entries {
		if c.valid[i] && c.entries[i].key == id {
			return c.entries[i].archIdx, true
		}
	}
	if idx, ok := c.fallback.Get(uint64(id)); ok {
		c.promote(id, idx)
		return idx, true
	}
	return 0, false
}

// Insert records that id transitions to archIdx, in both the hash map and
// the front of the small array.
func (c *transitionCache) Insert(id ComponentID, archIdx int) {
	c.fallback.Put(uint64(id), archIdx)
	c.promote(id, archIdx)
}

func (c *transitionCache) promote(id ComponentID, archIdx int) {
	for i := len(c.entries) - 1; i > 0; i-- {
		c.entries[i] = c.entries[i-1]
		c.valid[i] = c.valid[i-1]
	}
	c.entries[0] = transitionEntry{key: id, archIdx: archIdx}
	c.valid[0] = true
}
