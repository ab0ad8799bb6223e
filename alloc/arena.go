package alloc

// Arena is a bump-pointer allocator over a caller-owned region. It hands out
// sub-slices of the region in address order and never allocates from the Go
// heap, which makes it suitable for stack-backed or pre-sized scratch
// storage. When the region runs out, requests fail with ErrNoSpace.
//
// Key characteristics:
//   - O(1) allocation: pure bump pointer, no free lists
//   - Release reclaims space only for the most recent block
//   - Reallocate resizes the most recent block in place; older blocks
//     relocate within the region
//
// Arena is not safe for concurrent use.
type Arena struct {
	region []byte

	// off is the bump pointer: the region offset where the next
	// allocation starts.
	off int

	// last is the region offset of the most recent live allocation,
	// or -1 when there is none.
	last int
}

// NewArena returns an arena that allocates out of region. The arena does not
// retain any content already present in region.
func NewArena(region []byte) *Arena {
	return &Arena{region: region, last: -1}
}

// Remaining reports how many bytes are still available.
func (a *Arena) Remaining() int { return len(a.region) - a.off }

// Reset discards every allocation and makes the whole region available
// again. Blocks handed out earlier must no longer be used.
func (a *Arena) Reset() {
	a.off = 0
	a.last = -1
}

// Allocate returns a zeroed block of exactly size bytes from the region.
func (a *Arena) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if size > len(a.region)-a.off {
		return nil, ErrNoSpace
	}
	start := a.off
	a.off += size
	a.last = start
	block := a.region[start:a.off:a.off]
	for i := range block {
		block[i] = 0
	}
	return block, nil
}

// Release reclaims mem when it is the most recent allocation; older blocks
// stay occupied until Reset. This matches bump-allocator semantics where
// only LIFO frees can actually return space.
func (a *Arena) Release(mem []byte) {
	if a.isLast(mem) {
		a.off = a.last
		a.last = -1
	}
}

// Reallocate resizes mem. The most recent block grows or shrinks in place;
// any other block is relocated within the region, leaving its old space
// occupied.
func (a *Arena) Reallocate(mem []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if mem == nil {
		return a.Allocate(size)
	}
	if a.isLast(mem) {
		start := a.last
		if size > len(a.region)-start {
			return nil, ErrNoSpace
		}
		end := start + size
		block := a.region[start:end:end]
		for i := len(mem); i < size; i++ {
			block[i] = 0
		}
		a.off = end
		return block, nil
	}
	if size <= len(mem) {
		return mem[:size:size], nil
	}
	next, err := a.Allocate(size)
	if err != nil {
		return nil, err
	}
	copy(next, mem)
	return next, nil
}

// isLast reports whether mem is the block at offset a.last. Zero-length
// blocks are never considered resizable in place.
func (a *Arena) isLast(mem []byte) bool {
	if a.last < 0 || len(mem) == 0 || a.last >= len(a.region) {
		return false
	}
	return &mem[0] == &a.region[a.last]
}
