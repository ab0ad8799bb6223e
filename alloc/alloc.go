package alloc

// Allocator is the malloc/free/realloc triple a Buffer draws its backing
// storage from. Implementations must behave like standard heap allocation:
// Reallocate preserves min(len(mem), size) bytes of content and may return
// a block at a different address.
type Allocator interface {
	// Allocate returns a zeroed block of exactly size bytes.
	Allocate(size int) ([]byte, error)

	// Release returns a block obtained from this allocator. Passing a block
	// from another allocator is undefined.
	Release(mem []byte)

	// Reallocate resizes mem to exactly size bytes. mem may be nil, in which
	// case Reallocate behaves like Allocate.
	Reallocate(mem []byte, size int) ([]byte, error)
}

// heap is the default allocator: plain garbage-collected slices.
type heap struct{}

// Heap returns the default allocator backed by the Go runtime heap.
func Heap() Allocator { return heap{} }

func (heap) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	return make([]byte, size), nil
}

func (heap) Release([]byte) {}

func (heap) Reallocate(mem []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if size <= cap(mem) {
		// Grow or shrink within the existing array, like realloc reusing
		// the allocation when the block already has room.
		old := len(mem)
		mem = mem[:size]
		for i := old; i < size; i++ {
			mem[i] = 0
		}
		return mem, nil
	}
	next := make([]byte, size)
	copy(next, mem)
	return next, nil
}
