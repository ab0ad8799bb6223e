// Package alloc provides the storage seam used by strbuf buffers.
//
// # Overview
//
// A strbuf.Buffer owns a single contiguous byte allocation. Where that
// allocation comes from is decided by an Allocator, which mirrors the
// classic malloc/free/realloc triple:
//
//   - Allocate(size): obtain a fresh block
//   - Release(mem): return a block
//   - Reallocate(mem, size): resize a block, possibly relocating it
//
// # Implementations
//
// Heap: the default. Blocks are ordinary garbage-collected slices;
// Release is a no-op and Reallocate grows in place when the slice has
// spare capacity.
//
// Arena: a bump allocator over a caller-owned region (a stack array, a
// pre-sized scratch slab). Allocation never touches the Go heap; when
// the region is exhausted, operations fail with ErrNoSpace instead of
// growing. Only the most recent block can be resized in place.
//
// # Usage Example
//
//	var scratch [4096]byte
//	a := alloc.NewArena(scratch[:])
//	b, err := strbuf.NewIn(a, 256)
//	if err != nil {
//	    return err
//	}
//	// b now lives entirely inside scratch.
package alloc
