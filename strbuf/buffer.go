package strbuf

import (
	"fmt"
	"io"
	"math"

	"github.com/strkit/strkit/alloc"
)

// MaxCap is the largest reservation a buffer can hold. Lengths and
// capacities are bounded 32-bit quantities.
const MaxCap = math.MaxUint32

// minReserve is the smallest useful reservation: one terminator byte.
const minReserve = 1

// zeroCString is the terminator-only view returned by CString on a buffer
// with no storage. Read-only by contract.
var zeroCString = make([]byte, 1)

// Buffer is a growable byte string. The backing slice always holds the
// payload plus one trailing zero byte: len(data) == Cap() and
// data[length] == 0 after every operation.
//
// The zero value is an empty heap-backed buffer; the first growing
// operation allocates storage.
type Buffer struct {
	data   []byte
	length int
	fixed  bool
	mem    alloc.Allocator
}

// New returns a heap-backed buffer with the given reservation. Reservations
// below one byte are raised to one so the terminator always has a home;
// reservations beyond MaxCap yield nil.
func New(reserve int) *Buffer {
	// The heap allocator cannot fail once the size is clamped into range.
	b, _ := NewIn(alloc.Heap(), reserve)
	return b
}

// NewIn returns a buffer drawing storage from mem.
func NewIn(mem alloc.Allocator, reserve int) (*Buffer, error) {
	if reserve < minReserve {
		reserve = minReserve
	}
	if reserve > MaxCap {
		return nil, ErrTooLarge
	}
	data, err := mem.Allocate(reserve)
	if err != nil {
		return nil, fmt.Errorf("strbuf: new: %w", err)
	}
	data[0] = 0
	return &Buffer{data: data, mem: mem}, nil
}

// FromString returns a buffer holding s with the minimal reservation.
func FromString(s string) *Buffer {
	b := New(len(s) + 1)
	copy(b.data, s)
	b.length = len(s)
	b.data[b.length] = 0
	return b
}

// FromBytes returns a buffer holding a copy of p with the minimal
// reservation.
func FromBytes(p []byte) *Buffer {
	b := New(len(p) + 1)
	copy(b.data, p)
	b.length = len(p)
	b.data[b.length] = 0
	return b
}

// WithCapacity returns a buffer holding s with at least the given
// reservation. The reservation is raised when s needs more room.
func WithCapacity(s string, reserve int) *Buffer {
	if need := len(s) + 1; reserve < need {
		reserve = need
	}
	b := New(reserve)
	copy(b.data, s)
	b.length = len(s)
	b.data[b.length] = 0
	return b
}

// Use adopts caller-owned storage, for example a stack-backed array. The
// whole of storage becomes the reservation and the buffer starts empty.
// Adopted buffers never grow: operations needing more room fail with
// ErrFixedCapacity. Use returns nil when storage cannot hold even the
// terminator.
func Use(storage []byte) *Buffer {
	if len(storage) < minReserve {
		return nil
	}
	storage[0] = 0
	return &Buffer{data: storage, fixed: true}
}

// Len returns the payload length, excluding the terminator. O(1).
func (b *Buffer) Len() int { return b.length }

// Cap returns the reservation in bytes, including the terminator slot.
func (b *Buffer) Cap() int { return len(b.data) }

// Fixed reports whether the buffer adopted caller-owned storage and can
// therefore never grow.
func (b *Buffer) Fixed() bool { return b.fixed }

// Bytes returns the payload as a view into the buffer's storage. The view
// is invalidated by any mutation that grows or shifts the payload.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

// CString returns the payload including the trailing zero byte, usable
// anywhere a NUL-terminated byte string is expected. Consumers must not
// assume room beyond Len.
func (b *Buffer) CString() []byte {
	if len(b.data) == 0 {
		return zeroCString
	}
	return b.data[:b.length+1]
}

// String returns a copy of the payload.
func (b *Buffer) String() string { return string(b.data[:b.length]) }

// Last returns the final payload byte, or 0 when the buffer is empty.
func (b *Buffer) Last() byte {
	if b.length == 0 {
		return 0
	}
	return b.data[b.length-1]
}

// Clear resets the length to zero. The reservation is untouched.
func (b *Buffer) Clear() {
	b.length = 0
	if len(b.data) > 0 {
		b.data[0] = 0
	}
}

// Clone returns a heap-backed copy carrying the same reservation as b.
func (b *Buffer) Clone() *Buffer {
	n := New(b.Cap())
	copy(n.data, b.data[:b.length])
	n.length = b.length
	n.data[n.length] = 0
	return n
}

// CloneCompact returns a heap-backed copy with the minimal reservation.
func (b *Buffer) CloneCompact() *Buffer {
	return FromBytes(b.Bytes())
}

// Set replaces the payload with a copy of other's payload.
func (b *Buffer) Set(other *Buffer) error { return b.SetBytes(other.Bytes()) }

// SetBytes replaces the payload with a copy of p.
func (b *Buffer) SetBytes(p []byte) error {
	if err := b.Ensure(len(p) + 1); err != nil {
		return err
	}
	copy(b.data, p)
	b.length = len(p)
	b.data[b.length] = 0
	return nil
}

// SetString replaces the payload with s.
func (b *Buffer) SetString(s string) error {
	if err := b.Ensure(len(s) + 1); err != nil {
		return err
	}
	copy(b.data, s)
	b.length = len(s)
	b.data[b.length] = 0
	return nil
}

// Release returns the backing storage to the allocator and leaves the
// buffer empty and detached. A released buffer may be reused; the next
// growing operation allocates fresh storage.
func (b *Buffer) Release() {
	if b.data != nil && !b.fixed {
		b.allocator().Release(b.data)
	}
	b.data = nil
	b.length = 0
	b.fixed = false
}

// Dump writes the payload and the len/cap accounting to w, one diagnostic
// line each.
func (b *Buffer) Dump(w io.Writer) {
	fmt.Fprintf(w, "%s\n", b.Bytes())
	fmt.Fprintf(w, "  len: %d\n", b.Len())
	fmt.Fprintf(w, "  cap: %d\n", b.Cap())
}

// allocator returns the buffer's allocator, defaulting to the heap.
func (b *Buffer) allocator() alloc.Allocator {
	if b.mem == nil {
		return alloc.Heap()
	}
	return b.mem
}
