package strbuf

import "fmt"

// Ensure grows the reservation to exactly reserve bytes when the current
// one is smaller. Callers pre-compute the size they need; there is no
// growth-factor policy. A failed growth leaves the buffer untouched.
func (b *Buffer) Ensure(reserve int) error {
	if reserve <= len(b.data) {
		return nil
	}
	if b.fixed {
		return ErrFixedCapacity
	}
	if reserve > MaxCap {
		return ErrTooLarge
	}
	data, err := b.allocator().Reallocate(b.data, reserve)
	if err != nil {
		return fmt.Errorf("strbuf: ensure %d: %w", reserve, err)
	}
	b.data = data
	return nil
}

// ShrinkToFit drops the reservation to Len()+1, the minimum that still
// holds the payload and its terminator. Calling it again is a no-op, as is
// calling it on a fixed buffer.
func (b *Buffer) ShrinkToFit() error {
	need := b.length + 1
	if b.fixed || len(b.data) <= need {
		return nil
	}
	data, err := b.allocator().Reallocate(b.data, need)
	if err != nil {
		return fmt.Errorf("strbuf: shrink to %d: %w", need, err)
	}
	b.data = data
	return nil
}
