package strbuf

// Splice operations. Every structural edit follows one pattern: ensure
// capacity, move a contiguous block, update length, re-terminate.

// Insert places p at the given signed position, shifting the tail right.
// Inserting at Len is a plain append. Inserting a view of b's own payload
// anywhere but the end is unspecified; use a copy.
func (b *Buffer) Insert(pos int, p []byte) error {
	if err := b.Ensure(b.length + len(p) + 1); err != nil {
		return err
	}
	at := b.normIndex(pos)
	copy(b.data[at+len(p):], b.data[at:b.length])
	copy(b.data[at:], p)
	b.length += len(p)
	b.data[b.length] = 0
	return nil
}

// InsertString is Insert for a string.
func (b *Buffer) InsertString(pos int, s string) error {
	if err := b.Ensure(b.length + len(s) + 1); err != nil {
		return err
	}
	at := b.normIndex(pos)
	copy(b.data[at+len(s):], b.data[at:b.length])
	copy(b.data[at:], s)
	b.length += len(s)
	b.data[b.length] = 0
	return nil
}

// InsertBuffer is Insert for another buffer's payload.
func (b *Buffer) InsertBuffer(pos int, other *Buffer) error {
	return b.Insert(pos, other.Bytes())
}

// Append adds p at the tail. Appending a buffer's own payload is safe.
func (b *Buffer) Append(p []byte) error {
	if err := b.Ensure(b.length + len(p) + 1); err != nil {
		return err
	}
	copy(b.data[b.length:], p)
	b.length += len(p)
	b.data[b.length] = 0
	return nil
}

// AppendString adds s at the tail.
func (b *Buffer) AppendString(s string) error {
	if err := b.Ensure(b.length + len(s) + 1); err != nil {
		return err
	}
	copy(b.data[b.length:], s)
	b.length += len(s)
	b.data[b.length] = 0
	return nil
}

// AppendBuffer adds other's payload at the tail. other may be b itself.
func (b *Buffer) AppendBuffer(other *Buffer) error {
	if other == b {
		// Self-append: capture the length, not the view, since Ensure may
		// relocate the storage the view points into.
		n := b.length
		if err := b.Ensure(2*n + 1); err != nil {
			return err
		}
		copy(b.data[n:], b.data[:n])
		b.length = 2 * n
		b.data[b.length] = 0
		return nil
	}
	return b.Append(other.Bytes())
}

// AppendByte adds one byte at the tail.
func (b *Buffer) AppendByte(c byte) error {
	if err := b.Ensure(b.length + 2); err != nil {
		return err
	}
	b.data[b.length] = c
	b.length++
	b.data[b.length] = 0
	return nil
}

// PushByte inserts one byte at the given signed position.
func (b *Buffer) PushByte(pos int, c byte) error {
	if err := b.Ensure(b.length + 2); err != nil {
		return err
	}
	at := b.normIndex(pos)
	if at != b.length {
		copy(b.data[at+1:], b.data[at:b.length])
	}
	b.data[at] = c
	b.length++
	b.data[b.length] = 0
	return nil
}

// PopByte removes the byte at the given signed position. Popping at Len is
// a no-op: there is nothing past the payload to remove.
func (b *Buffer) PopByte(pos int) {
	if len(b.data) == 0 {
		return
	}
	at := b.normIndex(pos)
	if at == b.length {
		return
	}
	copy(b.data[at:], b.data[at+1:b.length+1])
	b.length--
}

// TruncateTo cuts the payload at the given signed position.
func (b *Buffer) TruncateTo(pos int) {
	if len(b.data) == 0 {
		return
	}
	at := b.normIndex(pos)
	b.length = at
	b.data[at] = 0
}

// Trim removes count bytes from the tail, or -count bytes from the head
// when count is negative. Counts beyond the length clamp to emptying the
// buffer.
func (b *Buffer) Trim(count int) {
	if len(b.data) == 0 {
		return
	}
	if count >= 0 {
		if count > b.length {
			count = b.length
		}
		b.length -= count
		b.data[b.length] = 0
		return
	}
	n := -count
	if n > b.length {
		n = b.length
	}
	copy(b.data, b.data[n:b.length])
	b.length -= n
	b.data[b.length] = 0
}

// SelectRange keeps only the half-open range [a, b) of signed positions and
// shifts it to the start. Argument order does not matter; the bounds are
// normalized and reordered first. SelectRange(x, x) empties the buffer.
func (b *Buffer) SelectRange(lo, hi int) {
	if len(b.data) == 0 {
		return
	}
	an := b.normIndex(lo)
	bn := b.normIndex(hi)
	if bn < an {
		an, bn = bn, an
	}
	copy(b.data, b.data[an:bn])
	b.length = bn - an
	b.data[b.length] = 0
}

// FillByte appends count copies of c.
func (b *Buffer) FillByte(c byte, count int) error {
	if count < 0 {
		count = 0
	}
	if err := b.Ensure(b.length + count + 1); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		b.data[b.length+i] = c
	}
	b.length += count
	b.data[b.length] = 0
	return nil
}

// FillPattern appends count repetitions of p.
func (b *Buffer) FillPattern(p []byte, count int) error {
	if count < 0 {
		count = 0
	}
	if len(p) > 0 && count > (MaxCap-b.length)/len(p) {
		return ErrTooLarge
	}
	grow := count * len(p)
	if err := b.Ensure(b.length + grow + 1); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		copy(b.data[b.length+i*len(p):], p)
	}
	b.length += grow
	b.data[b.length] = 0
	return nil
}
