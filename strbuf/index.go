package strbuf

// normIndex converts a signed position into an offset in [0, Len]. Negative
// positions count back from the end (-1 is the last byte); positions past
// either boundary clamp to it. Normalization depends on the current length,
// so it is recomputed before every structural edit and never cached across
// one.
func (b *Buffer) normIndex(idx int) int {
	if idx < 0 {
		idx += b.length
		if idx < 0 {
			return 0
		}
		return idx
	}
	if idx > b.length {
		return b.length
	}
	return idx
}

// InvertIndex maps a positive position to the equivalent negative one and
// vice versa, without changing the logical position.
func (b *Buffer) InvertIndex(pos int) int {
	if pos > 0 {
		return -(b.length - pos)
	}
	return b.length + pos
}
