package strbuf

import "bytes"

// Segmentation: splitting writes terminators over separators so each
// segment doubles as a C string inside the buffer's own storage. Callers
// that need the original content intact either duplicate first or repair
// afterwards with ReplaceByte.

// CountSplitByte returns how many segments splitting on sep would produce,
// without mutating the buffer. A payload with no separators is one
// segment; a trailing separator adds a trailing empty segment.
func (b *Buffer) CountSplitByte(sep byte) int {
	return bytes.Count(b.Bytes(), []byte{sep}) + 1
}

// SplitByte splits the payload on sep, overwriting every separator with a
// terminator, and returns the segments as views into the buffer's storage.
//
// When dst is nil the result is allocated exactly sized. Otherwise dst is
// reused: at most cap(dst) segments are recorded and dst[:n] is returned,
// while the payload is still fully split. Use CountSplitByte for the total.
func (b *Buffer) SplitByte(sep byte, dst [][]byte) [][]byte {
	if dst == nil {
		dst = make([][]byte, 0, b.CountSplitByte(sep))
	} else {
		dst = dst[:0]
	}
	start := 0
	for i := 0; i < b.length; i++ {
		if b.data[i] == sep {
			b.data[i] = 0
			if len(dst) < cap(dst) {
				dst = append(dst, b.data[start:i])
			}
			start = i + 1
		}
	}
	if len(dst) < cap(dst) {
		dst = append(dst, b.data[start:b.length])
	}
	return dst
}

// CountSplitSeq is CountSplitByte for a multi-byte separator. Occurrences
// are counted left to right without overlap; an empty separator yields one
// segment.
func (b *Buffer) CountSplitSeq(sep []byte) int {
	if len(sep) == 0 {
		return 1
	}
	return bytes.Count(b.Bytes(), sep) + 1
}

// SplitSeq splits the payload on a multi-byte separator under the same
// contract as SplitByte. Only the first byte of each separator occurrence
// is overwritten, so every segment is terminated by a single zero byte;
// the remaining separator bytes sit between segments and belong to none.
func (b *Buffer) SplitSeq(sep []byte, dst [][]byte) [][]byte {
	if dst == nil {
		dst = make([][]byte, 0, b.CountSplitSeq(sep))
	} else {
		dst = dst[:0]
	}
	start := 0
	for {
		idx := indexFrom(b.data[start:b.length], sep)
		if idx < 0 {
			break
		}
		at := start + idx
		b.data[at] = 0
		if len(dst) < cap(dst) {
			dst = append(dst, b.data[start:at])
		}
		start = at + len(sep)
	}
	if len(dst) < cap(dst) {
		dst = append(dst, b.data[start:b.length])
	}
	return dst
}

// Join concatenates parts separated by glue into a new buffer with the
// minimal reservation.
func Join(parts [][]byte, glue []byte) *Buffer {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if len(parts) > 1 {
		total += (len(parts) - 1) * len(glue)
	}
	b := New(total + 1)
	w := 0
	for i, p := range parts {
		if i > 0 {
			w += copy(b.data[w:], glue)
		}
		w += copy(b.data[w:], p)
	}
	b.length = total
	b.data[b.length] = 0
	return b
}

// JoinStrings is Join for string parts.
func JoinStrings(parts []string, glue string) *Buffer {
	bp := make([][]byte, len(parts))
	for i, p := range parts {
		bp[i] = []byte(p)
	}
	return Join(bp, []byte(glue))
}

// Tokenizer iterates delimiter-separated tokens sharing the buffer's
// storage. Each Next call repairs the terminator the previous call wrote
// and nulls the first byte of the next delimiter occurrence, so after the
// final call the payload is fully restored. The buffer must not be mutated
// between calls.
type Tokenizer struct {
	b     *Buffer
	delim []byte

	// pos is the offset of the currently nulled byte; -1 before the first
	// call, Len once iteration has finished.
	pos int
}

// Tokenize returns a tokenizer over delim-separated tokens. A payload
// without any delimiter yields no tokens at all, matching the historical
// contract of the C tokenizer this mirrors.
func (b *Buffer) Tokenize(delim []byte) *Tokenizer {
	return &Tokenizer{b: b, delim: delim, pos: -1}
}

// Next returns the next token as a view into the buffer, or ok=false when
// the tokens are exhausted.
func (t *Tokenizer) Next() ([]byte, bool) {
	b := t.b
	switch {
	case t.pos < 0:
		idx := indexFrom(b.data[:b.length], t.delim)
		if idx < 0 {
			t.pos = b.length
			return nil, false
		}
		b.data[idx] = 0
		t.pos = idx
		return b.data[:idx], true

	case t.pos >= b.length:
		return nil, false

	default:
		b.data[t.pos] = t.delim[0]
		start := t.pos + len(t.delim)
		if start >= b.length {
			// The payload ended with a delimiter.
			t.pos = b.length
			return nil, false
		}
		idx := indexFrom(b.data[start:b.length], t.delim)
		if idx < 0 {
			t.pos = b.length
			return b.data[start:b.length], true
		}
		at := start + idx
		b.data[at] = 0
		t.pos = at
		return b.data[start:at], true
	}
}

// ReplaceByte rewrites every occurrence of the byte from to the byte to.
// It is the repair tool for destructive splits: ReplaceByte(0, sep)
// restores a payload that SplitByte nulled.
func (b *Buffer) ReplaceByte(from, to byte) {
	for i := 0; i < b.length; i++ {
		if b.data[i] == from {
			b.data[i] = to
		}
	}
}

// ReplaceAll rewrites every occurrence of the sequence from to the
// sequence to. When to is longer, the payload is grown once and the
// content shifted right so the rewrite can copy left-to-right without
// overrunning unread input; otherwise the rewrite compacts in place.
func (b *Buffer) ReplaceAll(from, to []byte) error {
	if len(from) == 0 || len(b.data) == 0 {
		return nil
	}

	r, w := 0, 0
	end := b.length
	if len(to) > len(from) {
		count := bytes.Count(b.Bytes(), from)
		if count == 0 {
			return nil
		}
		grow := count * (len(to) - len(from))
		nlen := b.length + grow
		if err := b.Ensure(nlen + 1); err != nil {
			return err
		}
		copy(b.data[grow:nlen+1], b.data[:b.length+1])
		r, end = grow, nlen
	}

	for {
		idx := indexFrom(b.data[r:end], from)
		if idx < 0 {
			w += copy(b.data[w:], b.data[r:end])
			break
		}
		w += copy(b.data[w:], b.data[r:r+idx])
		w += copy(b.data[w:], to)
		r += idx + len(from)
	}
	b.length = w
	b.data[w] = 0
	return nil
}
