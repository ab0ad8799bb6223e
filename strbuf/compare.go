package strbuf

import (
	"bytes"
	"sort"
)

// Compare returns -1, 0, or 1 ordering a and b lexicographically by
// payload bytes.
func Compare(a, b *Buffer) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Equal reports whether a and b hold identical payloads. The length check
// is O(1); only equal-length payloads are compared byte-wise.
func Equal(a, b *Buffer) bool {
	if a.Len() != b.Len() {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Sort orders bufs lexicographically in place. The ordering function is
// the package's own byte comparison; the sorting itself is delegated to
// the standard comparator sort.
func Sort(bufs []*Buffer) {
	sort.Slice(bufs, func(i, j int) bool {
		return Compare(bufs[i], bufs[j]) < 0
	})
}
