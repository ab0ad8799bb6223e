package strbuf

import "bytes"

// IndexOf returns the offset of the first occurrence of needle in the
// payload, or -1 when absent. An empty needle is defined as not found,
// unlike bytes.Index; segmentation relies on that sentinel.
func (b *Buffer) IndexOf(needle []byte) int {
	if len(needle) == 0 {
		return -1
	}
	return bytes.Index(b.Bytes(), needle)
}

// IndexOfString is IndexOf for a string needle.
func (b *Buffer) IndexOfString(needle string) int {
	if len(needle) == 0 {
		return -1
	}
	return bytes.Index(b.Bytes(), []byte(needle))
}

// ScanRight returns the offset of the first occurrence of c at or after
// from, or -1 when the end is reached first. from clamps into [0, Len].
func (b *Buffer) ScanRight(c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= b.length {
		return -1
	}
	i := bytes.IndexByte(b.data[from:b.length], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// ScanLeft returns the offset of the first occurrence of c at or before
// from, scanning toward the start, or -1 when the start is reached first.
// from clamps into [0, Len-1], so a negative from still checks the first
// byte.
func (b *Buffer) ScanLeft(c byte, from int) int {
	if b.length == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	if from >= b.length {
		from = b.length - 1
	}
	return bytes.LastIndexByte(b.data[:from+1], c)
}

// indexFrom is IndexOf over an arbitrary window, with the same empty-needle
// sentinel. Used by segmentation, which searches past bytes the split has
// already nulled.
func indexFrom(window, needle []byte) int {
	if len(needle) == 0 {
		return -1
	}
	return bytes.Index(window, needle)
}
