// Package strbuf implements a growable, length-tracked byte-string buffer
// that stays binary-compatible with NUL-terminated C-style strings.
//
// # Overview
//
// A Buffer owns one contiguous allocation holding its payload plus a
// trailing zero byte, so the CString view can be handed to any consumer
// that expects a C string while Len and Cap remain O(1). Every mutation is
// expressed the same way: ensure capacity, move one contiguous block,
// update length, re-terminate.
//
// # Key operations
//
//   - Capacity: Ensure, ShrinkToFit (exact-size reallocation, no growth factor)
//   - Splice: Insert, Append, PushByte, PopByte, TruncateTo, Trim,
//     SelectRange, FillByte, FillPattern
//   - Formatting: Quickf (two-pass exact-size template expansion) and
//     Appendf (host fmt formatting)
//   - Segmentation: SplitByte, SplitSeq, Join, Tokenize, ReplaceByte,
//     ReplaceAll
//   - Search: IndexOf, ScanLeft, ScanRight
//
// # Indexing
//
// Splice positions are signed: -1 addresses the last byte, -2 the one
// before it, and positive positions saturate at the current length. For a
// buffer of length 4 the valid positions are:
//
//	Bytes:     a  b  c  d  \0
//	Positive:  0  1  2  3  4
//	Negative: -4 -3 -2 -1
//
// Out-of-range positions clamp to a boundary rather than failing, so a
// sloppy index edits at the start or end of the payload instead of
// corrupting memory.
//
// # Capacity accounting
//
// Cap reports the reservation in bytes including the terminator slot, and
// Cap >= Len+1 holds after every operation. Growth happens only through
// Ensure with a caller-computed exact size; nothing grows speculatively.
//
// # Storage
//
// Buffers draw storage from an alloc.Allocator. The default is the Go
// heap. A buffer adopting caller-owned storage via Use is fixed: it never
// relocates, and operations needing growth fail with ErrFixedCapacity.
//
// Buffers are not safe for concurrent mutation; growth relocates the
// backing storage, so a concurrent reader can observe a stale view.
package strbuf
