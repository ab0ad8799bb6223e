// Package mmfile exposes a platform-specific helper for reading a whole
// file as one contiguous byte view: mmap on unix, a plain read elsewhere.
package mmfile
