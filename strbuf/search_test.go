package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	b := FromString("abcdefghijkl")

	tests := []struct {
		needle string
		want   int
	}{
		{"abc", 0},
		{"def", 3},
		{"jkl", 9},
		{"l", 11},
		{"abcdefghijkl", 0},
		{"xyz", -1},
		{"abcdefghijklm", -1},
		{"", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.IndexOfString(tt.needle), "needle %q", tt.needle)
		assert.Equal(t, tt.want, b.IndexOf([]byte(tt.needle)), "needle %q", tt.needle)
	}
}

func TestIndexOfEmptyBuffer(t *testing.T) {
	b := New(8)
	assert.Equal(t, -1, b.IndexOfString("a"))
}

func TestScanRight(t *testing.T) {
	b := FromString("a.b.c")

	assert.Equal(t, 1, b.ScanRight('.', 0))
	assert.Equal(t, 1, b.ScanRight('.', 1))
	assert.Equal(t, 3, b.ScanRight('.', 2))
	assert.Equal(t, -1, b.ScanRight('.', 4))
	assert.Equal(t, -1, b.ScanRight('x', 0))

	// Out-of-range starting points clamp.
	assert.Equal(t, 1, b.ScanRight('.', -5))
	assert.Equal(t, -1, b.ScanRight('.', 99))
}

func TestScanLeft(t *testing.T) {
	b := FromString("a.b.c")

	assert.Equal(t, 3, b.ScanLeft('.', 4))
	assert.Equal(t, 3, b.ScanLeft('.', 3))
	assert.Equal(t, 1, b.ScanLeft('.', 2))
	assert.Equal(t, -1, b.ScanLeft('.', 0))
	assert.Equal(t, -1, b.ScanLeft('x', 4))

	// Out-of-range starting points clamp into the payload: past the end
	// to the last byte, negative to the first.
	assert.Equal(t, 3, b.ScanLeft('.', 99))
	assert.Equal(t, -1, b.ScanLeft('.', -1))
	assert.Equal(t, 0, b.ScanLeft('a', -1))
	assert.Equal(t, 0, b.ScanLeft('a', -99))
}

func TestScanEmptyBuffer(t *testing.T) {
	b := New(1)
	assert.Equal(t, -1, b.ScanRight('a', 0))
	assert.Equal(t, -1, b.ScanLeft('a', 0))
}
