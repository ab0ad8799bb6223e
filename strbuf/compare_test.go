package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	a := FromString("abc")
	b := FromString("abd")

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a.Clone()))

	// Prefixes order before their extensions.
	assert.Equal(t, -1, Compare(FromString("ab"), a))
}

func TestCompareBinarySafe(t *testing.T) {
	// Content past an embedded zero still participates.
	a := FromBytes([]byte{'a', 0, 'b'})
	b := FromBytes([]byte{'a', 0, 'c'})
	assert.Equal(t, -1, Compare(a, b))
	assert.False(t, Equal(a, b))
	assert.True(t, Equal(a, a.Clone()))
}

func TestEqualLengthShortCircuit(t *testing.T) {
	assert.False(t, Equal(FromString("ab"), FromString("abc")))
	assert.True(t, Equal(New(4), New(64)))
}

func TestSort(t *testing.T) {
	bufs := []*Buffer{
		FromString("pear"),
		FromString("fig"),
		FromString("apple"),
		FromString("fig"),
		FromString(""),
	}
	Sort(bufs)

	got := make([]string, len(bufs))
	for i, b := range bufs {
		got[i] = b.String()
	}
	assert.Equal(t, []string{"", "apple", "fig", "fig", "pear"}, got)
}
