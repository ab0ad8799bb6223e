package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocate(t *testing.T) {
	a := Heap()

	mem, err := a.Allocate(16)
	require.NoError(t, err)
	require.Len(t, mem, 16)
	for i, c := range mem {
		assert.Zero(t, c, "byte %d should be zero", i)
	}

	_, err = a.Allocate(-1)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestHeapReallocatePreservesContent(t *testing.T) {
	a := Heap()

	mem, err := a.Allocate(4)
	require.NoError(t, err)
	copy(mem, "abcd")

	mem, err = a.Reallocate(mem, 8)
	require.NoError(t, err)
	require.Len(t, mem, 8)
	assert.Equal(t, "abcd", string(mem[:4]))
	for i := 4; i < 8; i++ {
		assert.Zero(t, mem[i], "grown byte %d should be zero", i)
	}

	mem, err = a.Reallocate(mem, 2)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(mem))
}

func TestHeapReallocateNil(t *testing.T) {
	a := Heap()

	mem, err := a.Reallocate(nil, 8)
	require.NoError(t, err)
	assert.Len(t, mem, 8)
}
