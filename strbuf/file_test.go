package strbuf

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")

	out := FromString("first line\nsecond line\n")
	require.NoError(t, out.WriteFile(path))

	in, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.String(), in.String())
	assert.Equal(t, out.Len()+1, in.Cap())
	requireSound(t, in)
}

func TestFileRoundTripSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")

	out := FromBytes([]byte{0x00, 0xff, 0x7f, 0x00})
	require.NoError(t, out.WriteFileSync(path))

	in, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.Bytes(), in.Bytes())
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, New(1).WriteFile(path))

	in, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, in.Len())
	requireSound(t, in)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
