package strbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireSound asserts the descriptor invariants that must hold after
// every public operation: the reservation covers payload plus terminator,
// and the terminator is in place.
func requireSound(t *testing.T, b *Buffer) {
	t.Helper()
	require.GreaterOrEqual(t, b.Cap(), b.Len()+1, "reservation must cover payload plus terminator")
	cs := b.CString()
	require.Len(t, cs, b.Len()+1)
	require.Zero(t, cs[b.Len()], "payload must be terminated")
}
