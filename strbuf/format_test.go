package strbuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickfScenario(t *testing.T) {
	b := New(1)
	require.NoError(t, b.Quickf("[%s/%i/%u]", "hi", -3, uint(42)))
	assert.Equal(t, "[hi/-3/42]", b.String())
	assert.Equal(t, 10, b.Len())
	requireSound(t, b)
}

func TestQuickfDirectives(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{"literal only", "plain text", nil, "plain text"},
		{"string", "__%s_", []any{"text1"}, "__text1_"},
		{"byte slice", "<%s>", []any{[]byte("ab")}, "<ab>"},
		{"buffer", "<%S>", []any{FromString("buf")}, "<buf>"},
		{"int32 negative", "%i", []any{int32(-7)}, "-7"},
		{"int", "%i", []any{-7}, "-7"},
		{"int64", "%I", []any{int64(math.MinInt64)}, "-9223372036854775808"},
		{"uint32", "%u", []any{uint32(9)}, "9"},
		{"uint", "%u", []any{uint(0)}, "0"},
		{"uint64", "%U", []any{uint64(math.MaxUint64)}, "18446744073709551615"},
		{"char", "a%cc", []any{byte('b')}, "abc"},
		{"percent escape", "100%%", nil, "100%"},
		{"unknown passes through", "%q%w", nil, "qw"},
		{"trailing percent", "x%", nil, "x%"},
		{"mixed", "%s=%i (%u of %U)", []any{"n", 5, uint(1), uint64(2)}, "n=5 (1 of 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(1)
			require.NoError(t, b.Quickf(tt.template, tt.args...))
			assert.Equal(t, tt.expected, b.String())
			assert.Equal(t, len(tt.expected), b.Len())
			requireSound(t, b)
		})
	}
}

func TestQuickfAppendsToExistingContent(t *testing.T) {
	b := FromString("head:")
	require.NoError(t, b.Quickf("%s+%i", "tail", 2))
	assert.Equal(t, "head:tail+2", b.String())
	requireSound(t, b)
}

func TestQuickfExactSizing(t *testing.T) {
	// The sizing pass must pre-compute the exact expansion, so the single
	// Ensure lands the reservation on length+1 with no slack.
	b := New(1)
	require.NoError(t, b.Quickf("%s-%i-%u", "ab", -7, uint(9)))
	assert.Equal(t, "ab--7-9", b.String())
	assert.Equal(t, b.Len()+1, b.Cap())
}

func TestQuickfBufferArgReadsDescriptorLength(t *testing.T) {
	// %S takes the length from the descriptor, so embedded zero bytes are
	// copied instead of stopping the copy.
	arg := FromString("ab")
	require.NoError(t, arg.PushByte(1, 0))
	require.Equal(t, 3, arg.Len())

	b := New(1)
	require.NoError(t, b.Quickf("<%S>", arg))
	assert.Equal(t, []byte{'<', 'a', 0, 'b', '>'}, b.Bytes())
}

func TestQuickfArgumentErrors(t *testing.T) {
	b := FromString("keep")

	err := b.Quickf("%i", "not an int")
	require.ErrorIs(t, err, ErrFormatArg)
	assert.Equal(t, "keep", b.String(), "failed format must not mutate")

	err = b.Quickf("%s %s", "only one")
	require.ErrorIs(t, err, ErrFormatArg)
	assert.Equal(t, "keep", b.String())

	// Extra arguments are ignored.
	require.NoError(t, b.Quickf("!%c", byte('x'), "spare"))
	assert.Equal(t, "keep!x", b.String())
}

func TestQuickfOnFixedBufferWithoutRoom(t *testing.T) {
	b := Use(make([]byte, 4))
	require.NoError(t, b.SetString("abc"))
	err := b.Quickf("%s", "more")
	require.ErrorIs(t, err, ErrFixedCapacity)
	assert.Equal(t, "abc", b.String())
}

func TestAppendf(t *testing.T) {
	b := FromString("text1")
	require.NoError(t, b.Appendf("__%s_", "text1"))
	assert.Equal(t, "text1__text1_", b.String())
	assert.Equal(t, 13, b.Len())
	requireSound(t, b)

	b.Clear()
	require.NoError(t, b.Appendf("%05.2f", 3.14159))
	assert.Equal(t, "03.14", b.String())
}

func TestParseQuickLiteralRuns(t *testing.T) {
	segs := parseQuick("ab%sc%%d")
	require.Len(t, segs, 5)
	assert.Equal(t, "ab", segs[0].lit)
	assert.Equal(t, quickStr, segs[1].verb)
	assert.Equal(t, "c", segs[2].lit)
	assert.Equal(t, "%", segs[3].lit)
	assert.Equal(t, "d", segs[4].lit)
}
