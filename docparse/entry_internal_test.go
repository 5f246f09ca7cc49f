package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBracket(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		expr      string
		wantOuter string
		wantInner string
	}{
		"bare identifier":  {expr: "int", wantOuter: "int"},
		"bracketed":        {expr: "list[int]", wantOuter: "list", wantInner: "int"},
		"spaced brackets":  {expr: "list[ int ]", wantOuter: "list", wantInner: "int"},
		"trailing space":   {expr: "list[int] ", wantOuter: "list", wantInner: "int"},
		"unsplittable":     {expr: "a b", wantOuter: "a b"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			outer, inner := splitBracket(tc.expr)
			assert.Equal(t, tc.wantOuter, outer)
			assert.Equal(t, tc.wantInner, inner)
		})
	}
}

func TestParseEntry(t *testing.T) {
	t.Parallel()

	name, spec, err := parseEntry("count (int): how many.", nil)
	require.NoError(t, err)

	assert.Equal(t, "count", name)
	assert.Equal(t, ArgSpec{Help: "how many.", Kind: KindInt}, spec)
}

func TestParseEntryHelpKeepsColons(t *testing.T) {
	t.Parallel()

	name, spec, err := parseEntry("addr: host:port to dial.", nil)
	require.NoError(t, err)

	assert.Equal(t, "addr", name)
	assert.Equal(t, "host:port to dial.", spec.Help)
}

func TestStartsWithSpace(t *testing.T) {
	t.Parallel()

	assert.False(t, startsWithSpace("x: entry"))
	assert.False(t, startsWithSpace(""))
	assert.True(t, startsWithSpace(" continuation"))
	assert.True(t, startsWithSpace("\tcontinuation"))
}
