package docparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ewatkins.dev/docargs/docparse"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", docparse.KindInt.String())
	assert.Equal(t, "float", docparse.KindFloat.String())
	assert.Equal(t, "str", docparse.KindString.String())
	assert.Equal(t, "bool", docparse.KindBool.String())
	assert.Empty(t, docparse.KindUnset.String())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input any
		want  docparse.Kind
	}{
		"int":        {input: 5, want: docparse.KindInt},
		"int64":      {input: int64(5), want: docparse.KindInt},
		"uint":       {input: uint(5), want: docparse.KindInt},
		"float64":    {input: 0.5, want: docparse.KindFloat},
		"float32":    {input: float32(0.5), want: docparse.KindFloat},
		"string":     {input: "s", want: docparse.KindString},
		"bool":       {input: true, want: docparse.KindBool},
		"nil":        {input: nil, want: docparse.KindUnset},
		"struct":     {input: struct{}{}, want: docparse.KindUnset},
		"map":        {input: map[string]int{}, want: docparse.KindUnset},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docparse.KindOf(tc.input))
		})
	}
}

func TestInferDefault(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     any
		wantKind  docparse.Kind
		wantNArgs docparse.NArgs
	}{
		"nil": {input: nil},
		"int": {
			input:    324,
			wantKind: docparse.KindInt,
		},
		"float": {
			input:    0.234,
			wantKind: docparse.KindFloat,
		},
		"string": {
			input:    "hello",
			wantKind: docparse.KindString,
		},
		"int slice": {
			input:     []int{1, 2, 3},
			wantKind:  docparse.KindInt,
			wantNArgs: docparse.NArgsOneOrMore,
		},
		"any slice with string head": {
			input:     []any{"a", "b"},
			wantKind:  docparse.KindString,
			wantNArgs: docparse.NArgsOneOrMore,
		},
		"empty slice": {
			input:     []float64{},
			wantNArgs: docparse.NArgsOneOrMore,
		},
		"map": {input: map[string]int{"a": 1}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			kind, nargs := docparse.InferDefault(tc.input)
			assert.Equal(t, tc.wantKind, kind)
			assert.Equal(t, tc.wantNArgs, nargs)
		})
	}
}
