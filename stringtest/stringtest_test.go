package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ewatkins.dev/docargs/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"single string": {
			input: []string{"hello"},
			want:  "hello",
		},
		"three strings": {
			input: []string{"line1", "line2", "line3"},
			want:  "line1\nline2\nline3",
		},
		"with empty string": {
			input: []string{"a", "", "c"},
			want:  "a\n\nc",
		},
		"already contains newlines": {
			input: []string{"a\nb", "c"},
			want:  "a\nb\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.JoinLF(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoinBlank(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"single string": {
			input: []string{"Headline."},
			want:  "Headline.",
		},
		"headline and body": {
			input: []string{"Headline.", "Body paragraph."},
			want:  "Headline.\n\nBody paragraph.",
		},
		"multiline body": {
			input: []string{"Headline.", "line1\nline2"},
			want:  "Headline.\n\nline1\nline2",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.JoinBlank(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}
