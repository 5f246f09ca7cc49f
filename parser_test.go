package docargs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ewatkins.dev/docargs"
	"go.ewatkins.dev/docargs/docparse"
	"go.ewatkins.dev/docargs/stringtest"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts      []docargs.Option
		wantErr   error
		wantUse   string
		wantShort string
		wantLong  string
	}{
		"name only": {
			opts:    []docargs.Option{docargs.WithName("app")},
			wantUse: "app",
		},
		"doc supplies short and long": {
			opts: []docargs.Option{
				docargs.WithName("app"),
				docargs.WithDoc(stringtest.JoinLF(
					"Run the app.",
					"",
					"Longer explanation.",
				)),
			},
			wantUse:   "app",
			wantShort: "Run the app.",
			wantLong: stringtest.JoinBlank(
				"Run the app.",
				"Longer explanation.",
			),
		},
		"explicit description wins": {
			opts: []docargs.Option{
				docargs.WithName("app"),
				docargs.WithDoc("Run the app."),
				docargs.WithDescription("Override."),
			},
			wantUse:   "app",
			wantShort: "Run the app.",
			wantLong:  "Override.",
		},
		"empty doc fails": {
			opts: []docargs.Option{
				docargs.WithName("app"),
				docargs.WithDoc("   "),
			},
			wantErr: docparse.ErrEmptyDoc,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := docargs.New(tc.opts...)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)

			cmd := p.Command()
			assert.Equal(t, tc.wantUse, cmd.Use)
			assert.Equal(t, tc.wantShort, cmd.Short)
			assert.Equal(t, tc.wantLong, cmd.Long)
		})
	}
}

// newChild builds a subcommand parser whose doc comment documents one,
// two, and tags.
func newChild(t *testing.T, defaults map[string]any) *docargs.Parser {
	t.Helper()

	doc := stringtest.JoinLF(
		"Do arithmetic.",
		"",
		"Args:",
		"    one (int): first value.",
		"    two: second value.",
		"    tags (list[str]): labels to attach.",
	)

	p, err := docargs.New(docargs.WithName("app"))
	require.NoError(t, err)

	child, err := p.AddCommand(nop, doc,
		docargs.WithCommandName("calc"),
		docargs.WithDefaults(defaults),
	)
	require.NoError(t, err)

	return child
}

func TestAddArgumentMergesDocMetadata(t *testing.T) {
	t.Parallel()

	child := newChild(t, map[string]any{"two": 0.234})

	require.NoError(t, child.AddArgument(docargs.Argument{Flags: []string{"--one"}}))
	require.NoError(t, child.AddArgument(docargs.Argument{Flags: []string{"--two"}}))
	require.NoError(t, child.AddArgument(docargs.Argument{Flags: []string{"--tags"}}))

	fs := child.Command().Flags()

	one := fs.Lookup("one")
	require.NotNil(t, one)
	assert.Equal(t, "first value.", one.Usage)
	assert.Equal(t, "int", one.Value.Type())

	two := fs.Lookup("two")
	require.NotNil(t, two)
	assert.Equal(t, "second value.", two.Usage)
	assert.Equal(t, "float64", two.Value.Type())
	assert.Equal(t, "0.234", two.DefValue)

	tags := fs.Lookup("tags")
	require.NotNil(t, tags)
	assert.Equal(t, "stringSlice", tags.Value.Type())
}

func TestAddArgumentCallerValuesWin(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgument(docargs.Argument{
		Flags: []string{"--one"},
		Help:  "caller help.",
		Kind:  docparse.KindString,
	})
	require.NoError(t, err)

	one := child.Command().Flags().Lookup("one")
	require.NotNil(t, one)
	assert.Equal(t, "caller help.", one.Usage)
	assert.Equal(t, "string", one.Value.Type())
}

func TestAddArgumentUndocumentedName(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	require.NoError(t, child.AddArgument(docargs.Argument{Flags: []string{"--other"}}))

	other := child.Command().Flags().Lookup("other")
	require.NotNil(t, other)
	assert.Empty(t, other.Usage)
	assert.Equal(t, "string", other.Value.Type())
}

func TestAddArgumentShorthand(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgument(docargs.Argument{Flags: []string{"-o", "--one"}})
	require.NoError(t, err)

	one := child.Command().Flags().Lookup("one")
	require.NotNil(t, one)
	assert.Equal(t, "o", one.Shorthand)
	assert.Equal(t, "first value.", one.Usage)
}

func TestAddArgumentNoFlags(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgument(docargs.Argument{})
	assert.ErrorIs(t, err, docargs.ErrInvalidArgument)
}

func TestAddArgumentInvalidDefault(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgument(docargs.Argument{
		Flags:   []string{"--one"},
		Kind:    docparse.KindInt,
		Default: "not an int",
	})
	assert.ErrorIs(t, err, docargs.ErrInvalidDefault)
}

func TestAddArgumentRequired(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgument(docargs.Argument{
		Flags:    []string{"--one"},
		Required: true,
	})
	require.NoError(t, err)

	err = child.ParseAndRun(context.Background(), []string{"calc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestAddArgumentsAuto(t *testing.T) {
	t.Parallel()

	child := newChild(t, map[string]any{"one": 324})

	require.NoError(t, child.AddArgumentsAuto(docargs.Optional, "tags"))

	fs := child.Command().Flags()

	one := fs.Lookup("one")
	require.NotNil(t, one)
	assert.Equal(t, "324", one.DefValue)

	assert.NotNil(t, fs.Lookup("two"))
	assert.Nil(t, fs.Lookup("tags"))
}

func TestAddArgumentsAutoInvalidKind(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgumentsAuto(docargs.AutoKind("sideways"))
	assert.ErrorIs(t, err, docargs.ErrInvalidKind)
}

func TestAddArgumentsAutoWithoutDoc(t *testing.T) {
	t.Parallel()

	p, err := docargs.New(docargs.WithName("app"))
	require.NoError(t, err)

	assert.NoError(t, p.AddArgumentsAuto(docargs.Optional))
}

func TestAddPositionalAfterVariadic(t *testing.T) {
	t.Parallel()

	child := newChild(t, nil)

	err := child.AddArgument(docargs.Argument{
		Flags: []string{"tags"},
	})
	require.NoError(t, err)

	err = child.AddArgument(docargs.Argument{
		Flags: []string{"one"},
	})
	assert.ErrorIs(t, err, docargs.ErrInvalidArgument)
}
