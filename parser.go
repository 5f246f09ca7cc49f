package docargs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"go.ewatkins.dev/docargs/docparse"
)

// AutoKind selects how [Parser.AddArgumentsAuto] registers documented
// arguments.
type AutoKind string

const (
	// Optional registers documented arguments as --name flags.
	Optional AutoKind = "optional"
	// Positional registers documented arguments as bare positionals, in
	// documentation order.
	Positional AutoKind = "positional"
)

// registration records the type and multiplicity a flag was registered
// with, so dispatch can read it back with the matching typed getter.
type registration struct {
	kind  docparse.Kind
	nargs docparse.NArgs
}

// positional is one expected positional argument, filled from cobra's
// trailing args at dispatch.
type positional struct {
	name     string
	kind     docparse.Kind
	variadic bool
}

// Parser wraps a [cobra.Command], deriving help text, descriptions,
// argument types, and defaults from doc comments at registration time.
// Each Parser owns the metadata of its own command only; parent and child
// parsers keep their own maps.
type Parser struct {
	cmd         *cobra.Command
	doc         *docparse.ParsedDoc
	registered  map[string]registration
	positionals []positional
}

// Option configures a [Parser] built by [New].
type Option func(*parserConfig)

type parserConfig struct {
	name        string
	doc         string
	description string
}

// WithName sets the program name. The default is the executable's base
// name.
func WithName(name string) Option {
	return func(c *parserConfig) {
		c.name = name
	}
}

// WithDoc supplies the program's doc comment. Its headline and description
// become the command's short and long help, and its Args section seeds the
// root parser's argument metadata.
func WithDoc(doc string) Option {
	return func(c *parserConfig) {
		c.doc = doc
	}
}

// WithDescription sets the program description explicitly, overriding the
// one derived from the doc comment.
func WithDescription(desc string) Option {
	return func(c *parserConfig) {
		c.description = desc
	}
}

// New creates a root [Parser].
func New(opts ...Option) (*Parser, error) {
	cfg := parserConfig{name: filepath.Base(os.Args[0])}

	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		cmd: &cobra.Command{
			Use:           cfg.name,
			SilenceErrors: true,
			SilenceUsage:  true,
		},
		registered: map[string]registration{},
	}

	if cfg.doc != "" {
		parsed, err := docparse.Parse(cfg.doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.name, err)
		}

		p.doc = parsed
		p.cmd.Short = parsed.Headline
		p.cmd.Long = parsed.Description
	}

	if cfg.description != "" {
		p.cmd.Long = cfg.description
	}

	return p, nil
}

// Command returns the underlying [cobra.Command], the escape hatch to
// everything the wrapped library offers directly.
func (p *Parser) Command() *cobra.Command {
	return p.cmd
}

// AddArgumentsAuto registers every documented argument not listed in
// exclude, as --name flags for [Optional] or bare positionals for
// [Positional]. Any other kind fails with [ErrInvalidKind].
func (p *Parser) AddArgumentsAuto(kind AutoKind, exclude ...string) error {
	var prefix string

	switch kind {
	case Optional:
		prefix = "--"
	case Positional:
		prefix = ""
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	if p.doc == nil {
		return nil
	}

	for _, name := range p.doc.Names {
		if slices.Contains(exclude, name) {
			continue
		}

		err := p.AddArgument(Argument{Flags: []string{prefix + name}})
		if err != nil {
			return err
		}
	}

	return nil
}

// addPositional records arg as an expected positional and tightens the
// command's argument-count validation. A one-or-more positional consumes
// the remaining command line and must come last.
func (p *Parser) addPositional(arg Argument) error {
	name := strings.TrimLeft(arg.Flags[0], "-")

	if n := len(p.positionals); n > 0 && p.positionals[n-1].variadic {
		return fmt.Errorf("%w: positional %q after a one-or-more positional",
			ErrInvalidArgument, name)
	}

	pos := positional{
		name:     name,
		kind:     arg.Kind,
		variadic: arg.NArgs == docparse.NArgsOneOrMore,
	}
	p.positionals = append(p.positionals, pos)

	if pos.variadic {
		p.cmd.Use += fmt.Sprintf(" <%s>...", pos.name)
		p.cmd.Args = cobra.MinimumNArgs(len(p.positionals))
	} else {
		p.cmd.Use += fmt.Sprintf(" <%s>", pos.name)
		p.cmd.Args = cobra.ExactArgs(len(p.positionals))
	}

	return nil
}

// ParseAndRun parses argv against the whole command tree, dispatches to
// the selected command's handler, and returns its error. Execution always
// starts from the root command, so argv includes subcommand names.
// Parse-time failures (unknown flags, conversion errors, missing required
// arguments) come from cobra/pflag unchanged.
func (p *Parser) ParseAndRun(ctx context.Context, argv []string) error {
	root := p.cmd.Root()
	root.SetArgs(argv)

	return root.ExecuteContext(ctx)
}
