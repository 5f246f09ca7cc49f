package docargs

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"go.ewatkins.dev/docargs/docparse"
)

// Handler implements one subcommand. It receives the parsed flags and
// positionals of its command; its error return propagates out of
// [Parser.ParseAndRun].
type Handler func(ctx context.Context, args Values) error

// CommandOption configures a subcommand added by [Parser.AddCommand].
type CommandOption func(*commandConfig)

type commandConfig struct {
	name        string
	help        string
	description string
	defaults    map[string]any
}

// WithCommandName sets the subcommand name, overriding the handler
// function's own name.
func WithCommandName(name string) CommandOption {
	return func(c *commandConfig) {
		c.name = name
	}
}

// WithHelp sets the subcommand's one-line help, overriding the doc
// comment's headline.
func WithHelp(help string) CommandOption {
	return func(c *commandConfig) {
		c.help = help
	}
}

// WithCommandDescription sets the subcommand's long description,
// overriding the one derived from the doc comment.
func WithCommandDescription(desc string) CommandOption {
	return func(c *commandConfig) {
		c.description = desc
	}
}

// WithDefaults supplies the handler's default values, keyed by documented
// argument name. This is the companion structure standing in for parameter
// defaults, which Go functions do not expose at runtime; it feeds both the
// registered flag defaults and type inference for unannotated entries.
func WithDefaults(defaults map[string]any) CommandOption {
	return func(c *commandConfig) {
		c.defaults = defaults
	}
}

// AddCommand registers handler as a subcommand. The doc comment is
// required: its headline becomes the subcommand's help, its description
// the long help, and its Args section the metadata pool for
// [Parser.AddArgument] and [Parser.AddArgumentsAuto] on the returned child
// parser. The subcommand name defaults to the handler function's name.
func (p *Parser) AddCommand(handler Handler, doc string, opts ...CommandOption) (*Parser, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	if strings.TrimSpace(doc) == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingDoc, funcName(handler))
	}

	var cfg commandConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	name := cfg.name
	if name == "" {
		name = funcName(handler)
	}

	parsed, err := docparse.ParseWithDefaults(doc, cfg.defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	child := &Parser{
		cmd: &cobra.Command{
			Use:   name,
			Short: parsed.Headline,
			Long:  parsed.Description,
		},
		doc:        parsed,
		registered: map[string]registration{},
	}

	if cfg.help != "" {
		child.cmd.Short = cfg.help
	}

	if cfg.description != "" {
		child.cmd.Long = cfg.description
	}

	// The handler rides on the subcommand itself, so parsing selects it.
	child.cmd.RunE = func(cmd *cobra.Command, args []string) error {
		vals, err := child.collect(args)
		if err != nil {
			return err
		}

		return handler(cmd.Context(), vals)
	}

	p.cmd.AddCommand(child.cmd)

	return child, nil
}

// collect gathers every registered flag and positional into a [Values]
// map for dispatch.
func (p *Parser) collect(args []string) (Values, error) {
	vals := make(Values, len(p.registered)+len(p.positionals))
	fs := p.cmd.Flags()

	for name, reg := range p.registered {
		var (
			v   any
			err error
		)

		if reg.nargs == docparse.NArgsOneOrMore {
			switch reg.kind {
			case docparse.KindInt:
				v, err = fs.GetIntSlice(name)
			case docparse.KindFloat:
				v, err = fs.GetFloat64Slice(name)
			case docparse.KindBool:
				v, err = fs.GetBoolSlice(name)
			default:
				v, err = fs.GetStringSlice(name)
			}
		} else {
			switch reg.kind {
			case docparse.KindInt:
				v, err = fs.GetInt(name)
			case docparse.KindFloat:
				v, err = fs.GetFloat64(name)
			case docparse.KindBool:
				v, err = fs.GetBool(name)
			default:
				v, err = fs.GetString(name)
			}
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		vals[name] = v
	}

	err := p.collectPositionals(args, vals)
	if err != nil {
		return nil, err
	}

	return vals, nil
}

// collectPositionals zips cobra's trailing args with the expected
// positionals in documentation order, converting each per its kind. A
// one-or-more positional takes the remainder.
func (p *Parser) collectPositionals(args []string, vals Values) error {
	for i, pos := range p.positionals {
		if i >= len(args) {
			break
		}

		if pos.variadic {
			rest, err := convertPositionals(pos, args[i:])
			if err != nil {
				return err
			}

			vals[pos.name] = rest

			break
		}

		v, err := convertPositional(pos, args[i])
		if err != nil {
			return err
		}

		vals[pos.name] = v
	}

	return nil
}

// convertPositional converts one raw positional value per its kind.
func convertPositional(pos positional, raw string) (any, error) {
	switch pos.kind {
	case docparse.KindInt:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", pos.name, err)
		}

		return i, nil
	case docparse.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", pos.name, err)
		}

		return f, nil
	case docparse.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", pos.name, err)
		}

		return b, nil
	default:
		return raw, nil
	}
}

// convertPositionals converts the remainder of the command line for a
// one-or-more positional into a typed slice.
func convertPositionals(pos positional, raw []string) (any, error) {
	switch pos.kind {
	case docparse.KindInt:
		out := make([]int, len(raw))

		for i, r := range raw {
			v, err := convertPositional(pos, r)
			if err != nil {
				return nil, err
			}

			out[i], _ = v.(int)
		}

		return out, nil
	case docparse.KindFloat:
		out := make([]float64, len(raw))

		for i, r := range raw {
			v, err := convertPositional(pos, r)
			if err != nil {
				return nil, err
			}

			out[i], _ = v.(float64)
		}

		return out, nil
	case docparse.KindBool:
		out := make([]bool, len(raw))

		for i, r := range raw {
			v, err := convertPositional(pos, r)
			if err != nil {
				return nil, err
			}

			out[i], _ = v.(bool)
		}

		return out, nil
	default:
		out := make([]string, len(raw))
		copy(out, raw)

		return out, nil
	}
}

// funcName recovers a handler function's declared name, the Go rendering
// of taking the subcommand name from the function itself.
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "unknown"
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	// Method values carry a -fm suffix.
	return strings.TrimSuffix(name, "-fm")
}
