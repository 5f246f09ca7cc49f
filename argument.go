package docargs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/pflag"

	"go.ewatkins.dev/docargs/docparse"
)

// Argument describes one command-line argument to register. Flags holds
// the argument's spellings ("--count", "-c", or a bare name for
// positionals). Zero-valued fields are filled from the parser's stored
// doc-comment metadata when a flag's bare name matches a documented
// argument; fields the caller sets explicitly always win, and unset
// metadata never overwrites.
type Argument struct {
	Flags      []string
	Help       string
	Default    any
	Kind       docparse.Kind
	NArgs      docparse.NArgs
	Required   bool
	Positional bool
}

// AddArgument registers arg on the parser's command, merging in metadata
// parsed from the command's doc comment before delegating to pflag.
func (p *Parser) AddArgument(arg Argument) error {
	if len(arg.Flags) == 0 {
		return fmt.Errorf("%w: no flag names", ErrInvalidArgument)
	}

	p.mergeDocMetadata(&arg)

	// A caller-supplied default can still imply the type and multiplicity.
	if arg.Kind == docparse.KindUnset && arg.NArgs == docparse.NArgsUnset && arg.Default != nil {
		arg.Kind, arg.NArgs = docparse.InferDefault(arg.Default)
	}

	if arg.Positional || !strings.HasPrefix(arg.Flags[0], "-") {
		return p.addPositional(arg)
	}

	return p.addFlag(arg)
}

// mergeDocMetadata copies help, type, default, and multiplicity from the
// first documented argument matching one of arg's bare flag names.
func (p *Parser) mergeDocMetadata(arg *Argument) {
	if p.doc == nil {
		return
	}

	for _, flag := range arg.Flags {
		spec, ok := p.doc.Args[strings.TrimLeft(flag, "-")]
		if !ok {
			continue
		}

		if arg.Help == "" {
			arg.Help = spec.Help
		}

		if arg.Kind == docparse.KindUnset {
			arg.Kind = spec.Kind
		}

		if arg.Default == nil {
			arg.Default = spec.Default
		}

		if arg.NArgs == docparse.NArgsUnset {
			arg.NArgs = spec.NArgs
		}

		break
	}
}

// addFlag registers arg as a typed pflag flag.
func (p *Parser) addFlag(arg Argument) error {
	name, shorthand := flagNames(arg.Flags)
	if name == "" {
		return fmt.Errorf("%w: empty flag name", ErrInvalidArgument)
	}

	err := registerFlag(p.cmd.Flags(), name, shorthand, arg)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if arg.Required {
		err = p.cmd.MarkFlagRequired(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	p.registered[name] = registration{kind: arg.Kind, nargs: arg.NArgs}

	return nil
}

// registerFlag coerces the default to the argument's kind and registers
// the matching typed flag. Nothing is registered when coercion fails.
func registerFlag(fs *pflag.FlagSet, name, shorthand string, arg Argument) error {
	if arg.NArgs == docparse.NArgsOneOrMore {
		switch arg.Kind {
		case docparse.KindInt:
			def, err := toIntSlice(arg.Default)
			if err != nil {
				return err
			}

			fs.IntSliceP(name, shorthand, def, arg.Help)
		case docparse.KindFloat:
			def, err := toFloatSlice(arg.Default)
			if err != nil {
				return err
			}

			fs.Float64SliceP(name, shorthand, def, arg.Help)
		case docparse.KindBool:
			def, err := toBoolSlice(arg.Default)
			if err != nil {
				return err
			}

			fs.BoolSliceP(name, shorthand, def, arg.Help)
		default:
			def, err := toStringSlice(arg.Default)
			if err != nil {
				return err
			}

			fs.StringSliceP(name, shorthand, def, arg.Help)
		}

		return nil
	}

	switch arg.Kind {
	case docparse.KindInt:
		def, err := toInt(arg.Default)
		if err != nil {
			return err
		}

		fs.IntP(name, shorthand, def, arg.Help)
	case docparse.KindFloat:
		def, err := toFloat(arg.Default)
		if err != nil {
			return err
		}

		fs.Float64P(name, shorthand, def, arg.Help)
	case docparse.KindBool:
		def, err := toBool(arg.Default)
		if err != nil {
			return err
		}

		fs.BoolP(name, shorthand, def, arg.Help)
	default:
		def, err := toString(arg.Default)
		if err != nil {
			return err
		}

		fs.StringP(name, shorthand, def, arg.Help)
	}

	return nil
}

// flagNames derives the pflag long name and shorthand from the flag
// spellings. The first double-dash spelling wins the long name, falling
// back to the first spelling stripped of dashes; a single-dash single
// character spelling becomes the shorthand.
func flagNames(flags []string) (name, shorthand string) {
	for _, f := range flags {
		bare := strings.TrimLeft(f, "-")

		switch {
		case strings.HasPrefix(f, "--") && name == "":
			name = bare
		case strings.HasPrefix(f, "-") && len(bare) == 1 && shorthand == "":
			shorthand = bare
		}
	}

	if name == "" {
		name = strings.TrimLeft(flags[0], "-")
	}

	return name, shorthand
}

// Default value coercions. Defaults arrive as arbitrary values (from the
// companion defaults map or a decoded YAML file), so conversions go
// through reflect rather than bare type assertions.

func toInt(v any) (int, error) {
	if v == nil {
		return 0, nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("%w: %T is not an int", ErrInvalidDefault, v)
	}
}

func toFloat(v any) (float64, error) {
	if v == nil {
		return 0, nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("%w: %T is not a float", ErrInvalidDefault, v)
	}
}

func toString(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T is not a string", ErrInvalidDefault, v)
	}

	return s, nil
}

func toBool(v any) (bool, error) {
	if v == nil {
		return false, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a bool", ErrInvalidDefault, v)
	}

	return b, nil
}

func toIntSlice(v any) ([]int, error) {
	return toSlice(v, toInt)
}

func toFloatSlice(v any) ([]float64, error) {
	return toSlice(v, toFloat)
}

func toStringSlice(v any) ([]string, error) {
	return toSlice(v, toString)
}

func toBoolSlice(v any) ([]bool, error) {
	return toSlice(v, toBool)
}

// toSlice converts an arbitrary slice or array value element-wise.
func toSlice[T any](v any, conv func(any) (T, error)) ([]T, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrInvalidDefault, v)
	}

	out := make([]T, rv.Len())

	for i := range rv.Len() {
		elem, err := conv(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}

		out[i] = elem
	}

	return out, nil
}
