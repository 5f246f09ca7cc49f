// Command docargs inspects doc comments that follow the Args-section
// convention, showing how they will drive argument registration. It is
// built with the docargs library itself: every subcommand below derives
// its help, flags, types, and defaults from its own doc comment.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.ewatkins.dev/docargs"
	"go.ewatkins.dev/docargs/docparse"
	"go.ewatkins.dev/docargs/log"
	"go.ewatkins.dev/docargs/version"
)

const mainDoc = `Inspect doc comments that follow the Args-section convention.

docargs parses a doc comment into its headline, description, and argument
metadata, and renders the result as YAML or as JSON Schema. Use it to
check how a doc comment will drive argument registration before wiring it
into a CLI.
`

const describeDoc = `Print the parsed structure of a doc comment as YAML.

Reads the doc comment from a file, or from standard input when the path
is -.

Args:
    input (str): path of the file holding the doc comment, or - for
        standard input.
    defaults (str): path of a YAML file mapping argument names to default
        values, used to infer types for unannotated entries.
`

const schemaDoc = `Render a doc comment's argument metadata as JSON Schema.

Each documented argument becomes one schema property: its type comes from
the annotation or is inferred from its default value, its description from
the help text, and its default is carried over.

Args:
    input (str): path of the file holding the doc comment, or - for
        standard input.
    defaults (str): path of a YAML file mapping argument names to default
        values, used to infer types for unannotated entries.
    indent (int): JSON indentation spaces.
`

const versionDoc = `Print version information.`

func main() {
	err := run(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, argv []string) error {
	logCfg := log.NewConfig()

	p, err := docargs.New(
		docargs.WithName("docargs"),
		docargs.WithDoc(mainDoc),
	)
	if err != nil {
		return err
	}

	root := p.Command()
	logCfg.RegisterFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		slog.SetDefault(slog.New(handler))

		return nil
	}

	completionErr := logCfg.RegisterCompletions(root)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	commands := []struct {
		handler docargs.Handler
		doc     string
		opts    []docargs.CommandOption
	}{
		{describe, describeDoc, []docargs.CommandOption{
			docargs.WithDefaults(map[string]any{"input": "-"}),
		}},
		{schema, schemaDoc, []docargs.CommandOption{
			docargs.WithDefaults(map[string]any{"input": "-", "indent": 2}),
		}},
		{printVersion, versionDoc, []docargs.CommandOption{
			docargs.WithCommandName("version"),
		}},
	}

	for _, c := range commands {
		cmd, err := p.AddCommand(c.handler, c.doc, c.opts...)
		if err != nil {
			return err
		}

		err = cmd.AddArgumentsAuto(docargs.Optional)
		if err != nil {
			return err
		}
	}

	return p.ParseAndRun(ctx, argv)
}

func describe(_ context.Context, args docargs.Values) error {
	parsed, err := loadDoc(args)
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(docYAML(parsed))
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	_, err = os.Stdout.Write(b)

	return err
}

func schema(_ context.Context, args docargs.Values) error {
	parsed, err := loadDoc(args)
	if err != nil {
		return err
	}

	indent := args.Int("indent")
	if indent < 0 {
		indent = 0
	}

	b, err := json.MarshalIndent(parsed.Schema(), "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}

	fmt.Println(string(b))

	return nil
}

func printVersion(_ context.Context, _ docargs.Values) error {
	fmt.Println("docargs " + version.String())

	return nil
}

// loadDoc reads the doc comment and optional defaults file named by the
// parsed flags and runs the docstring parser.
func loadDoc(args docargs.Values) (*docparse.ParsedDoc, error) {
	input := args.String("input")

	var (
		data []byte
		err  error
	)

	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}

	if err != nil {
		return nil, fmt.Errorf("reading doc comment: %w", err)
	}

	var defaults map[string]any

	if path := args.String("defaults"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading defaults: %w", err)
		}

		err = yaml.Unmarshal(raw, &defaults)
		if err != nil {
			return nil, fmt.Errorf("decoding defaults: %w", err)
		}

		slog.Debug("loaded defaults", "path", path, "entries", len(defaults))
	}

	return docparse.ParseWithDefaults(string(data), defaults)
}

// docYAML lays out a parsed doc as an ordered YAML mapping, keeping the
// args in documentation order.
func docYAML(d *docparse.ParsedDoc) yaml.MapSlice {
	args := yaml.MapSlice{}

	for _, name := range d.Names {
		spec := d.Args[name]

		entry := yaml.MapSlice{{Key: "help", Value: spec.Help}}

		if spec.Kind != docparse.KindUnset {
			entry = append(entry, yaml.MapItem{Key: "type", Value: spec.Kind.String()})
		}

		if spec.Default != nil {
			entry = append(entry, yaml.MapItem{Key: "default", Value: spec.Default})
		}

		if spec.NArgs != docparse.NArgsUnset {
			entry = append(entry, yaml.MapItem{Key: "nargs", Value: string(spec.NArgs)})
		}

		args = append(args, yaml.MapItem{Key: name, Value: entry})
	}

	return yaml.MapSlice{
		{Key: "headline", Value: d.Headline},
		{Key: "description", Value: d.Description},
		{Key: "args", Value: args},
	}
}
