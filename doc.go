// Package docargs builds command-line interfaces from doc comments.
//
// It wraps [github.com/spf13/cobra], deriving each command's help text,
// description, argument types, defaults, and multiplicities from a doc
// comment following the convention described in
// [go.ewatkins.dev/docargs/docparse], so the documentation is the single
// source of truth for both human-readable help and argument-parsing
// metadata.
//
// A subcommand is a [Handler] plus its doc comment:
//
//	const countDoc = `Count words in the given files.
//
//	Args:
//	    files (list[str]): paths of the files to read.
//	    top (int): how many words to report.
//	`
//
//	func count(ctx context.Context, args docargs.Values) error {
//	    for _, f := range args.Strings("files") { ... }
//	    return nil
//	}
//
//	func main() {
//	    p, err := docargs.New(docargs.WithDoc(mainDoc))
//	    ...
//	    cmd, err := p.AddCommand(count, countDoc,
//	        docargs.WithDefaults(map[string]any{"top": 10}))
//	    ...
//	    err = cmd.AddArgumentsAuto(docargs.Optional)
//	    ...
//	    err = p.ParseAndRun(context.Background(), os.Args[1:])
//	    ...
//	}
//
// All metadata extraction happens at registration time and fails fast on
// malformed documentation. Actual command-line parsing is cobra's;
// nothing is added to it beyond what was pre-registered.
package docargs
