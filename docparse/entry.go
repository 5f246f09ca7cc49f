package docparse

import (
	"fmt"
	"regexp"
	"strings"
)

// entryPattern matches one Args entry: a name, an optional parenthesized
// type annotation, a colon, and free text. (?s) lets the text span the
// continuation lines already folded into the entry.
var entryPattern = regexp.MustCompile(`(?s)^(\S+?)\s*(?:\(\s*([^:]+?)\s*\))?\s*:(.*)$`)

// bracketPattern splits a type expression into an outer identifier and an
// optional single bracketed inner identifier.
var bracketPattern = regexp.MustCompile(`^(\S+?)\s*(?:\[\s*(\S+)\s*\]\s*)?$`)

// parseEntries segments the dedented Args-section lines into entries and
// fills parsed.Args and parsed.Names. A line with no leading whitespace
// begins an entry; indented lines are folded into the current entry's
// text. Duplicate names overwrite earlier entries, keeping their original
// position.
func parseEntries(lines []string, defaults map[string]any, parsed *ParsedDoc) error {
	for i, line := range lines {
		if startsWithSpace(line) {
			continue
		}

		if !strings.Contains(line, ":") {
			return fmt.Errorf("%w: %q", ErrMalformedEntry, line)
		}

		entry := line

		for _, next := range lines[i+1:] {
			if !startsWithSpace(next) {
				break
			}

			entry += "\n" + next
		}

		name, spec, err := parseEntry(entry, defaults)
		if err != nil {
			return err
		}

		if _, seen := parsed.Args[name]; !seen {
			parsed.Names = append(parsed.Names, name)
		}

		parsed.Args[name] = spec
	}

	return nil
}

// parseEntry extracts one entry's name and [ArgSpec] from its folded text.
func parseEntry(entry string, defaults map[string]any) (string, ArgSpec, error) {
	m := entryPattern.FindStringSubmatch(entry)
	if m == nil {
		return "", ArgSpec{}, fmt.Errorf("%w: %q", ErrMalformedEntry, firstLine(entry))
	}

	name := strings.TrimSpace(m[1])

	kind, nargs, err := resolveTypeExpr(strings.TrimSpace(m[2]))
	if err != nil {
		return "", ArgSpec{}, fmt.Errorf("%s: %w", name, err)
	}

	spec := ArgSpec{Help: strings.TrimSpace(m[3])}

	def, ok := defaults[name]
	if ok {
		spec.Default = def
	}

	// Explicit annotations win; the default's runtime shape fills the gap.
	if kind == KindUnset && nargs == NArgsUnset && ok {
		kind, nargs = InferDefault(def)
	}

	spec.Kind = kind
	spec.NArgs = nargs

	return name, spec, nil
}

// resolveTypeExpr resolves a parenthesized annotation to a type and
// multiplicity. An empty expression resolves to nothing. A sequence-like
// outer identifier (list or tuple) resolves to the element type with
// one-or-more multiplicity. More than one bracket pair cannot be
// disambiguated by this grammar and resolves to nothing rather than
// failing.
func resolveTypeExpr(expr string) (Kind, NArgs, error) {
	if expr == "" {
		return KindUnset, NArgsUnset, nil
	}

	if strings.Count(expr, "[") > 1 {
		return KindUnset, NArgsUnset, nil
	}

	outer, inner := splitBracket(expr)

	if outer == "list" || outer == "tuple" {
		if inner == "" {
			return KindUnset, NArgsUnset, fmt.Errorf("%w: %s without an element type", ErrUnknownType, outer)
		}

		kind, err := resolveKind(inner)
		if err != nil {
			return KindUnset, NArgsUnset, err
		}

		return kind, NArgsOneOrMore, nil
	}

	kind, err := resolveKind(outer)
	if err != nil {
		return KindUnset, NArgsUnset, err
	}

	return kind, NArgsUnset, nil
}

// splitBracket splits "outer[inner]" into its identifiers. A bare
// identifier yields an empty inner. Expressions the bracket grammar cannot
// split are returned whole as the outer identifier.
func splitBracket(expr string) (outer, inner string) {
	m := bracketPattern.FindStringSubmatch(expr)
	if m == nil {
		return expr, ""
	}

	return m[1], m[2]
}

// startsWithSpace reports whether line begins with whitespace, marking it
// as a continuation of the previous entry.
func startsWithSpace(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
