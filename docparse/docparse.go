package docparse

import (
	"errors"
	"strings"
)

// Sentinel errors reported at registration time.
var (
	// ErrEmptyDoc indicates a doc comment with no content.
	ErrEmptyDoc = errors.New("empty doc comment")
	// ErrMalformedEntry indicates an Args entry that does not match the
	// "name (type): help" form.
	ErrMalformedEntry = errors.New("malformed args entry")
	// ErrUnknownType indicates a type annotation that does not resolve to
	// a known primitive.
	ErrUnknownType = errors.New("unknown type annotation")
)

// Section keywords. Matching is case-sensitive containment, per the doc
// comment convention.
const keywordArgs = "Args:"

var (
	keywordsOthers = []string{"Returns:", "Raises:", "Yields:", "Usage:"}
	keywordsAll    = append([]string{keywordArgs}, keywordsOthers...)
)

// ArgSpec is the resolved parsing metadata for one documented argument.
type ArgSpec struct {
	// Help is the entry's free-text help, with continuation lines
	// newline-joined and their indentation preserved.
	Help string
	// Default is the argument's default value, if one was supplied via
	// the companion defaults map.
	Default any
	// Kind is the argument's value type, or [KindUnset].
	Kind Kind
	// NArgs is the argument's multiplicity, or [NArgsUnset].
	NArgs NArgs
}

// ParsedDoc is the structured form of a doc comment.
type ParsedDoc struct {
	// Headline is the one-line summary.
	Headline string
	// Description is the headline, or the headline followed by a blank
	// line and the dedented body.
	Description string
	// Args maps each Args-section entry name to its metadata. Duplicate
	// entries overwrite earlier ones.
	Args map[string]ArgSpec
	// Names holds the entry names in documentation order.
	Names []string
}

// Parse parses a doc comment. It is [ParseWithDefaults] with no defaults.
func Parse(doc string) (*ParsedDoc, error) {
	return ParseWithDefaults(doc, nil)
}

// ParseWithDefaults parses a doc comment into a [ParsedDoc], taking
// argument default values from the companion map. The map stands in for
// the documented function's parameter defaults, which Go cannot introspect
// at runtime; entries documented but absent from the map simply carry no
// default.
func ParseWithDefaults(doc string, defaults map[string]any) (*ParsedDoc, error) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil, ErrEmptyDoc
	}

	lines := strings.Split(doc, "\n")

	// Headline and body: non-blank lines up to the first section keyword.
	var desc []string

	for _, line := range lines {
		if containsAny(line, keywordsAll) {
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		desc = append(desc, line)
	}

	if len(desc) == 0 {
		return nil, ErrEmptyDoc
	}

	parsed := &ParsedDoc{
		Headline:    desc[0],
		Description: desc[0],
		Args:        map[string]ArgSpec{},
	}

	if len(desc) > 1 {
		parsed.Description += "\n\n" + strings.Join(dedent(desc[1:]), "\n")
	}

	argLines := argsSection(lines)

	err := parseEntries(argLines, defaults, parsed)
	if err != nil {
		return nil, err
	}

	return parsed, nil
}

// argsSection returns the non-blank lines of the Args section, dedented.
// The section starts after the line containing "Args:" and ends before the
// first line containing another section keyword. Absent an "Args:" marker
// the section is empty.
func argsSection(lines []string) []string {
	start := -1

	for i, line := range lines {
		if strings.Contains(line, keywordArgs) {
			start = i + 1

			break
		}
	}

	if start < 0 {
		return nil
	}

	var section []string

	for _, line := range lines[start:] {
		if containsAny(line, keywordsOthers) {
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		section = append(section, line)
	}

	return dedent(section)
}

// containsAny reports whether s contains any of the given keywords.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}

// dedent strips the longest common leading whitespace from every line.
// Blank lines are ignored when computing the margin.
func dedent(lines []string) []string {
	margin := ""
	found := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			margin = indent
			found = true

			continue
		}

		margin = commonPrefix(margin, indent)
	}

	if margin == "" {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, margin)
	}

	return out
}

// commonPrefix returns the longest shared prefix of a and b.
func commonPrefix(a, b string) string {
	n := min(len(a), len(b))

	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
