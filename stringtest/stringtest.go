// Package stringtest helps build literal multiline test fixtures with
// explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinBlank joins multiple strings with a blank line between each pair.
// Use this to construct expected paragraph-structured output, such as a
// headline followed by a body.
//
// Example:
//
//	want := stringtest.JoinBlank(
//		"Headline.",
//		"Body paragraph.",
//	) // -> "Headline.\n\nBody paragraph."
func JoinBlank(ss ...string) string {
	return strings.Join(ss, "\n\n")
}
