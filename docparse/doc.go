// Package docparse extracts argument-parsing metadata from doc comments.
//
// A doc comment is expected to follow a fixed convention: the first
// non-blank line is a one-line headline, optionally followed by
// blank-line-separated body paragraphs, followed by named sections
// introduced by the keywords "Args:", "Returns:", "Raises:", "Yields:",
// and "Usage:". Only the Args section is consumed; the other keywords are
// recognized solely to delimit it.
//
// Each Args entry has the form
//
//	name (type): help text
//	    continuation lines are indented relative to the entry
//
// where the parenthesized type annotation is optional. The annotation may
// be a primitive identifier (int, float, str, bool and the Go spellings
// string and float64) or a single-level collection such as list[int] or
// tuple[str], which resolves to the element type with one-or-more
// multiplicity. Nested generics are not supported and yield an untyped
// entry.
//
// [Parse] turns a doc comment into a [ParsedDoc]. [ParseWithDefaults]
// additionally accepts the documented function's default values as a
// companion map, from which missing types and multiplicities are inferred
// by runtime shape. Explicit annotations always win over inference.
//
// Parsing is pure: no I/O, no caching, no mutation of inputs. All errors
// are deterministic functions of the input and represent documentation or
// configuration mistakes, surfaced via the sentinel errors [ErrEmptyDoc],
// [ErrMalformedEntry], and [ErrUnknownType].
package docparse
