package docparse

import (
	"fmt"
	"reflect"
)

// Kind identifies the primitive type an argument's values convert to.
type Kind int

// Argument value kinds.
const (
	KindUnset Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

// String returns the canonical identifier for k.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	case KindUnset:
		return ""
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// NArgs describes an argument's multiplicity.
type NArgs string

const (
	// NArgsUnset means the argument takes a single value.
	NArgsUnset NArgs = ""
	// NArgsOneOrMore means the argument takes one or more values.
	NArgsOneOrMore NArgs = "+"
)

// resolveKind maps a type identifier from an annotation to a [Kind].
// Unrecognized identifiers are a caller error.
func resolveKind(ident string) (Kind, error) {
	switch ident {
	case "int":
		return KindInt, nil
	case "float", "float64":
		return KindFloat, nil
	case "str", "string":
		return KindString, nil
	case "bool":
		return KindBool, nil
	}

	return KindUnset, fmt.Errorf("%w: %q", ErrUnknownType, ident)
}

// KindOf returns the [Kind] matching a runtime value, or [KindUnset] for
// values with no primitive argument equivalent.
func KindOf(v any) Kind {
	if v == nil {
		return KindUnset
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	default:
		return KindUnset
	}
}

// InferDefault derives a type and multiplicity from the runtime shape of a
// default value: a slice or array yields its first element's kind with
// one-or-more multiplicity (an empty one leaves the kind unset), any other
// non-nil value yields its own kind, and nil yields nothing.
func InferDefault(def any) (Kind, NArgs) {
	if def == nil {
		return KindUnset, NArgsUnset
	}

	rv := reflect.ValueOf(def)
	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		if rv.Len() == 0 {
			return KindUnset, NArgsOneOrMore
		}

		return KindOf(rv.Index(0).Interface()), NArgsOneOrMore
	}

	return KindOf(def), NArgsUnset
}
