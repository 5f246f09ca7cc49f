package docparse

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// Schema renders the parsed doc as a JSON Schema object: one property per
// documented argument, typed from its [Kind], described by its help text,
// with its default carried over. Untyped arguments get no type constraint.
func (d *ParsedDoc) Schema() *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:        typeObject,
		Title:       d.Headline,
		Description: d.Description,
		Properties:  make(map[string]*jsonschema.Schema),
	}

	for _, name := range d.Names {
		schema.Properties[name] = argSchema(d.Args[name])
		schema.PropertyOrder = append(schema.PropertyOrder, name)
	}

	return schema
}

// argSchema builds the property schema for one argument.
func argSchema(arg ArgSpec) *jsonschema.Schema {
	prop := &jsonschema.Schema{Description: arg.Help}

	t := jsonType(arg.Kind)

	if arg.NArgs == NArgsOneOrMore {
		prop.Type = typeArray
		if t != "" {
			prop.Items = &jsonschema.Schema{Type: t}
		}
	} else {
		prop.Type = t
	}

	if arg.Default != nil {
		prop.Default = defaultValue(arg.Default)
	}

	return prop
}

// jsonType maps a [Kind] to its JSON Schema type string. [KindUnset] maps
// to an empty string, leaving the property unconstrained.
func jsonType(k Kind) string {
	switch k {
	case KindInt:
		return typeInteger
	case KindFloat:
		return typeNumber
	case KindString:
		return typeString
	case KindBool:
		return typeBoolean
	case KindUnset:
		return ""
	}

	return ""
}

// defaultValue converts a Go value to a [json.RawMessage] suitable for use
// as a JSON Schema default value. Returns nil if marshaling fails.
func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}
