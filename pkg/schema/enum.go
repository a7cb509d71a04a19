package schema

import (
	"encoding/json"
	"reflect"
)

// enum holds the closed set of wire strings for one enumeration. It is built
// once at package init and only read afterwards.
type enum[T ~string] struct {
	name   string
	values []T
	index  map[T]struct{}
}

func newEnum[T ~string](name string, values ...T) *enum[T] {
	e := &enum[T]{name: name, values: values, index: make(map[T]struct{}, len(values))}
	for _, v := range values {
		e.index[v] = struct{}{}
	}
	return e
}

// parse matches s exactly against the known variants. No case folding or
// trimming is applied.
func (e *enum[T]) parse(s string) (T, error) {
	v := T(s)
	if _, ok := e.index[v]; !ok {
		return "", &UnknownVariantError{Value: s, Enum: e.name}
	}
	return v, nil
}

func (e *enum[T]) list() []T {
	out := make([]T, len(e.values))
	copy(out, e.values)
	return out
}

// decode unmarshals a JSON string into dst, rejecting unknown variants.
// A JSON null leaves dst untouched; presence is checked by Decode.
func (e *enum[T]) decode(b []byte, dst *T) error {
	if jsonKind(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &json.UnmarshalTypeError{Value: jsonKind(b), Type: reflect.TypeOf((*T)(nil)).Elem()}
	}
	v, err := e.parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// jsonKind names the JSON type of a raw value for error messages.
func jsonKind(b []byte) string {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "bool"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "empty"
}
