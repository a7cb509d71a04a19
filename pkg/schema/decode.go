package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var (
	timeType        = reflect.TypeOf((*time.Time)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
)

// Decode unmarshals raw into v and enforces the presence rules of the
// record types in this package:
//
//   - a field is optional when it is a pointer or tagged omitempty;
//     every other field must be present and non-null (*MissingFieldError)
//   - a value of the wrong JSON type fails with *TypeMismatchError
//   - unknown enum variants fail with *UnknownVariantError
//   - unknown keys are ignored
//
// v must be a non-nil pointer.
func Decode(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &TypeMismatchError{Field: typeErr.Field, Expected: typeName(typeErr.Type), Got: typeErr.Value}
		}
		return err
	}
	root := gjson.ParseBytes(raw)
	if root.Type == gjson.Null {
		return &MissingFieldError{Name: "(root)"}
	}
	return checkPresence(root, reflect.TypeOf(v), "")
}

// checkPresence walks res alongside t and reports the first required field
// that is absent. Shapes were already validated by encoding/json.
func checkPresence(res gjson.Result, t reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if !res.IsObject() {
			return nil
		}
		present := res.Map()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			key, optional := wireKey(f)
			if key == "-" {
				continue
			}
			name := joinPath(path, key)
			val, ok := present[key]
			if !ok || val.Type == gjson.Null {
				if optional {
					continue
				}
				return &MissingFieldError{Name: name}
			}
			if err := checkPresence(val, f.Type, name); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if !res.IsArray() {
			return nil
		}
		for i, el := range res.Array() {
			if err := checkPresence(el, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// wireKey returns the JSON key of f and whether the field may be absent.
func wireKey(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	optional := f.Type.Kind() == reflect.Pointer
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" || o == "omitzero" {
			optional = true
		}
	}
	return name, optional
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.String()
}
