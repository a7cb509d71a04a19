package schema

import "fmt"

// UnknownVariantError reports a wire string that is not a member of a closed
// enumeration. New upstream variants surface here instead of being coerced.
type UnknownVariantError struct {
	Value string
	Enum  string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Enum, e.Value)
}

// MissingFieldError reports a required key that is absent or null.
// Name is the dotted path from the decoded root, e.g. "nav.route.arrival".
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Name)
}

// TypeMismatchError reports a key whose JSON value has the wrong shape.
type TypeMismatchError struct {
	Field    string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
	}
	return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Field, e.Expected, e.Got)
}
