// Package envelope decodes the JSON envelope wrapping every SpaceTraders
// API response:
//
//	{"data": ..., "meta": {...}}   success, meta only on list endpoints
//	{"error": {"code": 4214, ...}} failure
//
// A reply is resolved into exactly one of three states. Success carries the
// typed payload, Failure the *apierr.Error the server sent, and Malformed an
// *apierr.Error with code apierr.CodeBadReply built by the client when the
// reply could not be understood.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// State identifies which branch of the envelope was taken.
type State int

const (
	Success State = iota
	Failure
	Malformed
)

func (s State) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is a decoded envelope. Value and Meta are set only in the Success
// state; Err is set in the other two.
type Result[T any] struct {
	State State
	Value T
	Meta  *schema.Meta
	Err   *apierr.Error
}

// Unwrap converts the result to the usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.State != Success {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}

// Page is a list payload together with its pagination block.
type Page[T any] struct {
	Data T
	Meta schema.Meta
}

// wire is the raw envelope; members are decoded lazily so that a present
// error is never shadowed by an undecodable data payload.
type wire struct {
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error json.RawMessage `json:"error"`
}

// Parse decodes raw into a Result. It never returns a nil error in a
// non-Success state.
//
// Resolution order:
//  1. unparseable JSON or a non-object root is Malformed
//  2. a present error member is a Failure, whatever data holds
//  3. a present data member decodable as T is a Success
//  4. meta without data is Malformed
//  5. an envelope with neither data nor error is Malformed with
//     apierr.IncompleteMessage
func Parse[T any](raw []byte) Result[T] {
	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return malformed[T](apierr.BadReply("malformed response: "+err.Error(), err))
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return malformed[T](apierr.BadReply("malformed response: envelope is null", nil))
	}

	if present(w.Error) {
		var e apierr.Error
		if err := schema.Decode(w.Error, &e); err != nil {
			return malformed[T](apierr.BadReply("decode error member: "+err.Error(), err))
		}
		return Result[T]{State: Failure, Err: &e}
	}

	if present(w.Data) {
		var v T
		if err := schema.Decode(w.Data, &v); err != nil {
			return malformed[T](apierr.BadReply("decode data: "+err.Error(), err))
		}
		res := Result[T]{State: Success, Value: v}
		if present(w.Meta) {
			var m schema.Meta
			if err := schema.Decode(w.Meta, &m); err != nil {
				return malformed[T](apierr.BadReply("decode meta: "+err.Error(), err))
			}
			res.Meta = &m
		}
		return res
	}

	if present(w.Meta) {
		return malformed[T](apierr.BadReply("malformed response: meta without data", nil))
	}
	return malformed[T](apierr.Incomplete())
}

// Decode parses raw and returns the success payload or the envelope's error.
// Any meta block is discarded.
func Decode[T any](raw []byte) (T, error) {
	return Parse[T](raw).Unwrap()
}

// DecodePage is Decode for list endpoints. A successful reply without a
// meta block is reported as Malformed.
func DecodePage[T any](raw []byte) (Page[T], error) {
	res := Parse[T](raw)
	v, err := res.Unwrap()
	if err != nil {
		return Page[T]{}, err
	}
	if res.Meta == nil {
		return Page[T]{}, apierr.BadReply("malformed response: list reply without meta", nil)
	}
	return Page[T]{Data: v, Meta: *res.Meta}, nil
}

func malformed[T any](e *apierr.Error) Result[T] {
	return Result[T]{State: Malformed, Err: e}
}

// present reports whether an envelope member was sent with a non-null value.
func present(m json.RawMessage) bool {
	return len(m) > 0 && !bytes.Equal(m, []byte("null"))
}
