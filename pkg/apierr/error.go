// Package apierr defines the error taxonomy of the SpaceTraders API.
//
// Every failed call surfaces as a single *Error value, whether the server
// reported the failure (codes 4000-4699) or the client could not make sense
// of the reply (CodeBadReply). Callers branch on the code:
//
//	ship, err := c.NavigateShip(ctx, "MYSHIP-1", "X1-DF55-20250Z")
//	if apierr.Is(err, apierr.CodeShipInTransit) {
//	    // wait for arrival
//	}
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIName prefixes every rendered error message.
const APIName = "SpaceTraders"

// IncompleteMessage is the message of the error synthesized when an envelope
// carries neither data nor error.
const IncompleteMessage = "Server did not return expected fields 'data' or 'error'"

// Detail is the optional structured payload attached to an API error.
// The API usually sends {"symbol": [...]}; other shapes are kept in Raw.
type Detail struct {
	Symbol []string        `json:"symbol,omitempty"`
	Raw    json.RawMessage `json:"-"`

	// hasSymbol is set when a "symbol" array was decoded, even an empty one.
	hasSymbol bool
}

// UnmarshalJSON accepts any JSON value. A "symbol" string array, when
// present, is lifted into Symbol.
func (d *Detail) UnmarshalJSON(b []byte) error {
	d.Raw = append(d.Raw[:0], b...)
	var shape struct {
		Symbol *[]string `json:"symbol"`
	}
	d.Symbol, d.hasSymbol = nil, false
	if err := json.Unmarshal(b, &shape); err == nil && shape.Symbol != nil {
		d.Symbol = *shape.Symbol
		d.hasSymbol = true
	}
	return nil
}

// MarshalJSON writes the original payload back when it was not symbol-shaped.
func (d Detail) MarshalJSON() ([]byte, error) {
	if len(d.Symbol) == 0 && !d.hasSymbol && len(d.Raw) > 0 {
		return d.Raw, nil
	}
	return json.Marshal(struct {
		Symbol []string `json:"symbol"`
	}{d.Symbol})
}

// items returns the detail entries used in the rendered message.
func (d *Detail) items() string {
	if len(d.Symbol) > 0 || d.hasSymbol {
		return strings.Join(d.Symbol, " ")
	}
	return string(d.Raw)
}

// Error is a failure returned by the API or synthesized while decoding its
// reply. It is immutable once constructed.
type Error struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Data    *Detail `json:"data,omitempty"`

	cause error
}

// New returns an Error with the given code and message and no detail.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// BadReply returns a CodeBadReply error that wraps cause.
func BadReply(message string, cause error) *Error {
	return &Error{Code: CodeBadReply, Message: message, cause: cause}
}

// Incomplete returns the error for an envelope with neither data nor error.
func Incomplete() *Error {
	return New(CodeBadReply, IncompleteMessage)
}

// Name returns the symbolic name of the error code.
func (e *Error) Name() string {
	return Name(e.Code)
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s API error (code=%s): %s", APIName, e.Name(), e.Message)
	if e.Data != nil {
		msg += "\nAdditional info: " + e.Data.items()
	}
	return msg
}

// Unwrap returns the decode failure behind a CodeBadReply error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, apierr.New(apierr.CodeShipInTransit, "")) matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries an *Error with the given code.
func Is(err error, code int) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// CodeOf returns the API code carried by err, or 0 when err is not an *Error.
func CodeOf(err error) int {
	if e, ok := As(err); ok {
		return e.Code
	}
	return 0
}
