// Package errors defines the typed errors returned by the KML codec.
package errors

import (
	"errors"
	"fmt"
)

// ParseError reports a field value that could not be converted to its
// declared type. The serialized offending node and its parent element are
// embedded so the failing location can be found in large documents.
type ParseError struct {
	// Node is the serialized node whose value failed to parse.
	Node string
	// Element is the serialized parent element of the failing node.
	Element string
	// Expected describes the type the value was expected to convert to.
	Expected string
	// Err is the underlying conversion error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("kml: cannot parse %s in %s as %s", e.Node, e.Element, e.Expected)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error { return e.Err }

// GeometryError reports a malformed coordinate value. It follows the same
// strict/lenient policy as ParseError.
type GeometryError struct {
	// Element is the serialized element holding the coordinates.
	Element string
	// Err is the underlying conversion error.
	Err error
}

// Error implements the error interface.
func (e *GeometryError) Error() string {
	msg := fmt.Sprintf("kml: invalid coordinates in %s", e.Element)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying conversion error.
func (e *GeometryError) Unwrap() error { return e.Err }

// WriteError reports a value that is structurally invalid for its shape
// during serialization. It is never suppressed by lenient mode.
type WriteError struct {
	Msg string
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return "kml: " + e.Msg
}

// NewWrite returns a WriteError with a formatted message.
func NewWrite(format string, args ...any) *WriteError {
	return &WriteError{Msg: fmt.Sprintf(format, args...)}
}

// AsParse reports whether err is or wraps a ParseError.
func AsParse(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsGeometry reports whether err is or wraps a GeometryError.
func AsGeometry(err error) (*GeometryError, bool) {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// AsWrite reports whether err is or wraps a WriteError.
func AsWrite(err error) (*WriteError, bool) {
	var we *WriteError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}
