package oxml

import (
	"errors"
	"fmt"
)

var (
	// ErrNotChild is returned when a reference node is not a child of the
	// element being modified.
	ErrNotChild = errors.New("node is not a child of this element")
	// ErrUnsupportedEncoding is returned by Render for encodings other than
	// UTF-8.
	ErrUnsupportedEncoding = errors.New("unsupported output encoding")
	// ErrInvalidCharacter is returned by Render when text or an attribute
	// value contains a character XML 1.0 cannot represent.
	ErrInvalidCharacter = errors.New("character not allowed in XML")
)

// ParseError reports malformed markup.
type ParseError struct {
	Line    int
	Column  int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("xml parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	} else if e.Line > 0 {
		return fmt.Sprintf("xml parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("xml parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
