// Package errors defines the error types reported by the inicfg parser and
// binary codec.
package errors

import "fmt"

// ParseError is a structural error found while parsing configuration text.
// It records the 1-based line number of the offending source line. The
// parser aborts on the first ParseError; no partial document is returned.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("inicfg: parse error at line %d: %s", e.Line, e.Message)
}

// DecodeError is a fatal error found while decoding the binary layout.
// A short read, a negative count, or a negative length prefix all abort
// the decode with no partial document.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("inicfg: decode error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("inicfg: decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Err }
