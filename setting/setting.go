// SPDX-License-Identifier: MIT

// Package setting defines the typed value containers persisted by flatcfg.
//
// Every variant fixes a binary wire format and a validity predicate. The
// wire format encodes character data one byte per code point, so code
// points above 0xFF are not representable. This is a limitation of the
// store schema, not of this package.
package setting

import "fmt"

// Setting is a typed value slot with binary encode/decode and validation.
type Setting interface {
	// Encode returns the binary representation of the current value. It
	// fails with a ValidationError if the value is invalid.
	Encode() ([]byte, error)

	// Decode restores the value from its binary representation. It fails
	// with a DecodeError when the data length does not match the
	// variant's fixed width, and with a ValidationError when the decoded
	// value fails the validity predicate. On failure the previous value
	// is kept.
	Decode(data []byte) error

	// IsValid reports whether the current value passes the variant's
	// validity predicate.
	IsValid() bool

	// ValidationDescription explains the validity predicate, for error
	// messages.
	ValidationDescription() string
}

// ValidationError reports a value that failed a variant's validity
// predicate. It carries the offending value and the variant's description.
type ValidationError struct {
	Value       any
	Description string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v: must be %s", e.Value, e.Description)
}

// DecodeError reports encoded data whose length does not match the
// variant's fixed width.
type DecodeError struct {
	Want int
	Got  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("expected %d bytes, got %d", e.Want, e.Got)
}
