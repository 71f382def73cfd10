// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

import "fmt"

// ErrorKind classifies why a PDU could not be decoded or encoded.
type ErrorKind uint8

const (
	// KindUnexpectedEOF means the input is shorter than the layout requires.
	KindUnexpectedEOF ErrorKind = iota + 1
	// KindInsufficientBuffer means the output buffer cannot hold the encoded request.
	KindInsufficientBuffer
	// KindInvalid means a field holds a value outside its legal set,
	// e.g. a coil state other than 0x0000/0xFF00 or a zero quantity.
	KindInvalid
	// KindTooLarge means a count exceeds the protocol maximum.
	KindTooLarge
	// KindAmbivalent means two length fields of the same request disagree.
	KindAmbivalent
	// KindOverflow means address and quantity together leave the 16-bit address space.
	KindOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected EOF"
	case KindInsufficientBuffer:
		return "insufficient buffer"
	case KindInvalid:
		return "invalid value"
	case KindTooLarge:
		return "too large"
	case KindAmbivalent:
		return "ambivalent length"
	case KindOverflow:
		return "address overflow"
	}
	return "unknown"
}

// Error is returned by every decode and encode operation of this package.
// Expected and Got are byte counts and only set for KindUnexpectedEOF and
// KindInsufficientBuffer.
type Error struct {
	Kind     ErrorKind
	Expected int
	Got      int
}

// Error implements error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindUnexpectedEOF:
		return fmt.Sprintf("modbus: unexpected EOF, expected '%v' bytes but got '%v'", e.Expected, e.Got)
	case KindInsufficientBuffer:
		return fmt.Sprintf("modbus: insufficient buffer, expected '%v' bytes but got '%v'", e.Expected, e.Got)
	}
	return fmt.Sprintf("modbus: %s", e.Kind)
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrUnexpectedEOF) matches regardless of the sizes.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrUnexpectedEOF      error = &Error{Kind: KindUnexpectedEOF}
	ErrInsufficientBuffer error = &Error{Kind: KindInsufficientBuffer}
	ErrInvalid            error = &Error{Kind: KindInvalid}
	ErrTooLarge           error = &Error{Kind: KindTooLarge}
	ErrAmbivalent         error = &Error{Kind: KindAmbivalent}
	ErrOverflow           error = &Error{Kind: KindOverflow}
)

func errUnexpectedEOF(expected, got int) error {
	return &Error{Kind: KindUnexpectedEOF, Expected: expected, Got: got}
}

func errInsufficientBuffer(expected, got int) error {
	return &Error{Kind: KindInsufficientBuffer, Expected: expected, Got: got}
}

func errKind(kind ErrorKind) error {
	return &Error{Kind: kind}
}

// UnsupportedFunctionError is returned by Decode for function codes this
// package has no request layout for.
type UnsupportedFunctionError struct {
	FunctionCode FunctionCode
}

// Error implements error interface.
func (e *UnsupportedFunctionError) Error() string {
	return fmt.Sprintf("modbus: function '%v' (%s, %s) is not supported", byte(e.FunctionCode), e.FunctionCode, e.FunctionCode.Class())
}
