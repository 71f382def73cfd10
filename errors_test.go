package pdu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesKind(t *testing.T) {
	sentinels := map[ErrorKind]error{
		KindUnexpectedEOF:      ErrUnexpectedEOF,
		KindInsufficientBuffer: ErrInsufficientBuffer,
		KindInvalid:            ErrInvalid,
		KindTooLarge:           ErrTooLarge,
		KindAmbivalent:         ErrAmbivalent,
		KindOverflow:           ErrOverflow,
	}
	for kind, sentinel := range sentinels {
		err := fmt.Errorf("frame 3: %w", &Error{Kind: kind, Expected: 7, Got: 2})
		assert.ErrorIs(t, err, sentinel, kind.String())
		for other, s := range sentinels {
			if other != kind {
				assert.NotErrorIs(t, err, s, "%v matched %v", kind, other)
			}
		}
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{errUnexpectedEOF(4, 2), "modbus: unexpected EOF, expected '4' bytes but got '2'"},
		{errInsufficientBuffer(5, 0), "modbus: insufficient buffer, expected '5' bytes but got '0'"},
		{errKind(KindAmbivalent), "modbus: ambivalent length"},
		{errKind(KindOverflow), "modbus: address overflow"},
		{&UnsupportedFunctionError{FunctionCode: 66}, "modbus: function '66' (custom, custom) is not supported"},
		{&UnsupportedFunctionError{FunctionCode: FuncCodeDiagnostics}, "modbus: function '8' (diagnostics, public) is not supported"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Error())
	}
}

func TestErrorAs(t *testing.T) {
	_, _, err := ReadUint16([]byte{1})

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, actual %T", err)
	}
	assert.Equal(t, Error{Kind: KindUnexpectedEOF, Expected: 2, Got: 1}, *e)
}
