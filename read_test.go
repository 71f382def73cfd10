package pdu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readFunctions = []FunctionCode{
	FuncCodeReadCoils,
	FuncCodeReadDiscreteInputs,
	FuncCodeReadHoldingRegisters,
	FuncCodeReadInputRegisters,
}

func TestReadRequestConstructors(t *testing.T) {
	assert.Equal(t, ReadRequest{FuncCodeReadCoils, 10, 20}, NewReadCoils(10, 20))
	assert.Equal(t, ReadRequest{FuncCodeReadDiscreteInputs, 10, 20}, NewReadDiscreteInputs(10, 20))
	assert.Equal(t, ReadRequest{FuncCodeReadHoldingRegisters, 10, 20}, NewReadHoldingRegisters(10, 20))
	assert.Equal(t, ReadRequest{FuncCodeReadInputRegisters, 10, 20}, NewReadInputRegisters(10, 20))
}

func TestDecodeReadRequest(t *testing.T) {
	tests := []struct {
		data     []byte
		address  uint16
		quantity uint16
		tail     []byte
	}{
		{[]byte{0, 10, 0, 20}, 10, 20, []byte{}},
		{[]byte{1, 10, 2, 20}, 266, 532, []byte{}},
		{[]byte{0, 255, 0, 255}, 255, 255, []byte{}},
		{[]byte{255, 0, 255, 0}, 65280, 65280, []byte{}},
		{[]byte{255, 255, 255, 255}, 0xFFFF, 0xFFFF, []byte{}},
		{[]byte{255, 255, 255, 255, 1, 2, 3, 4}, 0xFFFF, 0xFFFF, []byte{1, 2, 3, 4}},
		{[]byte{255, 255, 255, 255, 1}, 0xFFFF, 0xFFFF, []byte{1}},
	}
	for _, fc := range readFunctions {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/% x", fc, tt.data), func(t *testing.T) {
				req, tail, err := DecodeReadRequest(fc, tt.data)
				require.NoError(t, err)
				assert.Equal(t, ReadRequest{Function: fc, Address: tt.address, Quantity: tt.quantity}, req)
				assert.Equal(t, tt.tail, tail)
			})
		}
	}
}

func TestDecodeReadRequestFail(t *testing.T) {
	tests := []struct {
		name     string
		fc       FunctionCode
		data     []byte
		expected error
	}{
		{"empty", FuncCodeReadCoils, []byte{}, &Error{Kind: KindUnexpectedEOF, Expected: 4, Got: 0}},
		{"two bytes", FuncCodeReadDiscreteInputs, []byte{255, 255}, &Error{Kind: KindUnexpectedEOF, Expected: 4, Got: 2}},
		{"three bytes", FuncCodeReadHoldingRegisters, []byte{255, 255, 0}, &Error{Kind: KindUnexpectedEOF, Expected: 4, Got: 3}},
		{"zero quantity", FuncCodeReadInputRegisters, []byte{0, 1, 0, 0}, &Error{Kind: KindInvalid}},
		{"not a read function", FuncCodeWriteSingleRegister, []byte{0, 1, 0, 1}, &Error{Kind: KindInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, tail, err := DecodeReadRequest(tt.fc, tt.data)
			assert.Equal(t, tt.expected, err)
			assert.Equal(t, ReadRequest{}, req)
			assert.Equal(t, tt.data, tail)
		})
	}
}

func TestEncodeReadRequest(t *testing.T) {
	for _, fc := range readFunctions {
		req := ReadRequest{Function: fc, Address: 256, Quantity: 255}
		assert.Equal(t, [4]byte{1, 0, 0, 255}, req.Body())
		assert.Equal(t, 5, req.Size())

		dst := []byte{1, 1, 1, 1, 1, 0, 0, 0, 0}
		n, err := req.Encode(dst)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, []byte{byte(fc), 1, 0, 0, 255, 0, 0, 0, 0}, dst)
	}
}

func TestEncodeReadRequestInsufficientBuffer(t *testing.T) {
	req := NewReadCoils(0xFFFF, 0xFFFF)
	for _, size := range []int{0, 4} {
		dst := make([]byte, size)
		n, err := req.Encode(dst)
		assert.Equal(t, 0, n)
		assert.Equal(t, &Error{Kind: KindInsufficientBuffer, Expected: 5, Got: size}, err)
		assert.Equal(t, make([]byte, size), dst)
	}
}

func TestReadRequestWireExamples(t *testing.T) {
	frames := [][]byte{
		{0, 0, 33, 0, 33},
		{0, 0, 1, 0, 5},
		{0, 1, 0, 2, 0},
	}
	for _, fc := range readFunctions {
		for _, frame := range frames {
			frame[0] = byte(fc)
			req, tail, err := Decode(frame)
			require.NoError(t, err)
			assert.Empty(t, tail)

			b, err := Marshal(req)
			require.NoError(t, err)
			assert.Equal(t, frame, b)
		}
	}
}

func TestReadRequestMaxQuantity(t *testing.T) {
	assert.Equal(t, uint16(2000), NewReadCoils(0, 1).MaxQuantity())
	assert.Equal(t, uint16(2000), NewReadDiscreteInputs(0, 1).MaxQuantity())
	assert.Equal(t, uint16(125), NewReadHoldingRegisters(0, 1).MaxQuantity())
	assert.Equal(t, uint16(125), NewReadInputRegisters(0, 1).MaxQuantity())
	assert.Equal(t, uint16(0), ReadRequest{}.MaxQuantity())
}

func TestEncodeReadRequestInvalidFunction(t *testing.T) {
	for _, fc := range []FunctionCode{FuncCodeInvalid, FuncCodeWriteSingleCoil, FuncCodeWriteMultipleRegisters, 0x41} {
		req := ReadRequest{Function: fc, Address: 1, Quantity: 5}
		dst := make([]byte, 5)
		n, err := req.Encode(dst)
		assert.Equal(t, 0, n, "%v", fc)
		assert.Equal(t, &Error{Kind: KindInvalid}, err, "%v", fc)
		assert.Equal(t, make([]byte, 5), dst, "%v", fc)

		_, err = Marshal(req)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}
