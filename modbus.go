// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

/*
Package pdu encodes and decodes MODBUS request PDUs.

A PDU is the function code followed by its request body, independent of
the transport framing. Decoders take a byte slice holding a complete PDU
candidate and return the typed request together with the bytes following
it, so several PDUs or trailing transport bytes can be processed without
copying. Encoders write into a caller provided buffer.

	req, tail, err := pdu.Decode(frame)
	if errors.Is(err, pdu.ErrUnexpectedEOF) {
		// discard frame
	}
*/
package pdu

// Request is implemented by every request type of this package.
type Request interface {
	// FunctionCode returns the function code written by Encode.
	FunctionCode() FunctionCode
	// Size returns the number of bytes Encode writes, function code included.
	Size() int
	// Encode writes the PDU into dst and returns the number of bytes
	// written. It fails with KindInsufficientBuffer without touching dst
	// if len(dst) < Size().
	Encode(dst []byte) (int, error)
}

var (
	_ Request = ReadRequest{}
	_ Request = WriteSingleCoil{}
	_ Request = WriteSingleRegister{}
	_ Request = WriteMultipleRegisters{}
)

// ProtocolDataUnit (PDU) is independent of underlying communication layers.
type ProtocolDataUnit struct {
	FunctionCode byte
	Data         []byte
}

// Marshal returns the encoded PDU of req in a new buffer.
func Marshal(req Request) ([]byte, error) {
	b := make([]byte, req.Size())
	n, err := req.Encode(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

// NewProtocolDataUnit encodes req and splits off the function code.
func NewProtocolDataUnit(req Request) (*ProtocolDataUnit, error) {
	b, err := Marshal(req)
	if err != nil {
		return nil, err
	}
	return &ProtocolDataUnit{FunctionCode: b[0], Data: b[1:]}, nil
}
