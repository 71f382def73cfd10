// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

// ReadRequest reads a contiguous block of coils, discrete inputs, holding
// registers or input registers. The four requests share one layout:
//
//	Function code    : 1 byte (0x01, 0x02, 0x03 or 0x04)
//	Starting address : 2 bytes
//	Quantity         : 2 bytes
type ReadRequest struct {
	Function FunctionCode
	Address  uint16
	Quantity uint16
}

// NewReadCoils creates a read coils request.
func NewReadCoils(address, quantity uint16) ReadRequest {
	return ReadRequest{Function: FuncCodeReadCoils, Address: address, Quantity: quantity}
}

// NewReadDiscreteInputs creates a read discrete inputs request.
func NewReadDiscreteInputs(address, quantity uint16) ReadRequest {
	return ReadRequest{Function: FuncCodeReadDiscreteInputs, Address: address, Quantity: quantity}
}

// NewReadHoldingRegisters creates a read holding registers request.
func NewReadHoldingRegisters(address, quantity uint16) ReadRequest {
	return ReadRequest{Function: FuncCodeReadHoldingRegisters, Address: address, Quantity: quantity}
}

// NewReadInputRegisters creates a read input registers request.
func NewReadInputRegisters(address, quantity uint16) ReadRequest {
	return ReadRequest{Function: FuncCodeReadInputRegisters, Address: address, Quantity: quantity}
}

// IsReadFunction reports whether fc has the ReadRequest layout.
func IsReadFunction(fc FunctionCode) bool {
	switch fc {
	case FuncCodeReadCoils, FuncCodeReadDiscreteInputs,
		FuncCodeReadHoldingRegisters, FuncCodeReadInputRegisters:
		return true
	}
	return false
}

// DecodeReadRequest decodes the body of a read request for fc. data must
// not include the function code. It fails with KindInvalid if fc is not a
// read function or the quantity is zero.
func DecodeReadRequest(fc FunctionCode, data []byte) (req ReadRequest, tail []byte, err error) {
	if !IsReadFunction(fc) {
		return ReadRequest{}, data, errKind(KindInvalid)
	}
	aq, tail, err := ReadAddrQuantity(data)
	if err != nil {
		return ReadRequest{}, data, err
	}
	if aq.Quantity == 0 {
		return ReadRequest{}, data, errKind(KindInvalid)
	}
	return ReadRequest{Function: fc, Address: aq.Address, Quantity: aq.Quantity}, tail, nil
}

// FunctionCode implements Request.
func (r ReadRequest) FunctionCode() FunctionCode {
	return r.Function
}

// Size implements Request.
func (r ReadRequest) Size() int {
	return fixedSize
}

// Encode writes function code, address and quantity into dst. It fails
// with KindInvalid if r.Function is not a read function.
func (r ReadRequest) Encode(dst []byte) (int, error) {
	if !IsReadFunction(r.Function) {
		return 0, errKind(KindInvalid)
	}
	return encodeFixed(dst, r.Function, r.addrQuantity())
}

// Body returns the encoded request without function code.
func (r ReadRequest) Body() [4]byte {
	return fixedBody(r.addrQuantity())
}

func (r ReadRequest) addrQuantity() AddrQuantity {
	return AddrQuantity{Address: r.Address, Quantity: r.Quantity}
}

// MaxQuantity returns the largest quantity a server is required to accept
// for r.Function: 2000 for bit access, 125 for registers. Decoding does not
// enforce it.
func (r ReadRequest) MaxQuantity() uint16 {
	switch r.Function {
	case FuncCodeReadCoils, FuncCodeReadDiscreteInputs:
		return maxReadBits
	case FuncCodeReadHoldingRegisters, FuncCodeReadInputRegisters:
		return maxReadRegisters
	}
	return 0
}

const (
	maxReadBits      = 2000
	maxReadRegisters = 125
)
