// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package pdu

const (
	// MaxWriteRegisters is the largest quantity of a write multiple
	// registers request that fits into a PDU.
	MaxWriteRegisters = 123

	// writeMultipleHeaderSize covers function code, address, quantity and
	// byte count.
	writeMultipleHeaderSize = 6
	// writeMultipleMinBody is the header without function code plus one register.
	writeMultipleMinBody = writeMultipleHeaderSize - 1 + 2

	addressSpace = 0x10000
)

// WriteMultipleRegisters writes a block of 1 to 123 contiguous registers.
//
//	Function code    : 1 byte (0x10)
//	Starting address : 2 bytes
//	Quantity         : 2 bytes
//	Byte count       : 1 byte (= 2 x quantity)
//	Registers value  : Nx2 bytes
//
// The register values borrow the decoded or given buffer.
type WriteMultipleRegisters struct {
	address   uint16
	registers Registers
}

// NewWriteMultipleRegisters validates the register count and the address
// range. It fails with KindInvalid for zero registers, KindTooLarge for more
// than MaxWriteRegisters and KindOverflow if the last register would lie
// beyond address 0xFFFF.
func NewWriteMultipleRegisters(address uint16, registers Registers) (WriteMultipleRegisters, error) {
	n := registers.Len()
	switch {
	case n == 0:
		return WriteMultipleRegisters{}, errKind(KindInvalid)
	case n > MaxWriteRegisters:
		return WriteMultipleRegisters{}, errKind(KindTooLarge)
	case int(address)+n > addressSpace:
		return WriteMultipleRegisters{}, errKind(KindOverflow)
	}
	return WriteMultipleRegisters{address: address, registers: registers}, nil
}

// DecodeWriteMultipleRegisters decodes the body of a write multiple
// registers request. data must not include the function code. The
// returned registers share memory with data.
//
// The byte count must agree with the quantity (KindAmbivalent) before the
// payload is sliced. A short payload fails with KindUnexpectedEOF sized for
// the whole body.
func DecodeWriteMultipleRegisters(data []byte) (req WriteMultipleRegisters, tail []byte, err error) {
	if len(data) < writeMultipleMinBody {
		return WriteMultipleRegisters{}, data, errUnexpectedEOF(writeMultipleMinBody, len(data))
	}
	aq, rest, err := ReadAddrQuantity(data)
	if err != nil {
		return WriteMultipleRegisters{}, data, err
	}
	byteCount := int(rest[0])
	rest = rest[1:]

	if byteCount/2 != int(aq.Quantity) {
		return WriteMultipleRegisters{}, data, errKind(KindAmbivalent)
	}
	if len(rest) < byteCount {
		return WriteMultipleRegisters{}, data, errUnexpectedEOF(writeMultipleHeaderSize-1+byteCount, len(data))
	}
	registers, err := NewRegisters(rest[:byteCount:byteCount])
	if err != nil {
		return WriteMultipleRegisters{}, data, err
	}
	req, err = NewWriteMultipleRegisters(aq.Address, registers)
	if err != nil {
		return WriteMultipleRegisters{}, data, err
	}
	return req, rest[byteCount:], nil
}

// Address returns the starting address.
func (r WriteMultipleRegisters) Address() uint16 {
	return r.address
}

// Registers returns the register values.
func (r WriteMultipleRegisters) Registers() Registers {
	return r.registers
}

// Quantity returns the number of registers.
func (r WriteMultipleRegisters) Quantity() uint16 {
	return uint16(r.registers.Len())
}

// FunctionCode implements Request.
func (r WriteMultipleRegisters) FunctionCode() FunctionCode {
	return FuncCodeWriteMultipleRegisters
}

// Size returns the encoded size including the function code.
func (r WriteMultipleRegisters) Size() int {
	return writeMultipleHeaderSize + r.registers.ByteLen()
}

// Encode writes the request into dst. dst is not modified if it is too
// small.
func (r WriteMultipleRegisters) Encode(dst []byte) (int, error) {
	size := r.Size()
	if len(dst) < size {
		return 0, errInsufficientBuffer(size, len(dst))
	}
	dst[0] = byte(FuncCodeWriteMultipleRegisters)
	aq := AddrQuantity{Address: r.address, Quantity: r.Quantity()}
	if _, err := aq.Encode(dst[1:]); err != nil {
		return 0, err
	}
	dst[5] = byte(r.registers.ByteLen())
	copy(dst[writeMultipleHeaderSize:size], r.registers.Bytes())
	return size, nil
}

// Equal reports whether r and o have the same address and register values.
func (r WriteMultipleRegisters) Equal(o WriteMultipleRegisters) bool {
	return r.address == o.address && r.registers.Equal(o.registers)
}
